package digit

import "testing"

func isPermutationOfZeroToSix(row [7]int) bool {
	seen := [7]bool{}
	for _, d := range row {
		if d < 0 || d > 6 || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

func TestNewDigitTablesAreRowPermutations(t *testing.T) {
	for d := 0; d < 7; d++ {
		if !isPermutationOfZeroToSix(NewDigitII[d]) {
			t.Fatalf("NewDigitII[%d] = %v is not a permutation of 0..6", d, NewDigitII[d])
		}
		if !isPermutationOfZeroToSix(NewDigitIII[d]) {
			t.Fatalf("NewDigitIII[%d] = %v is not a permutation of 0..6", d, NewDigitIII[d])
		}
	}
}

func TestNewDigitTablesFixCenterDigit(t *testing.T) {
	for dir := 0; dir < 7; dir++ {
		if NewDigitII[0][dir] != dir {
			t.Fatalf("NewDigitII[0][%d] = %d, want %d (center digit is unaffected by rotation)", dir, NewDigitII[0][dir], dir)
		}
		if NewDigitIII[0][dir] != dir {
			t.Fatalf("NewDigitIII[0][%d] = %d, want %d", dir, NewDigitIII[0][dir], dir)
		}
	}
}

func TestPentagonRotationsKRowIsUnreachable(t *testing.T) {
	for _, dir := range PentagonRotations[1] {
		if dir != -1 {
			t.Fatalf("PentagonRotations[1] (K digit row) should be all -1, got %v", PentagonRotations[1])
		}
	}
}

func TestFailedDirectionsSymmetric(t *testing.T) {
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			if FailedDirections[i][j] != FailedDirections[j][i] {
				t.Fatalf("FailedDirections[%d][%d]=%v != FailedDirections[%d][%d]=%v",
					i, j, FailedDirections[i][j], j, i, FailedDirections[j][i])
			}
		}
	}
}
