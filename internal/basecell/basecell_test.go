package basecell

import "testing"

func TestPentagonCount(t *testing.T) {
	count := 0
	for bc := 0; bc < 122; bc++ {
		if IsPentagon(bc) {
			count++
		}
	}
	if count != 12 {
		t.Fatalf("pentagon count = %d, want 12", count)
	}
}

func TestNeighborTableSymmetric(t *testing.T) {
	for bc := 0; bc < 122; bc++ {
		for dir := 1; dir <= 6; dir++ {
			nb := Neighbor(bc, dir)
			if nb == InvalidBaseCell {
				continue
			}
			back := DirectionForNeighbor(nb, bc)
			if back == 7 {
				t.Fatalf("base cell %d -> %d via dir %d has no return direction", bc, nb, dir)
			}
		}
	}
}

func TestHomeFaceIJKWithinBounds(t *testing.T) {
	for bc := 0; bc < 122; bc++ {
		face, i, j, k := HomeFaceIJK(bc)
		if face < 0 || face >= 20 {
			t.Fatalf("base cell %d has out-of-range home face %d", bc, face)
		}
		if i < 0 || j < 0 || k < 0 {
			t.Fatalf("base cell %d has negative home coordinate (%d,%d,%d)", bc, i, j, k)
		}
	}
}

func TestFaceBaseCellRoundtrip(t *testing.T) {
	for face := 0; face < 20; face++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					bc, _ := FaceBaseCell(face, i, j, k)
					if bc < 0 || bc >= 122 {
						t.Fatalf("faceIjkBaseCells[%d][%d][%d][%d] = %d out of range", face, i, j, k, bc)
					}
				}
			}
		}
	}
}
