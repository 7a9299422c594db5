// Package digit holds the literal direction-digit and pentagon-rotation
// tables used by the neighbor, local-IJ, and edge/vertex engines, carried
// verbatim from the reference implementation (see DESIGN.md) rather than
// approximated, per spec.md §9's instruction that these are load-bearing
// for correctness.
package digit

// NewDigitII and NewAdjustmentII give, for a pentagon base cell's Class II
// (even) unfolding step, the new digit reached after stepping `dir` from a
// cell whose own digit is `digit`, and any extra rotation to apply.
// Indexed [digit][dir].
var NewDigitII = [7][7]int{
	{0, 1, 2, 3, 4, 5, 6},
	{1, 4, 3, 6, 5, 2, 0},
	{2, 3, 1, 4, 6, 0, 5},
	{3, 6, 4, 5, 0, 1, 2},
	{4, 5, 6, 0, 2, 3, 1},
	{5, 2, 0, 1, 3, 6, 4},
	{6, 0, 5, 2, 1, 4, 3},
}

var NewAdjustmentII = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 1, 0, 1, 0, 5, 0},
	{0, 0, 2, 3, 0, 0, 2},
	{0, 1, 3, 3, 0, 0, 0},
	{0, 0, 0, 0, 4, 4, 6},
	{0, 5, 0, 0, 4, 5, 0},
	{0, 0, 2, 0, 6, 0, 6},
}

// NewDigitIII and NewAdjustmentIII are the Class III (odd) analogs.
var NewDigitIII = [7][7]int{
	{0, 1, 2, 3, 4, 5, 6},
	{1, 2, 3, 4, 5, 6, 0},
	{2, 3, 4, 5, 6, 0, 1},
	{3, 4, 5, 6, 0, 1, 2},
	{4, 5, 6, 0, 1, 2, 3},
	{5, 6, 0, 1, 2, 3, 4},
	{6, 0, 1, 2, 3, 4, 5},
}

var NewAdjustmentIII = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 1, 0, 3, 0, 1, 0},
	{0, 0, 2, 2, 0, 0, 6},
	{0, 3, 2, 3, 0, 0, 0},
	{0, 0, 0, 0, 4, 5, 4},
	{0, 1, 0, 0, 5, 5, 0},
	{0, 0, 6, 0, 4, 0, 6},
}

// PentagonRotations: base cell direction (or leading digit, within a
// pentagon base cell) -> leading index digit -> rotations 60 CW to apply.
// -1 marks an entry that must never be consulted (digit 1 / K-axis is the
// deleted direction).
var PentagonRotations = [7][7]int{
	{0, -1, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, -1, 0, 0, 0, 1, 0},
	{0, -1, 0, 0, 1, 1, 0},
	{0, -1, 0, 5, 0, 0, 0},
	{0, -1, 5, 5, 0, 0, 0},
	{0, -1, 0, 0, 0, 0, 0},
}

// PentagonRotationsReverse reverses the rotation PentagonRotations
// introduced when the origin is on a pentagon.
var PentagonRotationsReverse = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 5, 0, 5, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// PentagonRotationsReverseNonpolar reverses the rotation when the index
// (not the origin) is on a non-polar pentagon.
var PentagonRotationsReverseNonpolar = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// PentagonRotationsReversePolar reverses the rotation when the index is on
// a polar pentagon (base cells 4 and 117).
var PentagonRotationsReversePolar = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 1, 1, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 1, 0, 0, 1, 1, 1},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 1, 1, 0, 1, 1, 1},
}

// FailedDirections marks (originDir, targetDir) pairs whose pentagon
// unfolding is not uniquely defined; operations must fail rather than
// guess (spec.md §7, §9).
var FailedDirections = [7][7]bool{
	{false, false, false, false, false, false, false},
	{false, false, false, false, false, false, false},
	{false, false, false, false, true, true, false},
	{false, false, false, false, true, false, true},
	{false, false, true, true, false, false, false},
	{false, false, true, false, false, false, true},
	{false, false, false, true, false, true, false},
}
