package stepfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/stepfield"
)

// TestFillUnreachable_FromSeed runs the filler alone on a field that has had
// no relaxation passes; it must resolve every walkable cell behind the gap.
func TestFillUnreachable_FromSeed(t *testing.T) {
	tr, _ := terrain(t, gapWall)
	f, err := stepfield.Compute(tr, grid.Pt(4, 4), stepfield.WithIterations(0))
	require.NoError(t, err)

	resolved := stepfield.FillUnreachable(tr, f)
	assert.Equal(t, 20, resolved)
	assert.Equal(t, "8 7 - 5 4\n7 6 - 4 3\n6 5 4 3 2\n7 6 - 2 1\n8 7 - 1 0\n", f.Text())

	assert.Zero(t, stepfield.FillUnreachable(tr, f), "second call finds nothing left to resolve")
}

// TestFillUnreachable_Isolated stops once a sweep makes no progress.
func TestFillUnreachable_Isolated(t *testing.T) {
	tr, _ := terrain(t, island)
	f, err := stepfield.Compute(tr, grid.Pt(2, 2), stepfield.WithIterations(0))
	require.NoError(t, err)

	assert.Zero(t, stepfield.FillUnreachable(tr, f))
	for _, p := range tr.Points() {
		if p != grid.Pt(2, 2) {
			assert.False(t, f.IsReachable(p), "%v", p)
		}
	}
}

// TestLowestNeighbor_TieBreak checks that equal neighbours resolve in
// Forward, Right, Back, Left order.
func TestLowestNeighbor_TieBreak(t *testing.T) {
	tr, _ := terrain(t, "---\n---\n---")

	// From the centre toward (2,2) both Forward and Right are one step away.
	f, err := stepfield.Compute(tr, grid.Pt(2, 2))
	require.NoError(t, err)
	s, dir := f.LowestNeighbor(tr, grid.Pt(1, 1))
	assert.Equal(t, 1, s)
	assert.Equal(t, grid.Forward, dir)

	// Toward (0,0), Back and Left tie; Back comes first.
	f, err = stepfield.Compute(tr, grid.Pt(0, 0))
	require.NoError(t, err)
	s, dir = f.LowestNeighbor(tr, grid.Pt(1, 1))
	assert.Equal(t, 1, s)
	assert.Equal(t, grid.Back, dir)

	// Toward (2,0), Right and Back tie; Right comes first.
	f, err = stepfield.Compute(tr, grid.Pt(2, 0))
	require.NoError(t, err)
	_, dir = f.LowestNeighbor(tr, grid.Pt(1, 1))
	assert.Equal(t, grid.Right, dir)

	assert.Equal(t, 3, f.StepByNeighbors(tr, grid.Pt(0, 1)))
}

// TestLowestNeighbor_Blocked returns no direction from a wall.
func TestLowestNeighbor_Blocked(t *testing.T) {
	tr, _ := terrain(t, gapWall)
	f, err := stepfield.Compute(tr, grid.Pt(4, 4))
	require.NoError(t, err)

	s, dir := f.LowestNeighbor(tr, grid.Pt(2, 0))
	assert.Equal(t, stepfield.Unreachable, s)
	assert.Equal(t, grid.None, dir)
	assert.Equal(t, stepfield.Unreachable, f.StepByNeighbors(tr, grid.Pt(2, 0)))
}

// TestText_PadsWideSteps aligns multi-digit steps and blanks absent cells.
func TestText_PadsWideSteps(t *testing.T) {
	tr, _ := terrain(t, "------------\n-#")
	f, err := stepfield.Compute(tr, grid.Pt(0, 0))
	require.NoError(t, err)

	want := " 0  1  2  3  4  5  6  7  8  9 10 11\n" +
		" 1  -                              \n"
	assert.Equal(t, want, f.Text())
}
