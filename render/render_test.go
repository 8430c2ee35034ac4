package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"
	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// key2 builds a 2×2 KeyMatrix or fails the test immediately.
func key2(t *testing.T, a, b, c, d float64) *hill.KeyMatrix {
	t.Helper()
	k, err := hill.KeyFromRows([][]float64{{a, b}, {c, d}})
	require.NoError(t, err)

	return k
}

// TestLattice_CountAndBounds verifies the default 11×11 grid: 121 points,
// all inside [−1, 1]², with the corners reached exactly.
func TestLattice_CountAndBounds(t *testing.T) {
	pts := render.Lattice(1, 11)
	require.Len(t, pts, 121)

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, -1.0-1e-12)
		assert.LessOrEqual(t, p.X, 1.0+1e-12)
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	assert.InDelta(t, -1.0, minX, 1e-12)
	assert.InDelta(t, 1.0, maxX, 1e-12)
	assert.InDelta(t, -1.0, minY, 1e-12)
	assert.InDelta(t, 1.0, maxY, 1e-12)
}

// TestLattice_Degenerate ensures unusable parameters yield no grid.
func TestLattice_Degenerate(t *testing.T) {
	assert.Nil(t, render.Lattice(1, 1), "a single step cannot span an interval")
	assert.Nil(t, render.Lattice(1, 0))
	assert.Nil(t, render.Lattice(0, 11), "zero span has no area")
	assert.Nil(t, render.Lattice(-1, 11))
}

// TestUnitSquare_ClosedOutline pins the five-point outline with the first
// corner repeated at the end.
func TestUnitSquare_ClosedOutline(t *testing.T) {
	sq := render.UnitSquare()
	require.Len(t, sq, 5)

	assert.Equal(t, render.Point{X: 0, Y: 0}, sq[0])
	assert.Equal(t, render.Point{X: 1, Y: 0}, sq[1])
	assert.Equal(t, render.Point{X: 1, Y: 1}, sq[2])
	assert.Equal(t, render.Point{X: 0, Y: 1}, sq[3])
	assert.Equal(t, sq[0], sq[4], "outline must close on itself")
}

// TestApply_KnownMaps checks identity, scaling, and shear on hand-picked
// points.
func TestApply_KnownMaps(t *testing.T) {
	pts := []render.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

	same, err := render.Apply(key2(t, 1, 0, 0, 1), pts)
	require.NoError(t, err)
	assert.Equal(t, pts, same, "identity must not move anything")

	doubled, err := render.Apply(key2(t, 2, 0, 0, 2), pts)
	require.NoError(t, err)
	assert.Equal(t, []render.Point{{X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}, doubled)

	sheared, err := render.Apply(key2(t, 1, 1, 0, 1), pts)
	require.NoError(t, err)
	assert.Equal(t, []render.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}, sheared)
}

// TestApply_SingularCollapsesToLine verifies the geometric heart of the
// demonstration: [[1,2],[2,4]] maps the whole plane onto the line y = 2x.
func TestApply_SingularCollapsesToLine(t *testing.T) {
	out, err := render.Apply(key2(t, 1, 2, 2, 4), render.Lattice(1, 11))
	require.NoError(t, err)

	for _, p := range out {
		assert.InDelta(t, 2*p.X, p.Y, 1e-9, "every image must land on y = 2x")
	}
}

// TestApply_RejectsNon2x2 ensures nil and larger keys error.
func TestApply_RejectsNon2x2(t *testing.T) {
	_, err := render.Apply(nil, render.UnitSquare())
	assert.ErrorIs(t, err, render.ErrNot2x2)

	k3, err := hill.PresetMatrix(hill.PresetInvertible)
	require.NoError(t, err)
	_, err = render.Apply(k3, render.UnitSquare())
	assert.ErrorIs(t, err, render.ErrNot2x2)
}

// TestApply_DoesNotMutateInput ensures the source points stay untouched.
func TestApply_DoesNotMutateInput(t *testing.T) {
	pts := []render.Point{{X: 1, Y: 1}}

	_, err := render.Apply(key2(t, 2, 0, 0, 2), pts)
	require.NoError(t, err)
	assert.Equal(t, render.Point{X: 1, Y: 1}, pts[0])
}

// TestFigure_WritesPNG renders the worked 2×2 key into a temp file and
// checks the PNG signature.
func TestFigure_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transform.png")

	err := render.Figure(key2(t, 2, 1, 3, 4), path, render.DefaultOptions())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8, "file must hold more than a header")
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, data[:8])
}

// TestFigure_ZeroOptions verifies the zero Options draw with defaults.
func TestFigure_ZeroOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.png")

	err := render.Figure(key2(t, 1, 0, 0, 1), path, render.Options{})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestFigure_RejectsNon2x2 ensures the figure refuses other orders.
func TestFigure_RejectsNon2x2(t *testing.T) {
	k3, err := hill.PresetMatrix(hill.PresetInvertible)
	require.NoError(t, err)

	err = render.Figure(k3, filepath.Join(t.TempDir(), "never.png"), render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrNot2x2)

	err = render.Figure(nil, filepath.Join(t.TempDir(), "never.png"), render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrNot2x2)
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := render.DefaultOptions()

	assert.Equal(t, 1.0, opts.Span)
	assert.Equal(t, 11, opts.Steps)
	assert.Equal(t, render.DefaultWidth, opts.Width)
	assert.Equal(t, render.DefaultHeight, opts.Height)
}
