package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"
)

// ErrNot2x2 is returned for keys the two-panel figure cannot draw: the
// plane picture only exists for order 2.
var ErrNot2x2 = errors.New("render: visualization requires a 2×2 key")

// Documented defaults for the figure. DefaultSpan and DefaultSteps give
// the 11×11 lattice on [−1, 1]²; the canvas is landscape, one panel per
// half.
const (
	DefaultSpan  = 1.0
	DefaultSteps = 11

	DefaultWidth  vg.Length = 10 * vg.Inch
	DefaultHeight vg.Length = 5 * vg.Inch
)

// Options configure Figure. Zero values fall back to the defaults, so the
// zero Options draws the standard demonstration figure.
type Options struct {
	Span   float64   // half-width of the lattice; DefaultSpan when unset
	Steps  int       // lattice points per axis; DefaultSteps when below 2
	Width  vg.Length // canvas width; DefaultWidth when unset
	Height vg.Length // canvas height; DefaultHeight when unset
}

// DefaultOptions returns the defaults spelled out.
func DefaultOptions() Options {
	return Options{Span: DefaultSpan, Steps: DefaultSteps, Width: DefaultWidth, Height: DefaultHeight}
}

// withDefaults fills unset or unusable fields.
func (o Options) withDefaults() Options {
	if o.Span <= 0 {
		o.Span = DefaultSpan
	}
	if o.Steps < 2 {
		o.Steps = DefaultSteps
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}

	return o
}

// Panel colors: blue originals, green images, the unit square red in both
// panels, axis lines muted.
var (
	colorLattice     = color.RGBA{B: 0xff, A: 0xff}
	colorTransformed = color.RGBA{G: 0x80, A: 0xff}
	colorSquare      = color.RGBA{R: 0xff, A: 0xff}
	colorAxis        = color.Gray{Y: 0x80}
)

// Figure renders the before/after comparison for a 2×2 key into a PNG at
// path: the lattice and unit square on the left, their images under the
// key on the right, with the determinant annotated in the right panel's
// title. Axis limits stretch to twice the span so sheared images stay in
// frame.
//
// Errors: ErrNot2x2 for nil or non-2×2 keys; otherwise whatever the
// filesystem reports.
func Figure(key *hill.KeyMatrix, path string, opts Options) error {
	if key == nil || key.Order() != 2 {
		return fmt.Errorf("Figure: %w", ErrNot2x2)
	}
	opts = opts.withDefaults()

	lattice := Lattice(opts.Span, opts.Steps)
	square := UnitSquare()
	tLattice, err := Apply(key, lattice)
	if err != nil {
		return fmt.Errorf("Figure: %w", err)
	}
	tSquare, err := Apply(key, square)
	if err != nil {
		return fmt.Errorf("Figure: %w", err)
	}

	rows := key.Rows()
	det := rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0]
	limit := 2 * opts.Span

	left, err := panel("Original Space", lattice, square, colorLattice, limit)
	if err != nil {
		return fmt.Errorf("Figure: %w", err)
	}
	right, err := panel(fmt.Sprintf("Transformed Space (Det=%.2f)", det),
		tLattice, tSquare, colorTransformed, limit)
	if err != nil {
		return fmt.Errorf("Figure: %w", err)
	}

	img := vgimg.New(opts.Width, opts.Height)
	canvases := plot.Align([][]*plot.Plot{{left, right}}, draw.Tiles{Rows: 1, Cols: 2}, draw.New(img))
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Figure: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(f); err != nil {
		_ = f.Close()

		return fmt.Errorf("Figure: %w", err)
	}

	return f.Close()
}

// panel assembles one plot: grid, origin axes, the point cloud, and the
// square outline.
func panel(title string, pts, square []Point, ptColor color.Color, limit float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Min, p.X.Max = -limit, limit
	p.Y.Min, p.Y.Max = -limit, limit
	p.Add(plotter.NewGrid())

	// axis lines through the origin
	for _, axis := range []plotter.XYs{
		{{X: -limit, Y: 0}, {X: limit, Y: 0}},
		{{X: 0, Y: -limit}, {X: 0, Y: limit}},
	} {
		ln, err := plotter.NewLine(axis)
		if err != nil {
			return nil, err
		}
		ln.LineStyle.Color = colorAxis
		p.Add(ln)
	}

	sc, err := plotter.NewScatter(toXYs(pts))
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = ptColor
	sc.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sc)

	outline, err := plotter.NewLine(toXYs(square))
	if err != nil {
		return nil, err
	}
	outline.LineStyle.Color = colorSquare
	outline.LineStyle.Width = vg.Points(2)
	p.Add(outline)

	return p, nil
}

// toXYs adapts points to the plotter's XY slice.
func toXYs(pts []Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	return xys
}
