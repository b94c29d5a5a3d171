// Package preview draws a cycloidal drive outline with gonum/plot.
package preview

import (
	"errors"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/internal/d2"
	"github.com/soypat/cycloid/outline"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// circleFacets is the number of segments used to draw pins and holes.
const circleFacets = 48

var (
	rotorColor   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	pointColor   = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	pinColor     = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	featureColor = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// Options configures what is drawn.
type Options struct {
	Title string
	// HidePoints omits the sampled points of the first tooth.
	HidePoints bool
	// HidePins omits the housing pins.
	HidePins bool
}

// New plots the layout and the sampled points of prof on equal axes.
func New(l outline.Layout, prof cycloid.Profile, opts Options) (*plot.Plot, error) {
	if l.Rotor == nil {
		return nil, errors.New("layout has no rotor")
	}
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	rotor, err := loop(l.Rotor.Vertices(), rotorColor, 1)
	if err != nil {
		return nil, err
	}
	p.Add(rotor)
	p.Legend.Add("rotor", rotor)

	bb := d2.Box(l.Rotor.Bounds())
	if !opts.HidePins {
		for i, pin := range l.Pins {
			ln, err := loop(pin.Vertices(circleFacets), pinColor, 0.5)
			if err != nil {
				return nil, err
			}
			p.Add(ln)
			if i == 0 {
				p.Legend.Add("pins", ln)
			}
			bb = bb.Extend(d2.Box(pin.Bounds()))
		}
	}
	var features []outline.Circle
	if l.Bore != nil {
		features = append(features, *l.Bore)
	}
	features = append(features, l.DriveHoles...)
	for _, c := range features {
		ln, err := loop(c.Vertices(circleFacets), featureColor, 0.5)
		if err != nil {
			return nil, err
		}
		p.Add(ln)
	}

	if !opts.HidePoints && prof.Len() > 0 {
		// The rotor is drawn at its rest offset, the points follow it.
		offset := r2.Vec{X: l.Params.E}
		pts := make(plotter.XYs, prof.Len())
		for i, v := range prof.Points {
			v = r2.Add(v, offset)
			pts[i] = plotter.XY{X: v.X, Y: v.Y}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = pointColor
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add("samples", sc)
	}

	// Equal axes keep the teeth from looking squashed.
	sq := bb.Square().Enlarge(d2.Elem(0.05 * bb.Size().X))
	p.X.Min, p.X.Max = sq.Min.X, sq.Max.X
	p.Y.Min, p.Y.Max = sq.Min.Y, sq.Max.Y
	return p, nil
}

func loop(v []r2.Vec, c color.Color, width float64) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(v)+1)
	for i, pt := range v {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	xys[len(v)] = xys[0]
	ln, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	ln.LineStyle.Color = c
	ln.LineStyle.Width = vg.Points(width)
	return ln, nil
}

// WriteTo draws the preview as a square image of the given side length.
// format is any format supported by gonum/plot, such as "png" or "svg".
func WriteTo(w io.Writer, l outline.Layout, prof cycloid.Profile, opts Options, side vg.Length, format string) error {
	p, err := New(l, prof, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(side, side, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Builder saves a preview of each sampled profile it receives.
type Builder struct {
	Path    string    // output file, format taken from the extension
	Side    vg.Length // side of the square image, 6 inches if zero
	Layout  outline.LayoutParams
	Options Options
}

var _ cycloid.Builder = Builder{}

// Build lays out the drive for pr and saves the preview to b.Path.
func (b Builder) Build(pr cycloid.Profile) error {
	if b.Path == "" {
		return errors.New("preview path not set")
	}
	if ext := strings.TrimPrefix(filepath.Ext(b.Path), "."); ext == "" {
		return errors.New("preview path needs a file extension")
	}
	l, err := outline.NewLayout(pr, b.Layout)
	if err != nil {
		return err
	}
	p, err := New(l, pr, b.Options)
	if err != nil {
		return err
	}
	side := b.Side
	if side == 0 {
		side = 6 * vg.Inch
	}
	return p.Save(side, side, b.Path)
}
