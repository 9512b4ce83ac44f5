/*
 * render.go, part of gbsaplot
 *
 * Copyright 2025 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemplot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	gbsa "github.com/rmera/gbsaplot"
)

//ErrNothingToPlot is returned when a layout has no complexes.
var ErrNothingToPlot = errors.New("chemplot: no complexes to plot")

var (
	lightYellow = color.RGBA{R: 255, G: 255, B: 224, A: 255}
	lavender    = color.RGBA{R: 230, G: 230, B: 250, A: 255}
)

const (
	frameWidth = 1.2 //points, axes, ticks and legend frame
	bandAlpha  = 0.2
	gridAlpha  = 0.2
)

//errPoints feeds plotter.NewYErrorBars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

//energyPlot builds the plot for L, without its legend. It also returns one
//bar plotter per term, to be used as legend thumbnails.
func energyPlot(L *Layout, sty Style) (*plot.Plot, []*termBars, error) {
	n := float64(len(L.Complexes))
	p := plot.New()

	p.Add(bands{N: len(L.Complexes), Colors: []color.Color{withAlpha(lightYellow, bandAlpha), withAlpha(lavender, bandAlpha)}})

	ticks := yTicks(sty)
	gray := withAlpha(color.RGBA{A: 255}, gridAlpha)
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal = draw.LineStyle{Color: gray, Width: vg.Points(frameWidth)}
	p.Add(grid)
	for _, v := range minorValues(ticks) {
		l, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: v}, {X: n - 0.5, Y: v}})
		if err != nil {
			return nil, nil, err
		}
		l.LineStyle = draw.LineStyle{Color: gray, Width: vg.Points(0.8), Dashes: []vg.Length{vg.Points(3), vg.Points(2)}}
		p.Add(l)
	}

	thumbs := make([]*termBars, len(L.Terms))
	for i, t := range L.Terms {
		thumbs[i] = newTermBars(L.BarsFor(t.Label), t.Color)
		p.Add(thumbs[i])
	}

	if len(L.ErrorBars) > 0 {
		eb, err := errorBars(L, sty)
		if err != nil {
			return nil, nil, err
		}
		p.Add(eb)
	}
	if len(L.Annotations) > 0 {
		labels, err := annotations(L, sty)
		if err != nil {
			return nil, nil, err
		}
		p.Add(labels)
	}

	zero, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: 0}, {X: n - 0.5, Y: 0}})
	if err != nil {
		return nil, nil, err
	}
	zero.LineStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(frameWidth)}
	p.Add(zero)

	//Add stretches the axes to fit the data, so the fixed ranges go last.
	p.X.Min, p.X.Max = -0.5, n-0.5
	p.Y.Min, p.Y.Max = sty.YMin, sty.YMax
	p.X.Padding, p.Y.Padding = 0, 0

	p.X.Label.Text = ""
	p.X.Tick.Marker = plot.ConstantTicks(complexTicks(L.Complexes))
	p.X.Tick.Label.Font = sans(sty.TickLabelSize, true)
	p.Y.Label.Text = sty.YLabel
	p.Y.Label.TextStyle.Font = sans(sty.AxisLabelSize, true)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Label.Font = sans(sty.TickLabelSize, false)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = color.Black
		ax.LineStyle.Width = vg.Points(frameWidth)
		ax.Tick.LineStyle.Color = color.Black
		ax.Tick.LineStyle.Width = vg.Points(frameWidth)
		ax.Tick.Label.Color = color.Black
	}
	return p, thumbs, nil
}

//errorBars returns the error bars of L as a single plotter.
func errorBars(L *Layout, sty Style) (*plotter.YErrorBars, error) {
	pts := errPoints{XYs: make(plotter.XYs, len(L.ErrorBars)), YErrors: make(plotter.YErrors, len(L.ErrorBars))}
	for i, e := range L.ErrorBars {
		pts.XYs[i].X, pts.XYs[i].Y = e.X, e.Y
		pts.YErrors[i].Low, pts.YErrors[i].High = e.HalfLength, e.HalfLength
	}
	eb, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, err
	}
	eb.LineStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	eb.CapWidth = vg.Points(sty.CapWidth)
	return eb, nil
}

//annotations returns the value labels of L, written upwards. Labels above
//a bar start at their point, labels below it end there.
func annotations(L *Layout, sty Style) (*plotter.Labels, error) {
	xyl := plotter.XYLabels{XYs: make(plotter.XYs, len(L.Annotations)), Labels: make([]string, len(L.Annotations))}
	for i, a := range L.Annotations {
		xyl.XYs[i].X, xyl.XYs[i].Y = a.X, a.Y
		xyl.Labels[i] = a.Text
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i, a := range L.Annotations {
		s := textStyle(sans(sty.AnnotationSize, true))
		s.Rotation = math.Pi / 2
		s.YAlign = text.YCenter
		s.XAlign = text.XLeft
		if a.Below {
			s.XAlign = text.XRight
		}
		labels.TextStyle[i] = s
	}
	return labels, nil
}

//drawLegend draws a framed, titled legend at the top left of c, one entry per term.
func drawLegend(c draw.Canvas, thumbs []*termBars, terms []gbsa.Term, sty Style) {
	pad := vg.Points(6)
	title := textStyle(sans(sty.LegendTitleSize, false))
	title.YAlign = text.YTop
	titleH := title.Height(sty.LegendTitle)

	leg := plot.NewLegend()
	leg.TextStyle = textStyle(sans(sty.LegendSize, false))
	leg.Top = true
	leg.Left = true
	leg.XOffs = 2 * pad
	leg.YOffs = -(titleH + 2*pad)
	leg.ThumbnailWidth = vg.Points(sty.LegendSize * 1.5)
	for i, t := range terms {
		leg.Add(t.Label, thumbs[i])
	}
	r := leg.Rectangle(c)
	top := c.Max.Y - pad/2
	right := vg.Length(math.Max(float64(r.Max.X), float64(c.Min.X+2*pad+title.Width(sty.LegendTitle)))) + pad
	//the frame stays inside the strip, even if a label doesn't.
	if edge := c.Max.X - pad; right > edge {
		right = edge
	}
	left := c.Min.X + pad
	bottom := r.Min.Y - pad
	c.FillPolygon(color.White, []vg.Point{{X: left, Y: bottom}, {X: left, Y: top}, {X: right, Y: top}, {X: right, Y: bottom}})
	c.StrokeLines(draw.LineStyle{Color: color.Black, Width: vg.Points(frameWidth)},
		[]vg.Point{{X: left, Y: bottom}, {X: left, Y: top}, {X: right, Y: top}, {X: right, Y: bottom}, {X: left, Y: bottom}})
	c.FillText(title, vg.Point{X: c.Min.X + 2*pad, Y: top - pad}, sty.LegendTitle)
	leg.Draw(c)
}

//Render draws L on a new image canvas: the plot on the left, and the legend in a
//strip of LegendWidth inches on the right.
func Render(L *Layout, sty Style) (*vgimg.Canvas, error) {
	if err := sty.Validate(); err != nil {
		return nil, err
	}
	if len(L.Complexes) == 0 {
		return nil, ErrNothingToPlot
	}
	p, thumbs, err := energyPlot(L, sty)
	if err != nil {
		return nil, fmt.Errorf("chemplot: building plot: %w", err)
	}
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(sty.WidthIn)*vg.Inch, vg.Length(sty.HeightIn)*vg.Inch),
		vgimg.UseDPI(sty.DPI),
	)
	dc := draw.New(img)
	legendW := vg.Length(sty.LegendWidth) * vg.Inch
	p.Draw(draw.Crop(dc, 0, -legendW, 0, 0))
	if legendW > 0 {
		lc := draw.Crop(dc, dc.Max.X-dc.Min.X-legendW, 0, 0, 0)
		drawLegend(lc, thumbs, L.Terms, sty)
	}
	return img, nil
}

//Formats returns the supported output file extensions.
func Formats() []string {
	return []string{".tif", ".tiff", ".png"}
}

func encoder(format string, img *vgimg.Canvas) (io.WriterTo, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: img}, nil
	case "png":
		return vgimg.PngCanvas{Canvas: img}, nil
	}
	return nil, fmt.Errorf("chemplot: unsupported image format %q, use one of %s", format, strings.Join(Formats(), " "))
}

//WriteTo renders L and writes it to w, in the given format ("png" or "tiff").
func WriteTo(w io.Writer, L *Layout, sty Style, format string) error {
	if _, err := encoder(format, nil); err != nil {
		return err
	}
	img, err := Render(L, sty)
	if err != nil {
		return err
	}
	enc, _ := encoder(format, img)
	_, err = enc.WriteTo(w)
	return err
}

//Save renders L and writes it to filename. The format is taken from the extension.
func Save(L *Layout, sty Style, filename string) error {
	format := filepath.Ext(filename)
	if _, err := encoder(format, nil); err != nil {
		return err
	}
	img, err := Render(L, sty)
	if err != nil {
		return err
	}
	enc, _ := encoder(format, img)
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	if _, err := enc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("chemplot: writing %s: %w", filename, err)
	}
	return f.Close()
}
