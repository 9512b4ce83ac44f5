/*
 * plotters.go, part of gbsaplot
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
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//termBars draws the bars of one energy term. Unlike plotter.BarChart, widths and
//positions are in data units, and missing values simply have no bar.
type termBars struct {
	Bars  []Bar
	Color color.Color
	draw.LineStyle
}

func newTermBars(bars []Bar, c color.Color) *termBars {
	return &termBars{
		Bars:      bars,
		Color:     c,
		LineStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(0.8)},
	}
}

//Plot implements the plot.Plotter interface.
func (B *termBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, b := range B.Bars {
		x0 := trX(b.X - b.Width/2)
		x1 := trX(b.X + b.Width/2)
		y0 := trY(0)
		y1 := trY(b.Height)
		pts := []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
		c.FillPolygon(B.Color, c.ClipPolygonY(pts))
		outline := c.ClipLinesY(append(pts, pts[0]))
		c.StrokeLines(B.LineStyle, outline...)
	}
}

//DataRange implements the plot.DataRanger interface.
func (B *termBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, b := range B.Bars {
		xmin = math.Min(xmin, b.X-b.Width/2)
		xmax = math.Max(xmax, b.X+b.Width/2)
		ymin = math.Min(ymin, b.Height)
		ymax = math.Max(ymax, b.Height)
	}
	if len(B.Bars) == 0 {
		xmin, xmax = 0, 0
	}
	return xmin, xmax, ymin, ymax
}

//Thumbnail implements the plot.Thumbnailer interface, so the term can go in a legend.
func (B *termBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(B.Color, c.ClipPolygonY(pts))
	c.StrokeLines(B.LineStyle, c.ClipLinesY(append(pts, pts[0]))...)
}

//bands shades the full height of each complex group, alternating colors.
type bands struct {
	N      int
	Colors []color.Color
}

func (B bands) Plot(c draw.Canvas, plt *plot.Plot) {
	if len(B.Colors) == 0 {
		return
	}
	trX, _ := plt.Transforms(&c)
	for i := 0; i < B.N; i++ {
		x0 := trX(float64(i) - 0.5)
		x1 := trX(float64(i) + 0.5)
		pts := []vg.Point{{X: x0, Y: c.Min.Y}, {X: x0, Y: c.Max.Y}, {X: x1, Y: c.Max.Y}, {X: x1, Y: c.Min.Y}}
		c.FillPolygon(B.Colors[i%len(B.Colors)], pts)
	}
}
