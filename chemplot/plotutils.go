/*
 * plotutils.go, part of gbsaplot
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

//Some internal convenience functions.

import (
	"image/color"
	"math"
	"strconv"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

//sans returns a Liberation Sans font of the given size in points.
func sans(size float64, bold bool) font.Font {
	f := font.Font{Typeface: "Liberation", Variant: "Sans", Size: vg.Points(size)}
	if bold {
		f.Weight = xfont.WeightBold
	}
	return f
}

//textStyle returns a black, horizontal text style with the given font.
func textStyle(f font.Font) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    f,
		Handler: plot.DefaultTextHandler,
	}
}

//withAlpha returns c with the given opacity, between 0 and 1.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

//ladder returns lo, lo+step, lo+2*step... up to hi, which is included only
//if closed is true. It returns nil if not even lo fits.
func ladder(lo, hi, step float64, closed bool) []float64 {
	const eps = 1e-9
	n := int(math.Floor((hi-lo)/step + eps))
	if !closed && lo+float64(n)*step >= hi-eps {
		n--
	}
	switch {
	case n < 0:
		return nil
	case n == 0:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n+1), lo, lo+float64(n)*step)
}

//yTicks returns labeled ticks every MajorStep from YMin (YMax excluded), and
//unlabeled ones every MinorStep over the whole range.
func yTicks(sty Style) []plot.Tick {
	var ticks []plot.Tick
	major := make(map[int64]bool)
	for _, v := range ladder(sty.YMin, sty.YMax, sty.MajorStep, false) {
		major[tickKey(v)] = true
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	for _, v := range ladder(sty.YMin, sty.YMax, sty.MinorStep, true) {
		if !major[tickKey(v)] {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

func tickKey(v float64) int64 {
	return int64(math.Round(v * 1e6))
}

//minorValues returns the values of the unlabeled ticks.
func minorValues(ticks []plot.Tick) []float64 {
	var ret []float64
	for _, t := range ticks {
		if t.IsMinor() {
			ret = append(ret, t.Value)
		}
	}
	return ret
}

//complexTicks puts the name of each complex under the center of its group.
func complexTicks(complexes []string) []plot.Tick {
	ret := make([]plot.Tick, len(complexes))
	for i, c := range complexes {
		ret[i] = plot.Tick{Value: float64(i), Label: c}
	}
	return ret
}
