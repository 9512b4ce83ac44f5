/*
 * layout.go, part of gbsaplot
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
	"math"
	"strconv"

	gbsa "github.com/rmera/gbsaplot"
)

//Bar is one bar of the plot, in data units. X is the center of the bar.
type Bar struct {
	Complex string
	Term    gbsa.Term
	Group   int //index of the complex, which is also the center of its group
	X       float64
	Width   float64
	Height  float64
}

//ErrorBar spans from Y-HalfLength to Y+HalfLength at X.
type ErrorBar struct {
	Complex    string
	Term       gbsa.Term
	X, Y       float64
	HalfLength float64
}

//Annotation is the value label of a bar. The text is drawn vertically, starting
//at (X, Y) and going up, or, if Below is true, ending at (X, Y).
type Annotation struct {
	Complex string
	Term    gbsa.Term
	X, Y    float64
	Text    string
	Below   bool
}

//Omission is a complex/term pair with no bar because its energy is not available.
type Omission struct {
	Complex string
	Term    gbsa.Term
}

//Layout is the geometry of a grouped bar plot: complexes along the x axis,
//one bar per energy term within each complex.
type Layout struct {
	Complexes   []string
	Terms       []gbsa.Term
	Bars        []Bar
	ErrorBars   []ErrorBar
	Annotations []Annotation
	Omitted     []Omission
	Clipped     []Bar //bars that go beyond the energy axis range
	YMin, YMax  float64
}

func key(complex, label string) string {
	return complex + "\x00" + label
}

//slot returns the center and width of the bar for the k-th of n terms
//in the group centered at x=group.
func slot(group, k, n int, sty Style) (float64, float64) {
	w := sty.GroupWidth / float64(n)
	return float64(group) - sty.GroupWidth/2 + (float64(k)+0.5)*w, w * sty.BarShrink
}

//Annotate returns the label of a bar with height mean.
func Annotate(mean float64, offset float64) (y float64, text string, below bool) {
	text = strconv.FormatFloat(mean, 'f', 2, 64)
	if mean >= 0 {
		return mean + offset, text, false
	}
	return mean - offset, text, true
}

//NewLayout places the rows of t. Complexes keep the order of t, and terms
//the order given. Bars are matched to rows by complex and term label, not
//by position. A bar is drawn only if its energy is defined, and it gets
//an error bar only if its SD is defined too and the term is not the
//binding free energy.
func NewLayout(t gbsa.Tidy, terms []gbsa.Term, sty Style) *Layout {
	L := &Layout{
		Complexes: t.Complexes(),
		Terms:     append([]gbsa.Term(nil), terms...),
		YMin:      sty.YMin,
		YMax:      sty.YMax,
	}
	rows := make(map[string]gbsa.TidyRow, len(t))
	for _, r := range t {
		rows[key(r.Complex, r.Term.Label)] = r
	}
	for i, c := range L.Complexes {
		for k, term := range L.Terms {
			r, ok := rows[key(c, term.Label)]
			m := r.Measure()
			if !ok || !m.HasMean() {
				L.Omitted = append(L.Omitted, Omission{Complex: c, Term: term})
				continue
			}
			x, w := slot(i, k, len(L.Terms), sty)
			L.Bars = append(L.Bars, Bar{Complex: c, Term: term, Group: i, X: x, Width: w, Height: m.Mean})
			if m.Mean < sty.YMin || m.Mean > sty.YMax {
				L.Clipped = append(L.Clipped, L.Bars[len(L.Bars)-1])
			}
			if m.HasSD() && !term.Binding {
				L.ErrorBars = append(L.ErrorBars, ErrorBar{Complex: c, Term: term, X: x, Y: m.Mean, HalfLength: math.Abs(m.SD)})
			}
			y, text, below := Annotate(m.Mean, sty.AnnotationOffset)
			L.Annotations = append(L.Annotations, Annotation{Complex: c, Term: term, X: x, Y: y, Text: text, Below: below})
		}
	}
	return L
}

//BarsFor returns the bars of the given term, in complex order.
func (L *Layout) BarsFor(label string) []Bar {
	var ret []Bar
	for _, b := range L.Bars {
		if b.Term.Label == label {
			ret = append(ret, b)
		}
	}
	return ret
}
