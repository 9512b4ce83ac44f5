/*
 * layout_test.go, part of gbsaplot
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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gbsa "github.com/rmera/gbsaplot"
)

func tidyFrom(Te *testing.T, table string) gbsa.Tidy {
	Te.Helper()
	src, err := gbsa.ReadTableFrom(strings.NewReader(table), 0)
	if err != nil {
		Te.Fatal(err)
	}
	C, err := gbsa.NewClean(src, gbsa.Terms())
	if err != nil {
		Te.Fatal(err)
	}
	T, err := gbsa.Melt(C)
	if err != nil {
		Te.Fatal(err)
	}
	return T
}

const header = "Complex,ENTROPY (-TS),VDWAALS,EEL,EGB,ESURF,GGAS,GSOLV,TOTAL,Gbinding\n"

func TestLayoutExample(Te *testing.T) {
	T := tidyFrom(Te, header+
		"A,15(2),-12.34(1.20),-20(3),30(4),-5(0.5),-32.34(3),25(4),-7.34(2),-22.5(4.1)\n"+
		"B,N/A,-40(2),-10(1),20(2),-4(0.2),-50(3),16(2),-34(2),oops\n")
	sty := DefaultStyle()
	L := NewLayout(T, gbsa.Terms(), sty)

	if diff := cmp.Diff([]string{"A", "B"}, L.Complexes); diff != "" {
		Te.Errorf("complexes (-want +got):\n%s", diff)
	}
	//B has no entropy and no binding energy.
	if len(L.Bars) != 16 || len(L.Annotations) != 16 || len(L.Omitted) != 2 {
		Te.Fatalf("got %d bars, %d annotations, %d omitted", len(L.Bars), len(L.Annotations), len(L.Omitted))
	}
	for _, o := range L.Omitted {
		if o.Complex != "B" || (o.Term.Column != "ENTROPY (-TS)" && o.Term.Column != "Gbinding") {
			Te.Errorf("unexpected omission %s/%s", o.Complex, o.Term.Label)
		}
	}
	var bar *Bar
	for i, b := range L.Bars {
		if b.Complex == "A" && b.Term.Label == "ΔVDWAALS" {
			bar = &L.Bars[i]
		}
	}
	if bar == nil || bar.Height != -12.34 {
		Te.Fatalf("no bar for A/ΔVDWAALS with height -12.34: %v", bar)
	}
	var found bool
	for _, a := range L.Annotations {
		if a.Complex == "A" && a.Term.Label == "ΔVDWAALS" {
			found = true
			if a.Text != "-12.34" || !a.Below || math.Abs(a.Y-(-14.34)) > 1e-12 || a.X != bar.X {
				Te.Errorf("wrong annotation %+v", a)
			}
		}
	}
	if !found {
		Te.Errorf("A/ΔVDWAALS has no annotation")
	}
	found = false
	for _, e := range L.ErrorBars {
		if e.Complex == "A" && e.Term.Label == "ΔVDWAALS" {
			found = true
			if e.HalfLength != 1.20 || e.Y != -12.34 || e.X != bar.X {
				Te.Errorf("wrong error bar %+v", e)
			}
		}
	}
	if !found {
		Te.Errorf("A/ΔVDWAALS has no error bar")
	}
}

func TestLayoutNoBindingErrorBar(Te *testing.T) {
	T := tidyFrom(Te, header+
		"A,15(2),-12.34(1.20),-20(3),30(4),-5(0.5),-32.34(3),25(4),-7.34(2),-22.5(4.1)\n"+
		"B,14(2),-40(2),-10(1),20(2),-4(0.2),-50(3),16(2),-34(2),-30(2.2)\n")
	L := NewLayout(T, gbsa.Terms(), DefaultStyle())
	if len(L.Bars) != 18 {
		Te.Fatalf("got %d bars", len(L.Bars))
	}
	//every term but the binding energy, for both complexes
	if len(L.ErrorBars) != 16 {
		Te.Errorf("got %d error bars, want 16", len(L.ErrorBars))
	}
	for _, e := range L.ErrorBars {
		if e.Term.Binding {
			Te.Errorf("binding energy of %s got an error bar", e.Complex)
		}
	}
	if len(L.BarsFor("ΔG_binding")) != 2 {
		Te.Errorf("the binding energy bars are still drawn")
	}
}

func TestLayoutGeometry(Te *testing.T) {
	T := tidyFrom(Te, header+
		"A,1(1),1(1),1(1),1(1),1(1),1(1),1(1),1(1),1(1)\n"+
		"B,1(1),1(1),1(1),1(1),1(1),1(1),1(1),1(1),1(1)\n")
	sty := DefaultStyle()
	L := NewLayout(T, gbsa.Terms(), sty)
	slotW := sty.GroupWidth / 9
	for _, b := range L.Bars {
		if math.Abs(b.Width-slotW*sty.BarShrink) > 1e-12 {
			Te.Errorf("bar width %g, want %g", b.Width, slotW*sty.BarShrink)
		}
		if b.X-b.Width/2 < float64(b.Group)-sty.GroupWidth/2-1e-12 || b.X+b.Width/2 > float64(b.Group)+sty.GroupWidth/2+1e-12 {
			Te.Errorf("bar %s/%s outside of its group", b.Complex, b.Term.Label)
		}
	}
	//terms go left to right in catalog order
	bars := L.Bars[:9]
	for k := 1; k < 9; k++ {
		if bars[k].X <= bars[k-1].X || bars[k].Term.Label != gbsa.Terms()[k].Label {
			Te.Errorf("bar %d out of order", k)
		}
	}
	if L.Bars[9].Group != 1 || math.Abs(L.Bars[9].X-(L.Bars[0].X+1)) > 1e-12 {
		Te.Errorf("second group not shifted by one: %+v", L.Bars[9])
	}
}

func TestAnnotate(Te *testing.T) {
	cases := []struct {
		mean  float64
		y     float64
		text  string
		below bool
	}{
		{-12.34, -14.34, "-12.34", true},
		{0, 2, "0.00", false},
		{3.14159, 5.14159, "3.14", false},
		{-0.004, -2.004, "-0.00", true},
	}
	for _, c := range cases {
		y, text, below := Annotate(c.mean, 2)
		if math.Abs(y-c.y) > 1e-12 || text != c.text || below != c.below {
			Te.Errorf("Annotate(%g) = %g %q %v", c.mean, y, text, below)
		}
	}
}

func TestLayoutClipped(Te *testing.T) {
	T := tidyFrom(Te, header+"A,1(1),-150(1),1(1),75(1),1(1),1(1),1(1),1(1),1(1)\n")
	L := NewLayout(T, gbsa.Terms(), DefaultStyle())
	if len(L.Clipped) != 2 {
		Te.Fatalf("got %d clipped bars, want 2", len(L.Clipped))
	}
	if L.Clipped[0].Term.Column != "VDWAALS" || L.Clipped[1].Term.Column != "EGB" {
		Te.Errorf("wrong clipped bars: %+v", L.Clipped)
	}
}

func TestYTicks(Te *testing.T) {
	ticks := yTicks(DefaultStyle())
	var major []float64
	for _, t := range ticks {
		if !t.IsMinor() {
			major = append(major, t.Value)
		}
	}
	if diff := cmp.Diff([]float64{-100, -80, -60, -40, -20, 0, 20, 40}, major); diff != "" {
		Te.Errorf("major ticks (-want +got):\n%s", diff)
	}
	//33 multiples of 5 in [-100, 60], 8 of them major
	if minor := minorValues(ticks); len(minor) != 25 {
		Te.Errorf("got %d minor ticks, want 25", len(minor))
	}
}

func TestLadder(Te *testing.T) {
	for _, c := range []struct {
		lo, hi, step float64
		closed       bool
		want         []float64
	}{
		{0, 10, 5, false, []float64{0, 5}},
		{0, 10, 5, true, []float64{0, 5, 10}},
		{0, 3, 5, true, []float64{0}},
		{0, 0, 5, false, nil},
		{-1, 0.5, 0.5, true, []float64{-1, -0.5, 0, 0.5}},
	} {
		got := ladder(c.lo, c.hi, c.step, c.closed)
		if diff := cmp.Diff(c.want, got); diff != "" {
			Te.Errorf("ladder(%g, %g, %g, %v) (-want +got):\n%s", c.lo, c.hi, c.step, c.closed, diff)
		}
	}
}
