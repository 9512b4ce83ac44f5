/*
 * tidy.go, part of gbsaplot
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

package gbsa

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

//TidyRow is one observation of the long table: one energy term for one complex.
type TidyRow struct {
	Complex string
	Term    Term
	Energy  float64 //mean, kcal/mol. NaN if not available
	SD      float64 //NaN if not available
}

//Measure returns the energy and SD of the row as a Measure.
func (T TidyRow) Measure() Measure {
	return Measure{Mean: T.Energy, SD: T.SD}
}

//Tidy is the long form of a Clean table. Rows are grouped by term, in catalog order,
//and, within each term, by complex, in table order.
type Tidy []TidyRow

//melted is the result of unpivoting one of the two quantities in a Clean table.
type melted struct {
	complex []string
	term    []Term
	value   []float64
}

//unpivot turns one quantity of C (selected by get) into a long list, term by term.
func unpivot(C *Clean, get func(Measure) float64) melted {
	nc, nt := C.Dims()
	m := melted{
		complex: make([]string, 0, nc*nt),
		term:    make([]Term, 0, nc*nt),
		value:   make([]float64, 0, nc*nt),
	}
	for j, t := range C.terms {
		for i, c := range C.complexes {
			m.complex = append(m.complex, c)
			m.term = append(m.term, t)
			m.value = append(m.value, get(C.values[i][j]))
		}
	}
	return m
}

//Melt returns the long form of C. Means and SDs are unpivoted separately, and the
//SDs are then attached to the means row by row. An error is returned if both lists
//don't refer to the same complex and term at every row.
func Melt(C *Clean) (Tidy, error) {
	means := unpivot(C, func(m Measure) float64 { return m.Mean })
	sds := unpivot(C, func(m Measure) float64 { return m.SD })
	if len(means.value) != len(sds.value) {
		return nil, &Error{message: fmt.Sprintf("melted means and SDs differ in length: %d vs %d", len(means.value), len(sds.value)), deco: []string{"Melt"}, critical: true}
	}
	ret := make(Tidy, len(means.value))
	for i := range ret {
		if means.complex[i] != sds.complex[i] || means.term[i].Label != sds.term[i].Label {
			return nil, &Error{message: fmt.Sprintf("row %d misaligned: %s/%s vs %s/%s", i, means.complex[i], means.term[i].Label, sds.complex[i], sds.term[i].Label), deco: []string{"Melt"}, critical: true}
		}
		ret[i] = TidyRow{Complex: means.complex[i], Term: means.term[i], Energy: means.value[i], SD: sds.value[i]}
	}
	return ret, nil
}

//Complexes returns the complexes in T, in order of first appearance.
func (T Tidy) Complexes() []string {
	seen := make(map[string]bool)
	var ret []string
	for _, r := range T {
		if !seen[r.Complex] {
			seen[r.Complex] = true
			ret = append(ret, r.Complex)
		}
	}
	return ret
}

//Lookup returns the row for the given complex and term label.
func (T Tidy) Lookup(complex, label string) (TidyRow, bool) {
	for _, r := range T {
		if r.Complex == complex && r.Term.Label == label {
			return r, true
		}
	}
	return TidyRow{}, false
}

func formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

//WriteTidy writes T to w as CSV. Undefined values are written as empty cells.
func WriteTidy(w io.Writer, T Tidy) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ComplexColumn, "Energy Term", "Energy (kcal/mol)", "SD"}); err != nil {
		return err
	}
	for _, r := range T {
		if err := cw.Write([]string{r.Complex, r.Term.Label, formatValue(r.Energy), formatValue(r.SD)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

//Load reads filename and returns both its wide, parsed form, and its long form, using the
//catalog terms. It is a shortcut for ReadTable, NewClean and Melt.
func Load(filename string, delim rune) (*Clean, Tidy, error) {
	src, err := ReadTableDelim(filename, delim)
	if err != nil {
		return nil, nil, errDecorate(err, "Load")
	}
	C, err := NewClean(src, Terms())
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.filename = filename
		}
		return nil, nil, errDecorate(err, "Load")
	}
	T, err := Melt(C)
	if err != nil {
		return nil, nil, errDecorate(err, "Load")
	}
	return C, T, nil
}
