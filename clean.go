/*
 * clean.go, part of gbsaplot
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

import "fmt"

//Clean is the wide table with the parsed values: one row per complex, and
//one Measure per energy term.
type Clean struct {
	complexes []string
	terms     []Term
	values    [][]Measure //[complex][term]
}

//NewClean parses every cell of src that belongs to one of the given terms.
//It returns an error if src lacks one of the term columns. Cells that can't be parsed
//become undefined Measures.
func NewClean(src *Source, terms []Term) (*Clean, error) {
	cols := make([]int, len(terms))
	for i, t := range terms {
		cols[i] = src.Column(t.Column)
		if cols[i] < 0 {
			return nil, &Error{message: fmt.Sprintf("%s %q", MissingColumn, t.Column), deco: []string{"NewClean"}, critical: true}
		}
	}
	C := &Clean{
		complexes: src.Complexes(),
		terms:     append([]Term(nil), terms...),
		values:    make([][]Measure, src.Len()),
	}
	for i, row := range src.Rows {
		C.values[i] = make([]Measure, len(terms))
		for j, c := range cols {
			C.values[i][j] = ParseMeanSD(row.Cells[c])
		}
	}
	return C, nil
}

//Dims returns the number of complexes and terms in the table.
func (C *Clean) Dims() (int, int) {
	return len(C.complexes), len(C.terms)
}

//Complexes returns the complex names, in table order.
func (C *Clean) Complexes() []string {
	return append([]string(nil), C.complexes...)
}

//Terms returns the energy terms of the table, in column order.
func (C *Clean) Terms() []Term {
	return append([]Term(nil), C.terms...)
}

//At returns the Measure for the i-th complex and the j-th term.
//It panics if either index is out of range.
func (C *Clean) At(i, j int) Measure {
	return C.values[i][j]
}
