/*
 * terms.go, part of gbsaplot
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

import "image/color"

//ComplexColumn is the name of the column that identifies each row of a table.
const ComplexColumn = "Complex"

//Term is one component of the MM-GBSA free energy decomposition.
type Term struct {
	Column string     //name of the column in the input table
	Label  string     //label used in the plot and in the tidy table
	Color  color.RGBA //bar color
	//Binding marks the total binding free energy. Its SD is kept
	//in the tables, but it never gets an error bar.
	Binding bool
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var terms = [...]Term{
	{Column: "ENTROPY (-TS)", Label: "ENTROPY (-TΔS)", Color: rgb(0x1f, 0x77, 0xb4)},
	{Column: "VDWAALS", Label: "ΔVDWAALS", Color: rgb(0xff, 0x7f, 0x0e)},
	{Column: "EEL", Label: "ΔEEL", Color: rgb(0x2c, 0xa0, 0x2c)},
	{Column: "EGB", Label: "ΔEGB", Color: rgb(0xd6, 0x27, 0x28)},
	{Column: "ESURF", Label: "ΔESURF", Color: rgb(0x94, 0x67, 0xbd)},
	{Column: "GGAS", Label: "ΔGGAS", Color: rgb(0x8c, 0x56, 0x4b)},
	{Column: "GSOLV", Label: "ΔGSOLV", Color: rgb(0xe3, 0x77, 0xc2)},
	{Column: "TOTAL", Label: "ΔTOTAL", Color: rgb(0, 0, 0)},
	{Column: "Gbinding", Label: "ΔG_binding", Color: rgb(0x7f, 0x7f, 0x7f), Binding: true},
}

//Terms returns a copy of the catalog of energy terms, in plotting order.
func Terms() []Term {
	ret := make([]Term, len(terms))
	copy(ret, terms[:])
	return ret
}

//TermByLabel returns the catalog term with the given label.
func TermByLabel(label string) (Term, bool) {
	for _, t := range terms {
		if t.Label == label {
			return t, true
		}
	}
	return Term{}, false
}
