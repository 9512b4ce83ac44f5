/*
 * main.go, part of gbsaplot
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

//gbsaplot draws the MM-GBSA free energy decomposition of a set of complexes
//as a grouped bar chart with error bars.
//
//	gbsaplot [input.csv [output.tif]]
//
//With no arguments it reads example_gbsa.csv and writes MMGBSA_plot_with_SD.tif.
package main

import "os"

func main() {
	os.Exit(Execute())
}
