/*
 * doc.go, part of gbsaplot
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

/*Package gbsa reads MM-GBSA free energy decomposition tables, where each row is a complex
and each energy term column holds a "mean(SD)" string, and turns them into
numbers.

	**Capabilities**

    Parses "mean(SD)" cells. Cells that don't follow the pattern become NaN, they are never an error.

    Reads comma, semicolon or tab delimited tables, optionally gzip or zstd compressed.

    Keeps the fixed catalog of the 9 energy terms plotted, with their labels and colors.

    Builds a wide (Clean) table with one Measure per complex and term, and its long (Tidy)
	form, with one row per complex and term, ready for grouped plots.

The chemplot subpackage draws the Tidy table as a grouped bar chart with error bars.
*/
package gbsa
