/*
 * parse.go, part of gbsaplot
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
	"math"
	"regexp"
	"strconv"
)

//Measure is a mean with its standard deviation. Either can be NaN,
//which means that the value was not available.
type Measure struct {
	Mean float64
	SD   float64
}

//Undefined returns a Measure where both values are NaN.
func Undefined() Measure {
	return Measure{Mean: math.NaN(), SD: math.NaN()}
}

//HasMean returns true if the mean is a finite number.
func (M Measure) HasMean() bool {
	return !math.IsNaN(M.Mean) && !math.IsInf(M.Mean, 0)
}

//HasSD returns true if the standard deviation is a finite number.
func (M Measure) HasSD() bool {
	return !math.IsNaN(M.SD) && !math.IsInf(M.SD, 0)
}

//a number is an optional sign followed by either a decimal or an integer.
const number = `[-+]?(?:\d*\.\d+|\d+)`

var meanSD = regexp.MustCompile(`(` + number + `)\s*\(\s*(` + number + `)\s*\)`)

//ParseMeanSD extracts the mean and standard deviation from a string
//like "-12.34(1.20)" or "-12.34 (1.20)". The first such pattern in s is used.
//If s contains no such pattern, both values are NaN. It never fails.
func ParseMeanSD(s string) Measure {
	m := meanSD.FindStringSubmatch(s)
	if m == nil {
		return Undefined()
	}
	mean, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Undefined()
	}
	sd, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Undefined()
	}
	return Measure{Mean: mean, SD: sd}
}
