/*
 * style.go, part of gbsaplot
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
	"fmt"
	"math"
)

//Style holds every number and text used to draw the energy plot.
//The zero value is not usable, start from DefaultStyle.
type Style struct {
	WidthIn  float64 `mapstructure:"width_in" yaml:"width_in"`   //figure width, inches
	HeightIn float64 `mapstructure:"height_in" yaml:"height_in"` //figure height, inches
	DPI      int     `mapstructure:"dpi" yaml:"dpi"`

	YMin      float64 `mapstructure:"y_min" yaml:"y_min"`
	YMax      float64 `mapstructure:"y_max" yaml:"y_max"`
	MajorStep float64 `mapstructure:"major_step" yaml:"major_step"` //labeled ticks and solid gridlines
	MinorStep float64 `mapstructure:"minor_step" yaml:"minor_step"` //dashed gridlines

	GroupWidth float64 `mapstructure:"group_width" yaml:"group_width"` //fraction of each complex's slot covered by its bars
	BarShrink  float64 `mapstructure:"bar_shrink" yaml:"bar_shrink"`   //fraction of each term's slot covered by the bar

	//AnnotationOffset is the vertical distance, in energy units, between the
	//end of a bar and its value label.
	AnnotationOffset float64 `mapstructure:"annotation_offset" yaml:"annotation_offset"`
	CapWidth         float64 `mapstructure:"cap_width" yaml:"cap_width"` //error bar caps, points

	AnnotationSize  float64 `mapstructure:"annotation_size" yaml:"annotation_size"` //font sizes, in points
	AxisLabelSize   float64 `mapstructure:"axis_label_size" yaml:"axis_label_size"`
	TickLabelSize   float64 `mapstructure:"tick_label_size" yaml:"tick_label_size"`
	LegendSize      float64 `mapstructure:"legend_size" yaml:"legend_size"`
	LegendTitleSize float64 `mapstructure:"legend_title_size" yaml:"legend_title_size"`
	LegendWidth     float64 `mapstructure:"legend_width" yaml:"legend_width"` //inches, taken from the right of the figure

	YLabel      string `mapstructure:"y_label" yaml:"y_label"`
	LegendTitle string `mapstructure:"legend_title" yaml:"legend_title"`
}

//DefaultStyle returns the style of the standard MM-GBSA decomposition plot:
//a 16x8 inches figure at 600 DPI, with the energy axis from -100 to 60 kcal/mol.
func DefaultStyle() Style {
	return Style{
		WidthIn:          16,
		HeightIn:         8,
		DPI:              600,
		YMin:             -100,
		YMax:             60,
		MajorStep:        20,
		MinorStep:        5,
		GroupWidth:       0.8,
		BarShrink:        0.9,
		AnnotationOffset: 2,
		CapWidth:         6,
		AnnotationSize:   14,
		AxisLabelSize:    22,
		TickLabelSize:    22,
		LegendSize:       16,
		LegendTitleSize:  18,
		LegendWidth:      3.2,
		YLabel:           "Energy (kcal/mol)",
		LegendTitle:      "Energy Term",
	}
}

//Validate returns an error if the style can't be used to draw a plot.
func (S Style) Validate() error {
	switch {
	case S.WidthIn <= 0 || S.HeightIn <= 0:
		return fmt.Errorf("chemplot: figure size must be positive, got %gx%g", S.WidthIn, S.HeightIn)
	case S.DPI <= 0:
		return fmt.Errorf("chemplot: DPI must be positive, got %d", S.DPI)
	case S.LegendWidth < 0 || S.LegendWidth >= S.WidthIn:
		return fmt.Errorf("chemplot: legend width %g doesn't fit in a %g inches wide figure", S.LegendWidth, S.WidthIn)
	case !(S.YMax > S.YMin):
		return fmt.Errorf("chemplot: empty energy range [%g, %g]", S.YMin, S.YMax)
	case S.MajorStep <= 0 || S.MinorStep <= 0:
		return fmt.Errorf("chemplot: tick steps must be positive")
	case S.GroupWidth <= 0 || S.GroupWidth > 1:
		return fmt.Errorf("chemplot: group width must be in (0,1], got %g", S.GroupWidth)
	case S.BarShrink <= 0 || S.BarShrink > 1:
		return fmt.Errorf("chemplot: bar shrink must be in (0,1], got %g", S.BarShrink)
	case S.AnnotationOffset < 0:
		return fmt.Errorf("chemplot: negative annotation offset %g", S.AnnotationOffset)
	}
	return nil
}

//Pixels returns the size, in pixels, of the image produced with this style.
func (S Style) Pixels() (int, int) {
	return int(math.Round(S.WidthIn * float64(S.DPI))), int(math.Round(S.HeightIn * float64(S.DPI)))
}
