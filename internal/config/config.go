/*
 * config.go, part of gbsaplot
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

package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rmera/gbsaplot/chemplot"
)

const (
	DefaultInput  = "example_gbsa.csv"
	DefaultOutput = "MMGBSA_plot_with_SD.tif"
	EnvPrefix     = "GBSAPLOT"
	//FileName is the config file looked for, without extension, in the working directory.
	FileName = "gbsaplot"
)

//Config is everything a gbsaplot run needs. With no file, flags or
//environment variables, it reproduces the standard plot.
type Config struct {
	Input     string         `mapstructure:"input" yaml:"input"`
	Output    string         `mapstructure:"output" yaml:"output"`
	Delimiter string         `mapstructure:"delimiter" yaml:"delimiter"` //empty or "auto" to detect it
	Plot      chemplot.Style `mapstructure:"plot" yaml:"plot"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", DefaultInput)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("delimiter", "")

	d := chemplot.DefaultStyle()
	v.SetDefault("plot.width_in", d.WidthIn)
	v.SetDefault("plot.height_in", d.HeightIn)
	v.SetDefault("plot.dpi", d.DPI)
	v.SetDefault("plot.y_min", d.YMin)
	v.SetDefault("plot.y_max", d.YMax)
	v.SetDefault("plot.major_step", d.MajorStep)
	v.SetDefault("plot.minor_step", d.MinorStep)
	v.SetDefault("plot.group_width", d.GroupWidth)
	v.SetDefault("plot.bar_shrink", d.BarShrink)
	v.SetDefault("plot.annotation_offset", d.AnnotationOffset)
	v.SetDefault("plot.cap_width", d.CapWidth)
	v.SetDefault("plot.annotation_size", d.AnnotationSize)
	v.SetDefault("plot.axis_label_size", d.AxisLabelSize)
	v.SetDefault("plot.tick_label_size", d.TickLabelSize)
	v.SetDefault("plot.legend_size", d.LegendSize)
	v.SetDefault("plot.legend_title_size", d.LegendTitleSize)
	v.SetDefault("plot.legend_width", d.LegendWidth)
	v.SetDefault("plot.y_label", d.YLabel)
	v.SetDefault("plot.legend_title", d.LegendTitle)
}

//Load loads the configuration from defaults, an optional file and the environment.
//Precedence: env > config file > defaults. If cfgFile is empty, gbsaplot.{yaml,toml,json}
//is looked for in the working directory, and it is fine if there is none. A cfgFile
//that can't be read is an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Plot.Validate(); err != nil {
		return nil, err
	}
	if _, err := c.Delim(); err != nil {
		return nil, err
	}
	return &c, nil
}

//Delim returns the table delimiter as a rune, 0 meaning that it has to be detected.
func (c *Config) Delim() (rune, error) {
	switch strings.ToLower(c.Delimiter) {
	case "", "auto":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case ";", "semicolon":
		return ';', nil
	case "\t", `\t`, "tab":
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported delimiter %q, use one of , ; tab auto", c.Delimiter)
}

//Write writes c to w as YAML, in a form Load can read back.
func Write(w io.Writer, c *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}
