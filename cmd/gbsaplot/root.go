/*
 * root.go, part of gbsaplot
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

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	gbsa "github.com/rmera/gbsaplot"
	"github.com/rmera/gbsaplot/chemplot"
	"github.com/rmera/gbsaplot/internal/config"
)

var (
	failed = color.New(color.FgRed, color.Bold).SprintFunc()
	done   = color.New(color.FgGreen).SprintFunc()
)

//app holds the state shared by the commands of one run.
type app struct {
	cfgFile   string
	verbose   bool
	dpi       int
	delimiter string

	logger *zap.Logger
	cfg    *config.Config
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

//setup builds the logger, unless one was given, and loads the configuration.
//Flags given explicitly override the configuration.
func (a *app) setup(cmd *cobra.Command) error {
	if a.logger == nil {
		l, err := newLogger(a.verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = l
	}
	c, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dpi") {
		c.Plot.DPI = a.dpi
		if err := c.Plot.Validate(); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("delimiter") {
		c.Delimiter = a.delimiter
		if _, err := c.Delim(); err != nil {
			return err
		}
	}
	a.cfg = c
	a.logger.Debug("configuration loaded", zap.String("config", a.cfgFile), zap.Int("dpi", c.Plot.DPI), zap.String("delimiter", c.Delimiter))
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "gbsaplot [input [output]]",
		Short: "Plot an MM-GBSA free energy decomposition",
		Long: `gbsaplot reads a table with one MM-GBSA result per complex, where each energy
term column holds "mean(SD)" values, and draws a grouped bar chart: one group per
complex, one bar per energy term, with error bars and the value of each bar.

Cells that are not "mean(SD)" are left out of the plot. The binding free energy
never gets an error bar.

The output format is taken from the file extension (.tif, .tiff or .png).`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlot(cmd, args)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./gbsaplot.yaml, if present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.dpi, "dpi", 0, "image resolution (overrides config)")
	pf.StringVar(&a.delimiter, "delimiter", "", "input delimiter: , ; tab or auto (overrides config)")

	root.AddCommand(newTidyCmd(a), newStyleCmd(a))
	return root
}

func (a *app) runPlot(cmd *cobra.Command, args []string) error {
	in, out := a.cfg.Input, a.cfg.Output
	if len(args) > 0 {
		in = args[0]
	}
	if len(args) > 1 {
		out = args[1]
	}
	delim, err := a.cfg.Delim()
	if err != nil {
		return err
	}
	clean, tidy, err := gbsa.Load(in, delim)
	if err != nil {
		return err
	}
	nc, nt := clean.Dims()
	a.logger.Info("table read", zap.String("input", in), zap.Int("complexes", nc), zap.Int("terms", nt), zap.Int("rows", len(tidy)))

	L := chemplot.NewLayout(tidy, gbsa.Terms(), a.cfg.Plot)
	for _, o := range L.Omitted {
		a.logger.Debug("energy not available, bar left out", zap.String("complex", o.Complex), zap.String("term", o.Term.Label))
	}
	for _, b := range L.Clipped {
		a.logger.Warn("bar goes beyond the energy axis", zap.String("complex", b.Complex), zap.String("term", b.Term.Label),
			zap.Float64("energy", b.Height), zap.Float64("y_min", L.YMin), zap.Float64("y_max", L.YMax))
	}
	if err := chemplot.Save(L, a.cfg.Plot, out); err != nil {
		return err
	}
	w, h := a.cfg.Plot.Pixels()
	a.logger.Info("plot written", zap.String("output", out), zap.Int("width_px", w), zap.Int("height_px", h),
		zap.Int("bars", len(L.Bars)), zap.Int("error_bars", len(L.ErrorBars)), zap.Int("omitted", len(L.Omitted)))
	fmt.Fprintln(cmd.OutOrStdout(), done("✓"), out)
	return nil
}

//Execute runs the command line and returns the exit status.
func Execute() int {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failed("✗ Error:"), err)
		return 1
	}
	return 0
}
