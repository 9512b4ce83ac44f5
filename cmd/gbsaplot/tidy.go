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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gbsa "github.com/rmera/gbsaplot"
	"github.com/rmera/gbsaplot/internal/config"
)

func newTidyCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "tidy [input]",
		Short: "Write the long table (one row per complex and term) as CSV",
		Long: `tidy parses the input table and writes its long form, with the columns
Complex, Energy Term, Energy (kcal/mol) and SD. Values that could not be parsed
are left empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.cfg.Input
			if len(args) > 0 {
				in = args[0]
			}
			delim, err := a.cfg.Delim()
			if err != nil {
				return err
			}
			_, tidy, err := gbsa.Load(in, delim)
			if err != nil {
				return err
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := gbsa.WriteTidy(w, tidy); err != nil {
				return fmt.Errorf("write tidy table: %w", err)
			}
			a.logger.Info("tidy table written", zap.String("input", in), zap.String("output", out), zap.Int("rows", len(tidy)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newStyleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "style",
		Short: "Print the effective configuration as YAML",
		Long: `style prints the configuration gbsaplot would use, after applying the config
file, GBSAPLOT_* environment variables and flags. Save it as gbsaplot.yaml to
start a custom style.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Write(cmd.OutOrStdout(), a.cfg)
		},
	}
}
