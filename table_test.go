/*
 * table_test.go, part of gbsaplot
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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var rootdirtest = "testdata"

func TestReadTable(Te *testing.T) {
	src, err := ReadTable(filepath.Join(rootdirtest, "example_gbsa.csv"))
	if err != nil {
		Te.Fatal(err)
	}
	if src.Len() != 3 {
		Te.Fatalf("got %d complexes, want 3", src.Len())
	}
	want := []string{"WT", "D101N", "L55A"}
	for i, c := range src.Complexes() {
		if c != want[i] {
			Te.Errorf("complex %d is %q, want %q", i, c, want[i])
		}
	}
	cell, ok := src.Cell(1, "VDWAALS")
	if !ok || cell != "-48.17(3.92)" {
		Te.Errorf("Cell(1, VDWAALS) = %q, %v", cell, ok)
	}
	if _, ok := src.Cell(0, "NOPE"); ok {
		Te.Errorf("Cell should fail for a missing column")
	}
	if src.Column("ENTROPY (-TS)") != 1 {
		Te.Errorf("wrong index for the entropy column: %d", src.Column("ENTROPY (-TS)"))
	}
}

func TestDetectDelimiter(Te *testing.T) {
	cases := map[string]rune{
		"Complex,VDWAALS,EEL":   ',',
		"Complex;VDWAALS;EEL":   ';',
		"Complex\tVDWAALS\tEEL": '\t',
		"Complex":               ',',
		"ENTROPY (-TS);a,b;c":   ';',
	}
	for line, want := range cases {
		if got := DetectDelimiter(line); got != want {
			Te.Errorf("DetectDelimiter(%q) = %q, want %q", line, got, want)
		}
	}
}

func TestReadTableFromSemicolon(Te *testing.T) {
	in := "\ufeffComplex; VDWAALS ;Gbinding\nA;-12.34(1.20);-20(2)\nB;N/A\n"
	src, err := ReadTableFrom(strings.NewReader(in), 0)
	if err != nil {
		Te.Fatal(err)
	}
	if src.Column("VDWAALS") != 1 || src.Column(ComplexColumn) != 0 {
		Te.Errorf("header not trimmed: %q", src.Header)
	}
	//short rows are padded
	if c, _ := src.Cell(1, "Gbinding"); c != "" {
		Te.Errorf("short row should be padded, got %q", c)
	}
}

func writeCompressed(Te *testing.T, name string, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	switch filepath.Ext(name) {
	case ".gz":
		w := gzip.NewWriter(f)
		if _, err := w.Write([]byte(content)); err != nil {
			Te.Fatal(err)
		}
		if err := w.Close(); err != nil {
			Te.Fatal(err)
		}
	case ".zst":
		w, err := zstd.NewWriter(f)
		if err != nil {
			Te.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			Te.Fatal(err)
		}
		if err := w.Close(); err != nil {
			Te.Fatal(err)
		}
	}
	return path
}

func TestReadTableCompressed(Te *testing.T) {
	raw, err := os.ReadFile(filepath.Join(rootdirtest, "example_gbsa.csv"))
	if err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{"gbsa.csv.gz", "gbsa.csv.zst"} {
		path := writeCompressed(Te, name, string(raw))
		src, err := ReadTable(path)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if src.Len() != 3 {
			Te.Errorf("%s: got %d rows, want 3", name, src.Len())
		}
		if c, _ := src.Cell(2, "EEL"); c != "-12.08(5.91)" {
			Te.Errorf("%s: Cell(2, EEL) = %q", name, c)
		}
	}
}

func TestReadTableErrors(Te *testing.T) {
	_, err := ReadTable(filepath.Join(Te.TempDir(), "missing.csv"))
	var gerr *Error
	if !errors.As(err, &gerr) {
		Te.Fatalf("expected *Error for a missing file, got %v", err)
	}
	if !gerr.Critical() || !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("missing file error should be critical and wrap ErrNotExist: %v", err)
	}

	bad := map[string]string{
		"no complex column": "Name,VDWAALS\nA,1(2)\n",
		"duplicated":        "Complex,VDWAALS\nA,1(2)\nA,3(4)\n",
		"empty id":          "Complex,VDWAALS\nA,1(2)\n,3(4)\n",
		"empty table":       "",
	}
	for what, in := range bad {
		if _, err := ReadTableFrom(strings.NewReader(in), 0); err == nil {
			Te.Errorf("%s: expected an error", what)
		}
	}

	path := filepath.Join(Te.TempDir(), "t.csv")
	if err := os.WriteFile(path, []byte("Name,VDWAALS\nA,1(2)\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	_, err = ReadTable(path)
	if !errors.As(err, &gerr) || gerr.FileName() != path {
		Te.Fatalf("error should name the file: %v", err)
	}
	if !strings.Contains(err.Error(), "ReadTable") || !strings.Contains(err.Error(), ComplexColumn) {
		Te.Errorf("unexpected message: %s", err.Error())
	}
}

func TestNewCleanMissingColumn(Te *testing.T) {
	src, err := ReadTableFrom(strings.NewReader("Complex,VDWAALS,EEL\nA,1(2),3(4)\n"), 0)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = NewClean(src, Terms())
	if err == nil || !strings.Contains(err.Error(), "ENTROPY (-TS)") {
		Te.Fatalf("expected a missing column error, got %v", err)
	}
	sub := []Term{Terms()[1], Terms()[2]}
	C, err := NewClean(src, sub)
	if err != nil {
		Te.Fatal(err)
	}
	if m := C.At(0, 1); m.Mean != 3 || m.SD != 4 {
		Te.Errorf("At(0,1) = %v", m)
	}
}
