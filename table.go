/*
 * table.go, part of gbsaplot
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
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Source is a table as read from an MM-GBSA results file. Cells are kept as raw strings.
type Source struct {
	Header []string
	Rows   []Row
	col    map[string]int
}

//Row is one complex of a Source table.
type Row struct {
	Complex string
	Cells   []string //same order as the Source header
}

//Len returns the number of complexes (rows) in the table.
func (S *Source) Len() int {
	return len(S.Rows)
}

//Column returns the index of the column named name, or -1 if the table doesn't
//have such column.
func (S *Source) Column(name string) int {
	if i, ok := S.col[name]; ok {
		return i
	}
	return -1
}

//Cell returns the raw content of the given column for the row-th complex.
func (S *Source) Cell(row int, column string) (string, bool) {
	c := S.Column(column)
	if c < 0 || row < 0 || row >= len(S.Rows) {
		return "", false
	}
	return S.Rows[row].Cells[c], true
}

//Complexes returns the complex identifiers, in the order in which they appear in the table.
func (S *Source) Complexes() []string {
	ret := make([]string, len(S.Rows))
	for i, r := range S.Rows {
		ret[i] = r.Complex
	}
	return ret
}

//the zstd decoder doesn't implement io.ReadCloser by itself.
type zstdCloser struct {
	*zstd.Decoder
}

func (Z zstdCloser) Close() error {
	Z.Decoder.Close()
	return nil
}

//decompressor returns a function that wraps a reader for the file filename,
//chosen from the file extension. Uncompressed files get a nil function.
func decompressor(filename string) func(io.Reader) (io.ReadCloser, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".gz"):
		return func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) }
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		return func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return zstdCloser{d}, nil
		}
	}
	return nil
}

//ReadTable reads the table in filename. Files ending in .gz or .zst are decompressed on the fly.
//The delimiter is detected from the header line.
func ReadTable(filename string) (*Source, error) {
	return ReadTableDelim(filename, 0)
}

//ReadTableDelim is like ReadTable, but uses delim as the delimiter. If delim is 0
//it is detected from the header line.
func ReadTableDelim(filename string, delim rune) (*Source, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &Error{message: UnableToOpen, filename: filename, deco: []string{"ReadTable"}, critical: true, err: err}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	if dec := decompressor(filename); dec != nil {
		rc, err := dec(r)
		if err != nil {
			return nil, &Error{message: ReadError, filename: filename, deco: []string{"ReadTable"}, critical: true, err: err}
		}
		defer rc.Close()
		r = rc
	}
	S, err := ReadTableFrom(r, delim)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.filename = filename
		}
		return nil, errDecorate(err, "ReadTable")
	}
	return S, nil
}

//DetectDelimiter returns the most frequent of ',', ';' and '\t' in line. Comma wins ties
//and lines with none of them.
func DetectDelimiter(line string) rune {
	best := ','
	bestN := strings.Count(line, ",")
	for _, d := range []rune{';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestN {
			best, bestN = d, n
		}
	}
	return best
}

//ReadTableFrom reads a delimited table from r. The table must have a Complex column,
//with a unique, non-empty identifier for each row. If delim is 0, it is detected from the header.
func ReadTableFrom(r io.Reader, delim rune) (*Source, error) {
	br := bufio.NewReader(r)
	if delim == 0 {
		first, err := br.Peek(4096)
		if err != nil && err != io.EOF && !errors.Is(err, bufio.ErrBufferFull) {
			return nil, &Error{message: ReadError, deco: []string{"ReadTableFrom"}, critical: true, err: err}
		}
		line := first
		if i := bytes.IndexByte(first, '\n'); i >= 0 {
			line = first[:i]
		}
		delim = DetectDelimiter(string(line))
	}
	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, &Error{message: EmptyTable, deco: []string{"ReadTableFrom"}, critical: true}
	}
	if err != nil {
		return nil, &Error{message: ReadError, deco: []string{"ReadTableFrom"}, critical: true, err: err}
	}
	S := &Source{Header: make([]string, len(header)), col: make(map[string]int, len(header))}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		S.Header[i] = h
		if _, ok := S.col[h]; !ok {
			S.col[h] = i
		}
	}
	cplx, ok := S.col[ComplexColumn]
	if !ok {
		return nil, &Error{message: NoComplexColumn, deco: []string{"ReadTableFrom"}, critical: true}
	}
	seen := make(map[string]bool)
	for record := 1; ; record++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{message: ReadError, deco: []string{"ReadTableFrom"}, critical: true, err: err}
		}
		cells := make([]string, len(S.Header))
		copy(cells, rec)
		name := strings.TrimSpace(cells[cplx])
		if name == "" {
			return nil, &Error{message: fmt.Sprintf("%s in record %d", EmptyComplex, record), deco: []string{"ReadTableFrom"}, critical: true}
		}
		if seen[name] {
			return nil, &Error{message: fmt.Sprintf("%s %q in record %d", DuplicateComplex, name, record), deco: []string{"ReadTableFrom"}, critical: true}
		}
		seen[name] = true
		S.Rows = append(S.Rows, Row{Complex: name, Cells: cells})
	}
	return S, nil
}
