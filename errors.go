/*
 * errors.go, part of gbsaplot
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
	"fmt"
	"strings"
)

//Error is the error type returned by the functions of this package that
//read or validate tables. The Decorate method allows to add the names of the functions
//the error passes through, without changing its type.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error
}

func (err *Error) Error() string {
	var where string
	if err.filename != "" {
		where = " " + err.filename
	}
	ret := fmt.Sprintf("gbsa table%s error: %s", where, err.message)
	if len(err.deco) > 0 {
		ret = strings.Join(err.deco, ": ") + ": " + ret
	}
	if err.err != nil {
		ret = ret + ": " + err.err.Error()
	}
	return ret
}

//Decorate adds deco to the list of callers the error went through, and
//returns that list. An empty string only returns the current list.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append([]string{deco}, err.deco...)
	}
	return err.deco
}

//FileName returns the file associated with the error, if any.
func (err *Error) FileName() string { return err.filename }

//Critical is true for errors that make the table unusable.
func (err *Error) Critical() bool { return err.critical }

func (err *Error) Unwrap() error { return err.err }

//errDecorate decorates err with the caller's name if it is an *Error,
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}

const (
	UnableToOpen     = "Unable to open file"
	ReadError        = "Error reading table"
	NoComplexColumn  = "Missing required column " + ComplexColumn
	MissingColumn    = "Missing required column"
	DuplicateComplex = "Duplicated complex identifier"
	EmptyComplex     = "Empty complex identifier"
	EmptyTable       = "Table has no header"
)
