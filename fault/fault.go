// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrBareDash              = InvalidError("a bare dash cannot stand alone as a key")
	ErrBlankInput            = InvalidError("input cannot be null or whitespace")
	ErrConfigurationNotTable = ProcessError("configuration did not return a table")
	ErrDuplicateKey          = InvalidError("duplicate key")
	ErrEmptyInput            = InvalidError("input cannot be null or empty")
	ErrInvalidFormat         = InvalidError("output format is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrNotFoundConfiguration = NotFoundError("configuration file is not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
// wrapped errors are checked through their Unwrap chain
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
