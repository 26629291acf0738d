// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrInvalidConfigFile    = InvalidError("configuration file must return a table")
	ErrInvalidKeyValueLine  = InvalidError("key/value line is invalid")
	ErrInvalidLoggerChannel = ProcessError("logger channel failed")
	ErrKeyNotFound          = NotFoundError("key is not found")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrRequiredConfigFile   = InvalidError("configuration file is required")
	ErrRequiredDataFile     = InvalidError("data file is required")
	ErrRequiredKey          = InvalidError("key is required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
