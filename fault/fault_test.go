// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/keyfold/aadict/fault"
)

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the error classes stay distinct
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrInvalidOne, true, false, false},
		{ErrInvalidTwo, true, false, false},
		{ErrNotFoundOne, false, true, false},
		{ErrNotFoundTwo, false, true, false},
		{ErrProcessOne, false, false, true},
		{ErrProcessTwo, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// errors must compare equal only to themselves
func TestComparison(t *testing.T) {
	if ErrInvalidOne == ErrInvalidTwo {
		t.Errorf("different invalid errors compare equal")
	}
	if error(ErrInvalidOne) == error(ErrNotFoundOne) {
		t.Errorf("different error classes compare equal")
	}
	if fault.ErrKeyNotFound.Error() != "key is not found" {
		t.Errorf("unexpected message: %q", fault.ErrKeyNotFound.Error())
	}
}
