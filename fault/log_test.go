// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/keyfold/aadict/fault"
)

// Panic must work even when no logger channel was initialised
// and the recovered value must carry the original message
func TestPanicMessage(t *testing.T) {
	message := "metadata is not set up"

	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("expected a panic")
		}
		if message != r {
			t.Errorf("recovered: %v  expected: %q", r, message)
		}
	}()

	fault.Panic(message)
	t.Fatal("unreachable")
}
