// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/keyfold/aadict/aatree"
)

func TestFprint(t *testing.T) {
	tree := aatree.New()
	for _, n := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(intItem(n), n*10)
	}

	buffer := &bytes.Buffer{}
	depth := tree.Fprint(buffer, true)

	if depth != tree.Height() {
		t.Fatalf("depth: actual: %d  expected: %d", depth, tree.Height())
	}

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	if len(lines) != tree.Count() {
		t.Fatalf("dump lines: actual: %d  expected: %d", len(lines), tree.Count())
	}

	// higher keys are printed above lower ones
	first := lines[0]
	last := lines[len(lines)-1]
	if !strings.Contains(first, "9") {
		t.Fatalf("top line should show the highest key: %q", first)
	}
	if !strings.Contains(last, "1") {
		t.Fatalf("bottom line should show the lowest key: %q", last)
	}

	// every node shows its balance level
	for i, line := range lines {
		if !strings.Contains(line, "=") {
			t.Fatalf("line %d is missing a level: %q", i, line)
		}
	}
}

func TestFprintEmpty(t *testing.T) {
	buffer := &bytes.Buffer{}
	if depth := aatree.New().Fprint(buffer, false); 0 != depth {
		t.Fatalf("empty depth: actual: %d  expected: 0", depth)
	}
	if 0 != buffer.Len() {
		t.Fatalf("empty dump produced output: %q", buffer.String())
	}
}

// the dump must also route through a logger channel
func TestDump(t *testing.T) {
	dir, err := ioutil.TempDir("", "aatree-log")
	if nil != err {
		t.Fatalf("temp dir: %s", err)
	}
	defer os.RemoveAll(dir)

	logging := logger.Configuration{
		Directory: dir,
		File:      "aatree-test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger setup failed: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("aatree-test")

	tree := aatree.New()
	for _, key := range makeList(8086, 30) {
		tree.Insert(key, nil)
	}

	if depth := tree.Dump(log, true); depth != tree.Height() {
		t.Fatalf("dump depth: actual: %d  expected: %d", depth, tree.Height())
	}
}
