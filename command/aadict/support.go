// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/keyfold/aadict/aatree"
	"github.com/keyfold/aadict/fault"
)

// stringKey - data file keys are plain strings
type stringKey string

// Compare - string ordering for the tree interface
func (s stringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(stringKey)))
}

func (s stringKey) String() string {
	return string(s)
}

// fetch the global metadata stored by app.Before
func getMetadata(c *cli.Context) *metadata {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		fault.Panic("metadata is not set up")
	}
	return m
}

// read a data file into a fresh tree
//
// one record per line: key=value, a bare key stores an empty value;
// blank lines and lines starting with # are skipped; a duplicate key
// keeps the last value seen
func loadDataFile(m *metadata) (*aatree.Tree, error) {
	if "" == m.file {
		return nil, fault.ErrRequiredDataFile
	}

	f, err := os.Open(m.file)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	tree := aatree.New()
	lines := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		lines += 1
		s := strings.SplitN(line, "=", 2)
		key := strings.TrimSpace(s[0])
		if "" == key {
			return nil, fault.ErrInvalidKeyValueLine
		}
		value := ""
		if 2 == len(s) {
			value = strings.TrimSpace(s[1])
		}
		tree.Insert(stringKey(key), value)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	if nil != m.log {
		m.log.Debugf("loaded %d lines → %d keys from %q", lines, tree.Count(), m.file)
	}
	return tree, nil
}
