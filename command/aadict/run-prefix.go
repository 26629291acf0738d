// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/keyfold/aadict/aatree"
	"github.com/keyfold/aadict/fault"
)

func runPrefix(c *cli.Context) error {

	m := getMetadata(c)

	prefix := c.Args().Get(0)
	if "" == prefix {
		return fault.ErrRequiredKey
	}

	tree, err := loadDataFile(m)
	if nil != err {
		return err
	}

	// shortened-key comparison: a key matches when it starts with
	// the prefix, ordering is still plain string order
	match := func(storedKey aatree.Item) int {
		s := string(storedKey.(stringKey))
		if strings.HasPrefix(s, prefix) {
			return 0
		}
		return strings.Compare(s, prefix)
	}

	n := 0
	for p := tree.SearchFirst(match); nil != p && 0 == match(p.Key()); p = p.Next() {
		n += 1
		if m.verbose {
			fmt.Fprintf(m.w, "%s = %s\n", p.Key(), p.Value())
		} else {
			fmt.Fprintf(m.w, "%s\n", p.Key())
		}
	}

	if 0 == n {
		return fault.ErrKeyNotFound
	}
	if m.verbose {
		fmt.Fprintf(m.e, "matched: %d\n", n)
	}
	return nil
}
