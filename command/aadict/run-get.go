// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/keyfold/aadict/fault"
)

func runGet(c *cli.Context) error {

	m := getMetadata(c)

	if 0 == len(c.Args()) {
		return fault.ErrRequiredKey
	}

	tree, err := loadDataFile(m)
	if nil != err {
		return err
	}

	missing := false
	for _, arg := range c.Args() {
		value, ok := tree.Get(stringKey(arg))
		if !ok {
			missing = true
			fmt.Fprintf(m.e, "%s: not found\n", arg)
			continue
		}
		if m.verbose {
			fmt.Fprintf(m.w, "%s = %s\n", arg, value)
		} else {
			fmt.Fprintf(m.w, "%s\n", value)
		}
	}

	if missing {
		return fault.ErrKeyNotFound
	}
	return nil
}

func runFloor(c *cli.Context) error {

	m := getMetadata(c)

	if 0 == len(c.Args()) {
		return fault.ErrRequiredKey
	}

	tree, err := loadDataFile(m)
	if nil != err {
		return err
	}

	for _, arg := range c.Args() {
		p := tree.Floor(stringKey(arg))
		if nil == p {
			fmt.Fprintf(m.e, "%s: nothing at or below\n", arg)
			continue
		}
		fmt.Fprintf(m.w, "%s → %s = %s\n", arg, p.Key(), p.Value())
	}
	return nil
}
