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

func runDump(c *cli.Context) error {

	m := getMetadata(c)

	tree, err := loadDataFile(m)
	if nil != err {
		return err
	}

	if !tree.CheckUp() || !tree.CheckLevels() {
		fault.Panic("tree structure is corrupt")
	}

	printData := c.Bool("levels")

	depth := tree.Fprint(m.w, printData)
	if nil != m.log {
		tree.Dump(m.log, printData)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "keys: %d  depth: %d\n", tree.Count(), depth)
	}
	return nil
}
