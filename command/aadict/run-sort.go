// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runSort(c *cli.Context) error {

	m := getMetadata(c)

	tree, err := loadDataFile(m)
	if nil != err {
		return err
	}

	cursor := tree.NewCursor()
	for p := cursor.Next(); nil != p; p = cursor.Next() {
		if m.verbose {
			fmt.Fprintf(m.w, "%s = %s\n", p.Key(), p.Value())
		} else {
			fmt.Fprintf(m.w, "%s\n", p.Key())
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "total: %d\n", tree.Count())
	}
	return nil
}
