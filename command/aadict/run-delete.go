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

func runDelete(c *cli.Context) error {

	m := getMetadata(c)

	if 0 == len(c.Args()) {
		return fault.ErrRequiredKey
	}

	tree, err := loadDataFile(m)
	if nil != err {
		return err
	}

	for _, arg := range c.Args() {
		_, removed := tree.Delete(stringKey(arg))
		if m.verbose {
			if removed {
				fmt.Fprintf(m.e, "deleted: %s\n", arg)
			} else {
				fmt.Fprintf(m.e, "not present: %s\n", arg)
			}
		}
	}

	for _, key := range tree.Keys() {
		fmt.Fprintf(m.w, "%s\n", key)
	}
	return nil
}
