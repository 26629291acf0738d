// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree on
// standard output, returns the maximum depth of the tree
func (tree *Tree) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - write an ASCII graphic representation of the tree,
// returns the maximum depth of the tree
//
// The right sub-tree of a node is emitted first with a deeper
// indent, then the node, then the left sub-tree, so higher keys
// appear above lower ones: the layout is the tree diagram rotated a
// quarter turn.
func (tree *Tree) Fprint(w io.Writer, printData bool) int {
	return tree.dump(func(line string) {
		fmt.Fprintln(w, line)
	}, printData)
}

// Dump - route the structural dump through a logger channel
func (tree *Tree) Dump(log *logger.L, printData bool) int {
	return tree.dump(func(line string) {
		log.Info(line)
	}, printData)
}

// internal dump - one line per node through the sink
func (tree *Tree) dump(emit func(line string), printData bool) int {
	return dumpTree(tree.root, "", rootBranch, emit, printData)
}

func dumpTree(p *Node, prefix string, br branch, emit func(line string), printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = dumpTree(p.right, prefix+t, rightBranch, emit, printData)
	}
	connector := ""
	switch br {
	case rootBranch:
		connector = "|------+ "
	case leftBranch:
		connector = "\\------+ "
	case rightBranch:
		connector = "/------+ "
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}
	if printData {
		emit(fmt.Sprintf("%s%s%v → %v ^%v =%d", prefix, connector, p.key, p.value, up, p.level))
	} else {
		emit(fmt.Sprintf("%s%s%v ^%v", prefix, connector, p.key, up))
	}
	if nil != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = dumpTree(p.left, prefix+t, leftBranch, emit, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
