// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

import (
	"fmt"
)

// consistency checkers used by the tests; a failure from either of
// these indicates a bug in the rebalancer, never a caller error

// CheckUp - check the parent back-references for consistency with
// the owning child links
func (tree *Tree) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual up: %v  expected up: %v\n", p.key, nodeKey(p.up), nodeKey(up))
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckLevels - check the five AA level invariants over the whole
// tree:
//
//	1. a leaf has level 1
//	2. left.level < level
//	3. right.level <= level
//	4. right.right.level < level
//	5. level > 1 requires two children
func (tree *Tree) CheckLevels() bool {
	return checkLevels(tree.root)
}

func checkLevels(p *Node) bool {
	if nil == p {
		return true
	}
	ok := true
	if nil == p.left && nil == p.right && 1 != p.level {
		fmt.Printf("leaf %v has level %d\n", p.key, p.level)
		ok = false
	}
	if nil != p.left && p.left.level >= p.level {
		fmt.Printf("left horizontal link at %v: %d >= %d\n", p.key, p.left.level, p.level)
		ok = false
	}
	if nil != p.right && p.right.level > p.level {
		fmt.Printf("raised right child at %v: %d > %d\n", p.key, p.right.level, p.level)
		ok = false
	}
	if nil != p.right && nil != p.right.right && p.right.right.level >= p.level {
		fmt.Printf("double right horizontal link at %v: %d >= %d\n", p.key, p.right.right.level, p.level)
		ok = false
	}
	if p.level > 1 && (nil == p.left || nil == p.right) {
		fmt.Printf("raised node %v (level %d) is missing a child\n", p.key, p.level)
		ok = false
	}
	return checkLevels(p.left) && checkLevels(p.right) && ok
}

// key of a possibly missing node, for failure messages
func nodeKey(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}
