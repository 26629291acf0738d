// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Insert - add a key/value pair to the tree
//
// Returns true when a new node was added; an insert with a key
// already present replaces that node's value in place, leaving the
// shape of the tree and the count untouched, and returns false.
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value)
		tree.count = 1
		return true
	}

	p := tree.root
descend:
	for {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			if nil == p.left {
				n := newNode(key, value)
				n.up = p
				p.left = n
				break descend
			}
			p = p.left
		case -1: // p.key < key
			if nil == p.right {
				n := newNode(key, value)
				n.up = p
				p.right = n
				break descend
			}
			p = p.right
		default: // duplicate key: replace the value in place
			p.value = value
			return false
		}
	}

	tree.count += 1
	tree.rebalanceInsert(p)
	return true
}
