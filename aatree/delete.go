// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Delete - remove the node bound to a key
//
// Returns the stored value and true, or nil and false when the key
// is not present, in which case the tree is not modified at all.
//
// An interior node is removed by moving its in-order successor's key
// and value into it and unlinking the successor instead, so any held
// reference to the successor node becomes invalid.
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	p := tree.Search(key)
	if nil == p {
		return nil, false
	}
	value := p.value

	if nil != p.left && nil != p.right {
		// the successor of a node with two children is the leftmost
		// node of the right sub-tree and has at most a right child
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p = s
	}

	// p now has at most one child; splice it out
	child := p.left
	if nil == child {
		child = p.right
	}
	up := p.up
	if nil != child {
		child.up = up
	}
	if nil == up {
		tree.root = child
	} else if up.left == p {
		up.left = child
	} else {
		up.right = child
	}

	// detach the removed node completely
	p.left = nil
	p.right = nil
	p.up = nil

	tree.count -= 1
	tree.rebalanceDelete(up)
	return value, true
}
