// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// RemoveAll - drop every node, leaving an empty tree
func (tree *Tree) RemoveAll() {
	tree.root = nil
	tree.count = 0
}

// Height - number of nodes on the longest root to leaf path
//
// An AA tree keeps this below 2*log2(count+1), this is only needed
// for diagnostics and tests.
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}
