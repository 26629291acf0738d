// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Item - a key must implement the Compare function
//
// Compare returns +1, 0 or -1 when the receiver is greater than,
// equal to or less than the argument.  It must define a total order
// over every key stored in one tree; an inconsistent comparison
// silently corrupts the tree structure.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - one key/value pair and its position in the tree
type Node struct {
	left  *Node       // left sub-tree, strictly lower keys
	right *Node       // right sub-tree, strictly higher keys
	up    *Node       // points to parent node, nil at the root
	key   Item        // key part for ordering
	value interface{} // value part for data storage
	level int         // AA balance level, 1 for a leaf
}

// allocate a new leaf node
func newNode(key Item, value interface{}) *Node {
	return &Node{
		key:   key,
		value: value,
		level: 1,
	}
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Level - read the AA balance level of a node
//
// Leaves are level 1; the only right child allowed to share its
// parent's level is a single horizontal link.
func (p *Node) Level() int {
	return p.level
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// level of a possibly missing node
func level(p *Node) int {
	if nil == p {
		return 0
	}
	return p.level
}
