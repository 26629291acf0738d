// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
//
// The leftmost node of the right sub-tree when there is one,
// otherwise the first ancestor reached through a left child link.
func (p *Node) Next() *Node {
	if nil != p.right {
		return p.right.first()
	}
	up := p.up
	for nil != up && up.right == p {
		p = up
		up = up.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes.
func (p *Node) Prev() *Node {
	if nil != p.left {
		return p.left.last()
	}
	up := p.up
	for nil != up && up.left == p {
		p = up
		up = up.up
	}
	return up
}

// Cursor - stateful stepping over the tree in key order
//
// A fresh cursor sits outside the sequence: the first Next call
// yields the first node, the first Prev call the last node.  Each
// direction yields nil at its boundary and stays there.  A cursor is
// read only, but is invalidated by any mutation of the tree.
type Cursor struct {
	tree    *Tree
	current *Node
	started bool
}

// NewCursor - a cursor positioned before the first node
func (tree *Tree) NewCursor() *Cursor {
	return &Cursor{
		tree: tree,
	}
}

// Next - step forward, nil after the last node
func (c *Cursor) Next() *Node {
	if !c.started {
		c.started = true
		c.current = c.tree.First()
	} else if nil != c.current {
		c.current = c.current.Next()
	}
	return c.current
}

// Prev - step backward, nil before the first node
func (c *Cursor) Prev() *Node {
	if !c.started {
		c.started = true
		c.current = c.tree.Last()
	} else if nil != c.current {
		c.current = c.current.Prev()
	}
	return c.current
}
