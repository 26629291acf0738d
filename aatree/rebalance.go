// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// the two AA repair operations
//
// Both are purely local right/left rotations and both keep every
// affected parent pointer consistent with the owning child link.
// Each returns the root of the transformed sub-tree; the caller must
// store that into the correct child slot (or the tree root).

// skew - right rotation to remove a left horizontal link
//
// no-op unless the left child exists at the same level
func skew(p *Node) *Node {
	if nil == p || nil == p.left || p.left.level != p.level {
		return p
	}

	l := p.left
	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}
	l.right = p
	l.up = p.up
	p.up = l
	return l
}

// split - left rotation to remove two consecutive right horizontal
// links, promoting the middle node one level
//
// no-op unless right and right-right exist with right.right at the
// same level as p
func split(p *Node) *Node {
	if nil == p || nil == p.right || nil == p.right.right || p.right.right.level != p.level {
		return p
	}

	r := p.right
	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}
	r.left = p
	r.up = p.up
	p.up = r
	r.level += 1
	return r
}

// store a transformed local root into the slot that held the node it
// replaced
func (tree *Tree) relink(p *Node, up *Node, wasLeft bool) {
	if nil == up {
		tree.root = p
	} else if wasLeft {
		up.left = p
	} else {
		up.right = p
	}
}

// walk from p back to the root applying skew then split at every
// node on the path, relinking each local root as it changes
func (tree *Tree) rebalanceInsert(p *Node) {
	for nil != p {
		up := p.up
		wasLeft := nil != up && up.left == p
		p = split(skew(p))
		tree.relink(p, up, wasLeft)
		p = up
	}
}

// walk from p back to the root applying the deletion repair at every
// node on the path; a level decrease can cascade so the walk never
// stops early
func (tree *Tree) rebalanceDelete(p *Node) {
	for nil != p {
		up := p.up
		wasLeft := nil != up && up.left == p
		p = deleteFix(p)
		tree.relink(p, up, wasLeft)
		p = up
	}
}

// AA deletion repair at a single node
//
// Lower an over-large level to one more than the lower child level,
// dragging down a right child left above its parent, then skew the
// node and its right spine and split the node and its right child.
// This is the standard published fix-up order; invariants hold below
// the node before the call and at the node after it.
func deleteFix(p *Node) *Node {
	should := level(p.left) + 1
	if r := level(p.right) + 1; r < should {
		should = r
	}
	if should < p.level {
		p.level = should
		if nil != p.right && p.right.level > should {
			p.right.level = should
		}
	}

	p = skew(p)
	p.right = skew(p.right)
	if nil != p.right {
		p.right.right = skew(p.right.right)
	}
	p = split(p)
	p.right = split(p.right)
	return p
}
