// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Search - find the node bound to a key, nil when absent
func (tree *Tree) Search(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Get - fetch the value bound to a key
//
// The boolean keeps a missing key distinct from a stored nil value.
func (tree *Tree) Get(key Item) (interface{}, bool) {
	if p := tree.Search(key); nil != p {
		return p.value, true
	}
	return nil, false
}

// Floor - find the node with the highest key not above the given key
//
// nil when every key in the tree is higher.
func (tree *Tree) Floor(key Item) *Node {
	var floor *Node
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key, best candidate so far
			floor = p
			p = p.right
		default:
			return p
		}
	}
	return floor
}

// CompareFunc - secondary comparison for subset searches
//
// It receives a stored key and reports that key's order relative to
// the probe the function closes over: +1 above, 0 matching, -1
// below.  It may match a shortened form of the key, a prefix for
// example, but must order keys consistently with the tree's own
// comparison; matching nodes therefore form one contiguous run.
type CompareFunc func(storedKey Item) int

// SearchAny - find a node matched by the secondary comparison
//
// When several nodes match, the one nearest the root is returned;
// nil when nothing matches.
func (tree *Tree) SearchAny(cmp CompareFunc) *Node {
	p := tree.root
	for nil != p {
		switch c := cmp(p.key); {
		case c > 0: // p.key above the probe
			p = p.left
		case c < 0: // p.key below the probe
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// SearchFirst - find the leftmost node matched by the secondary
// comparison, nil when nothing matches
func (tree *Tree) SearchFirst(cmp CompareFunc) *Node {
	p := tree.SearchAny(cmp)
	if nil == p {
		return nil
	}
	for {
		q := p.Prev()
		if nil == q || 0 != cmp(q.key) {
			return p
		}
		p = q
	}
}
