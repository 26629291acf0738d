// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Keys - every key in ascending order
func (tree *Tree) Keys() []Item {
	return tree.root.appendKeys(make([]Item, 0, tree.count))
}

// Values - every value in ascending key order
func (tree *Tree) Values() []interface{} {
	return tree.root.appendValues(make([]interface{}, 0, tree.count))
}

// append a sub-tree's keys in ascending order: left, self, right
func (p *Node) appendKeys(keys []Item) []Item {
	if nil == p {
		return keys
	}
	keys = p.left.appendKeys(keys)
	keys = append(keys, p.key)
	return p.right.appendKeys(keys)
}

// append a sub-tree's values in ascending key order
func (p *Node) appendValues(values []interface{}) []interface{} {
	if nil == p {
		return values
	}
	values = p.left.appendValues(values)
	values = append(values, p.value)
	return p.right.appendValues(values)
}
