// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keyfold/aadict/aatree"
)

func TestGetNilValue(t *testing.T) {
	tree := aatree.New()
	tree.Insert(stringItem{"empty"}, nil)

	value, ok := tree.Get(stringItem{"empty"})
	assert.True(t, ok, "present key reported missing")
	assert.Nil(t, value, "stored nil came back different")

	value, ok = tree.Get(stringItem{"absent"})
	assert.False(t, ok, "missing key reported present")
	assert.Nil(t, value, "missing key returned a value")
}

func TestFloor(t *testing.T) {
	tree := aatree.New()
	for _, n := range []int{10, 20, 30, 40} {
		tree.Insert(intItem(n), n)
	}

	// exact hit
	p := tree.Floor(intItem(30))
	assert.NotNil(t, p, "floor(30)")
	assert.Equal(t, intItem(30), p.Key(), "floor(30)")

	// between keys: the next lower key
	p = tree.Floor(intItem(35))
	assert.NotNil(t, p, "floor(35)")
	assert.Equal(t, intItem(30), p.Key(), "floor(35)")

	// above all keys: the maximum
	p = tree.Floor(intItem(99))
	assert.NotNil(t, p, "floor(99)")
	assert.Equal(t, intItem(40), p.Key(), "floor(99)")

	// below all keys: nothing
	assert.Nil(t, tree.Floor(intItem(5)), "floor(5)")

	// empty tree
	assert.Nil(t, aatree.New().Floor(intItem(1)), "floor on empty tree")
}

// secondary comparison matching a key prefix; matches form one
// contiguous run in key order
func prefixMatch(prefix string) aatree.CompareFunc {
	return func(storedKey aatree.Item) int {
		s := storedKey.(stringItem).s
		if strings.HasPrefix(s, prefix) {
			return 0
		}
		return strings.Compare(s, prefix)
	}
}

func TestSearchWithComparator(t *testing.T) {
	tree := aatree.New()
	keys := []string{
		"ap-0", "ap-1", "ap-2", "ap-3",
		"aq-0",
		"zx-9",
	}
	for _, key := range keys {
		tree.Insert(stringItem{key}, "data:"+key)
	}

	// any match lands somewhere inside the run
	p := tree.SearchAny(prefixMatch("ap-"))
	assert.NotNil(t, p, "any match")
	assert.True(t, strings.HasPrefix(p.Key().(stringItem).s, "ap-"), "any match prefix")

	// first match is the leftmost of the run
	p = tree.SearchFirst(prefixMatch("ap-"))
	assert.NotNil(t, p, "first match")
	assert.Equal(t, "ap-0", p.Key().(stringItem).s, "first match")

	// walking forward covers the whole run in order
	run := []string{}
	match := prefixMatch("ap-")
	for ; nil != p && 0 == match(p.Key()); p = p.Next() {
		run = append(run, p.Key().(stringItem).s)
	}
	assert.Equal(t, []string{"ap-0", "ap-1", "ap-2", "ap-3"}, run, "run")

	// a run of one
	p = tree.SearchFirst(prefixMatch("aq"))
	assert.NotNil(t, p, "single match")
	assert.Equal(t, "aq-0", p.Key().(stringItem).s, "single match")

	// no match at all
	assert.Nil(t, tree.SearchAny(prefixMatch("b")), "no any match")
	assert.Nil(t, tree.SearchFirst(prefixMatch("b")), "no first match")
}

// a comparator that matches the entire tree still finds the very
// first node
func TestSearchFirstWholeTree(t *testing.T) {
	tree := aatree.New()
	for _, key := range makeList(73, 60) {
		tree.Insert(key, nil)
	}

	everything := func(aatree.Item) int { return 0 }
	p := tree.SearchFirst(everything)
	assert.Equal(t, tree.First(), p, "first match over the whole tree")
}

func TestValuesOrder(t *testing.T) {
	tree := aatree.New()
	for _, n := range []int{5, 3, 8, 1} {
		tree.Insert(intItem(n), n*10)
	}
	assert.Equal(t, []interface{}{10, 30, 50, 80}, tree.Values(), "values in key order")
}
