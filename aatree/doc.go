// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aatree - an Arne Andersson balanced binary search tree with
// the addition of parent pointers to allow iteration through the
// nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  The whole tree is the unit of locking, individual
//       nodes are never locked separately.
//
// Balancing follows the AA discipline: a single integer level per
// node replaces red-black colouring and only two local repair
// operations exist, skew and split.  For the base algorithm see:
// https://en.wikipedia.org/wiki/AA_tree
//
// This version allows for data associated with a key, which can be
// overwritten by an insert with the same key without changing the
// shape of the tree.  Keys are ordered by an externally supplied
// comparison, the Compare method of the Item interface.
package aatree
