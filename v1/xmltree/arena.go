// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package xmltree implements the shared node arena holding the parsed XML
// trees of every document in a collection.
//
// Nodes live in fixed-size segments and are referenced exclusively by NodeID,
// an index into the arena. Segments are never moved or released, so a NodeID
// issued before further trees are added remains valid and unchanged for the
// lifetime of the arena. The arena is single-threaded by contract: callers
// serialize access through the documents collection that owns it.
package xmltree

// NodeID identifies one node within an arena. NodeIDs are dense indices:
// they stay valid across arena growth and are never reassigned.
type NodeID int32

// NilNode is the absent-node sentinel.
const NilNode NodeID = -1

// IsNil reports whether the id is the absent-node sentinel.
func (id NodeID) IsNil() bool {
	return id == NilNode
}

const (
	// SegmentSize defines how many nodes fit in one segment.
	SegmentSize = 1024

	// MaxSegments bounds the arena at ~4M nodes. Large enough for any
	// realistic document collection while keeping the segment table small.
	MaxSegments = 4096
)

// Arena is a growable store of XML tree nodes. It grows by whole segments
// and never shrinks; node removal is not supported.
type Arena struct {
	segments [MaxSegments]*[SegmentSize]Node
	segCount int32
	nodeCnt  int32
}

// New creates an empty arena. No segments are allocated until the first node
// is inserted.
func New() *Arena {
	return &Arena{}
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int {
	return int(a.nodeCnt)
}

// Contains reports whether id names a node allocated in this arena.
func (a *Arena) Contains(id NodeID) bool {
	return id >= 0 && int32(id) < a.nodeCnt
}

// extend allocates a new segment.
func (a *Arena) extend() {
	if a.segCount >= MaxSegments {
		panic("xmltree: maximum arena segments exceeded")
	}
	seg := new([SegmentSize]Node)
	for i := range seg {
		seg[i].reset()
	}
	a.segments[a.segCount] = seg
	a.segCount++
}

// alloc allocates a new node of the given kind and returns its id.
func (a *Arena) alloc(kind NodeKind) NodeID {
	idx := a.nodeCnt
	if idx/SegmentSize >= a.segCount {
		a.extend()
	}
	a.nodeCnt++

	n := a.node(NodeID(idx))
	n.reset()
	n.kind = kind
	return NodeID(idx)
}

// node returns a pointer to the node at the given id, or nil for NilNode.
func (a *Arena) node(id NodeID) *Node {
	if id < 0 {
		return nil
	}
	return &a.segments[id/SegmentSize][id%SegmentSize]
}

// mark captures the current allocation frontier. Together with truncate it
// lets a failed multi-node insertion be rolled back before any of the new
// ids escape to a caller.
func (a *Arena) mark() int32 {
	return a.nodeCnt
}

// truncate rolls the allocation frontier back to a previous mark. Only valid
// while none of the ids above the mark have been handed out.
func (a *Arena) truncate(m int32) {
	for i := m; i < a.nodeCnt; i++ {
		a.node(NodeID(i)).reset()
	}
	a.nodeCnt = m
}
