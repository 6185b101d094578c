// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package xmltree

import (
	"iter"
	"strings"
)

// NodeKind identifies the kind of node stored in the arena.
type NodeKind uint8

const (
	KindFree                  NodeKind = iota // node slot not in use
	KindDocument                              // document node, parent of the document element
	KindElement                               // element node
	KindText                                  // character data
	KindComment                               // comment
	KindProcessingInstruction                 // processing instruction; name holds the target
	KindAttribute                             // attribute node, linked off its element
)

// Node is a single tree node. All structural references are NodeIDs so the
// backing segments can grow without invalidating anything.
type Node struct {
	name       NameHandle // interned name; zero for unnamed kinds
	text       string     // text/comment data, PI content, or attribute value
	parent     NodeID
	firstChild NodeID
	lastChild  NodeID
	nextSib    NodeID
	prevSib    NodeID
	firstAttr  NodeID
	kind       NodeKind
}

func (n *Node) reset() {
	n.name = EmptyName()
	n.text = ""
	n.parent = NilNode
	n.firstChild = NilNode
	n.lastChild = NilNode
	n.nextSib = NilNode
	n.prevSib = NilNode
	n.firstAttr = NilNode
	n.kind = KindFree
}

// Kind returns the kind of the node, or KindFree for NilNode.
func (a *Arena) Kind(id NodeID) NodeKind {
	if !a.Contains(id) {
		return KindFree
	}
	return a.node(id).kind
}

// Name returns the qualified name of an element, attribute, or processing
// instruction node. Other kinds report the zero QName.
func (a *Arena) Name(id NodeID) QName {
	if !a.Contains(id) {
		return QName{}
	}
	n := a.node(id)
	if n.name == EmptyName() {
		return QName{}
	}
	return GetName(n.name)
}

// Value returns the character data of a text, comment, or processing
// instruction node, or the value of an attribute node. Empty otherwise.
func (a *Arena) Value(id NodeID) string {
	if !a.Contains(id) {
		return ""
	}
	n := a.node(id)
	switch n.kind {
	case KindText, KindComment, KindProcessingInstruction, KindAttribute:
		return n.text
	}
	return ""
}

// Parent returns the parent of id, or NilNode. The parent of an attribute
// node is the element carrying it.
func (a *Arena) Parent(id NodeID) NodeID {
	if !a.Contains(id) {
		return NilNode
	}
	return a.node(id).parent
}

// FirstChild returns the first child of id, or NilNode.
func (a *Arena) FirstChild(id NodeID) NodeID {
	if !a.Contains(id) {
		return NilNode
	}
	return a.node(id).firstChild
}

// LastChild returns the last child of id, or NilNode.
func (a *Arena) LastChild(id NodeID) NodeID {
	if !a.Contains(id) {
		return NilNode
	}
	return a.node(id).lastChild
}

// NextSibling returns the following sibling of id, or NilNode.
func (a *Arena) NextSibling(id NodeID) NodeID {
	if !a.Contains(id) {
		return NilNode
	}
	return a.node(id).nextSib
}

// PreviousSibling returns the preceding sibling of id, or NilNode.
func (a *Arena) PreviousSibling(id NodeID) NodeID {
	if !a.Contains(id) {
		return NilNode
	}
	return a.node(id).prevSib
}

// Children iterates over the child nodes of id in document order.
func (a *Arena) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for c := a.FirstChild(id); c != NilNode; c = a.NextSibling(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// Attributes iterates over the attribute nodes of an element in the order
// they were set.
func (a *Arena) Attributes(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !a.Contains(id) {
			return
		}
		for at := a.node(id).firstAttr; at != NilNode; at = a.node(at).nextSib {
			if !yield(at) {
				return
			}
		}
	}
}

// Attribute returns the value of the named attribute on an element.
func (a *Arena) Attribute(id NodeID, name QName) (string, bool) {
	if !a.Contains(id) {
		return "", false
	}
	h := InternName(name)
	for at := a.node(id).firstAttr; at != NilNode; at = a.node(at).nextSib {
		if a.node(at).name == h {
			return a.node(at).text, true
		}
	}
	return "", false
}

// DocumentElement returns the element child of a document node, or NilNode
// if id is not a document node.
func (a *Arena) DocumentElement(id NodeID) NodeID {
	if a.Kind(id) != KindDocument {
		return NilNode
	}
	for c := range a.Children(id) {
		if a.Kind(c) == KindElement {
			return c
		}
	}
	return NilNode
}

// StringValue returns the concatenated text content of the subtree rooted at
// id, per the XPath string value of document and element nodes. For text,
// comment, PI, and attribute nodes it is the node's own data.
func (a *Arena) StringValue(id NodeID) string {
	if !a.Contains(id) {
		return ""
	}
	switch a.node(id).kind {
	case KindText, KindComment, KindProcessingInstruction, KindAttribute:
		return a.node(id).text
	}
	sb := getBuilder()
	defer putBuilder(sb)
	a.collectText(id, sb)
	return sb.String()
}

func (a *Arena) collectText(id NodeID, sb *strings.Builder) {
	for c := a.FirstChild(id); c != NilNode; c = a.NextSibling(c) {
		switch a.node(c).kind {
		case KindText:
			sb.WriteString(a.node(c).text)
		case KindElement:
			a.collectText(c, sb)
		}
	}
}
