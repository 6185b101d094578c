// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package xmltree

// NewDocument allocates a fresh document node with no children.
func (a *Arena) NewDocument() NodeID {
	return a.alloc(KindDocument)
}

// NewElement allocates a detached element node with the given name.
func (a *Arena) NewElement(name QName) NodeID {
	id := a.alloc(KindElement)
	a.node(id).name = InternName(name)
	return id
}

// NewText allocates a detached text node.
func (a *Arena) NewText(data string) NodeID {
	id := a.alloc(KindText)
	a.node(id).text = data
	return id
}

// NewComment allocates a detached comment node.
func (a *Arena) NewComment(data string) NodeID {
	id := a.alloc(KindComment)
	a.node(id).text = data
	return id
}

// NewProcessingInstruction allocates a detached processing instruction node.
func (a *Arena) NewProcessingInstruction(target, data string) NodeID {
	id := a.alloc(KindProcessingInstruction)
	a.node(id).name = InternName(QName{Local: target})
	a.node(id).text = data
	return id
}

// AppendChild appends a detached node as the last child of parent.
// Attribute nodes cannot be appended; use SetAttribute. Panics if child is
// already attached or either id is invalid, since a broken tree would
// silently corrupt later traversals.
func (a *Arena) AppendChild(parent, child NodeID) {
	if !a.Contains(parent) || !a.Contains(child) {
		panic("xmltree: append with id outside arena")
	}
	c := a.node(child)
	if c.kind == KindAttribute {
		panic("xmltree: attribute node appended as child")
	}
	if c.parent != NilNode {
		panic("xmltree: node already attached")
	}

	p := a.node(parent)
	c.parent = parent
	c.prevSib = p.lastChild
	if p.lastChild != NilNode {
		a.node(p.lastChild).nextSib = child
	} else {
		p.firstChild = child
	}
	p.lastChild = child
}

// SetAttribute sets an attribute on an element, replacing the value if an
// attribute of the same name is already present.
func (a *Arena) SetAttribute(elem NodeID, name QName, value string) {
	if a.Kind(elem) != KindElement {
		panic("xmltree: attribute set on non-element")
	}
	h := InternName(name)

	var last NodeID = NilNode
	for at := a.node(elem).firstAttr; at != NilNode; at = a.node(at).nextSib {
		if a.node(at).name == h {
			a.node(at).text = value
			return
		}
		last = at
	}

	id := a.alloc(KindAttribute)
	n := a.node(id)
	n.name = h
	n.text = value
	n.parent = elem
	if last == NilNode {
		a.node(elem).firstAttr = id
	} else {
		n.prevSib = last
		a.node(last).nextSib = id
	}
}
