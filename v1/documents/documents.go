// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package documents

import (
	"github.com/xpathkit/xpathkit/v1/logging"
	"github.com/xpathkit/xpathkit/v1/xmltree"
)

// Documents is a collection of XML documents and their nodes, shared by an
// XPath/XSLT-style evaluator.
//
// The collection can be populated up front, before evaluation begins, or
// extended incrementally during evaluation (by fn:doc, for instance). Once a
// document is present under a URI it will not change: a later load of the
// same URI returns the original document.
//
// The collection owns the arena holding every node of every registered
// document; the registry itself is reachable by shared reference so that
// collaborators can consult and extend it through the same access
// discipline.
type Documents struct {
	arena  *xmltree.Arena
	ref    *Ref
	logger logging.Logger
}

// Opt is a configuration option for a Documents collection.
type Opt func(*Documents)

// WithLogger sets the logger used by load operations.
func WithLogger(logger logging.Logger) Opt {
	return func(d *Documents) {
		d.logger = logger
	}
}

// New creates an empty collection: empty arena, empty registry.
func New(opts ...Opt) *Documents {
	d := &Documents{
		arena:  xmltree.New(),
		ref:    NewRef(),
		logger: logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load parses text as an XML document and registers it under uri. The uri
// must be non-empty and already syntactically valid; this layer does not
// validate it. If uri is already bound the existing handle is returned and
// text is ignored.
//
// Parse, arena insertion, and registry binding happen under one exclusive
// registry borrow, so no partial state is observable by another borrower and
// a failed parse leaves both arena and registry unchanged.
func (d *Documents) Load(uri, text string) (Handle, error) {
	if uri == "" {
		return Handle{}, &Error{Code: InternalErr, Message: "empty document URI"}
	}
	return d.load(uri, text)
}

// LoadAnonymous parses text as an XML document without a URI. Every call
// registers a distinct document with a fresh handle; anonymous documents
// are retrievable only by handle.
func (d *Documents) LoadAnonymous(text string) (Handle, error) {
	return d.load("", text)
}

func (d *Documents) load(uri, text string) (Handle, error) {
	reg, release := d.ref.BorrowMut()
	defer release()

	before := reg.Len()
	h, err := reg.Add(d.arena, uri, text)
	if err != nil {
		d.logger.Debug("document load failed: %v", err)
		return Handle{}, err
	}

	if reg.Len() == before {
		d.logger.WithFields(map[string]any{"uri": uri}).
			Debug("document already loaded")
		return h, nil
	}

	doc, _ := reg.NodeFor(h)
	d.logger.WithFields(map[string]any{
		"uri":         uri,
		"nodes":       d.arena.Len(),
		"fingerprint": d.docAt(reg, h).Fingerprint(),
	}).Debug("document loaded: root node %d", doc)
	return h, nil
}

func (d *Documents) docAt(reg *Registry, h Handle) Document {
	return reg.docs[h.index]
}

// RootOf returns the document node for a handle issued by this collection.
// ok is false for handles issued elsewhere; callers must treat absence as a
// normal outcome.
func (d *Documents) RootOf(h Handle) (xmltree.NodeID, bool) {
	reg, release := d.ref.Borrow()
	defer release()
	return reg.NodeFor(h)
}

// Registry returns the shared registry reference, for collaborators that
// perform their own lookups or loads.
func (d *Documents) Registry() *Ref {
	return d.ref
}

// Arena returns the node arena for read-only traversal.
func (d *Documents) Arena() *xmltree.Arena {
	return d.arena
}

// ArenaMut returns the node arena for mutation. The arena is owned
// exclusively by this collection; collaborators extending node structure go
// through here rather than holding their own arena reference.
func (d *Documents) ArenaMut() *xmltree.Arena {
	return d.arena
}
