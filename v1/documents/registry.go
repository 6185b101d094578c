// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package documents implements the URI-keyed document registry and the
// collection facade tying it to a shared xmltree arena.
//
// The registry enforces at-most-once insertion per URI: the first successful
// load under a URI wins and later loads of the same URI return the original
// handle without reparsing. Documents are immutable once registered and are
// never removed, so a Handle stays valid for the lifetime of the registry
// that issued it.
package documents

import (
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/xpathkit/xpathkit/v1/xmltree"
)

// Handle names one document within the registry that issued it. Handles are
// opaque, copyable, and comparable; a handle from one registry never
// resolves in another.
type Handle struct {
	registry uuid.UUID
	index    int32
}

// Document is one parsed XML tree registered under an optional URI.
// Immutable after registration.
type Document struct {
	uri         string // empty for anonymous documents
	root        xmltree.NodeID
	fingerprint uint64
}

// URI returns the URI the document was loaded under. ok is false for
// anonymous documents.
func (d Document) URI() (uri string, ok bool) {
	return d.uri, d.uri != ""
}

// Root returns the document node in the arena.
func (d Document) Root() xmltree.NodeID {
	return d.root
}

// Fingerprint returns the xxhash-64 digest of the source text the document
// was parsed from. Diagnostic only; it plays no part in registry identity.
func (d Document) Fingerprint() uint64 {
	return d.fingerprint
}

// Registry is the URI- and handle-keyed store of documents. It does not own
// the arena; load operations are handed the arena they should parse into.
type Registry struct {
	id    uuid.UUID
	docs  []Document
	byURI map[string]int32
}

func newRegistry() *Registry {
	return &Registry{
		id:    uuid.New(),
		byURI: map[string]int32{},
	}
}

// Add parses text into the arena and registers the resulting document.
//
// An empty uri registers an anonymous document: every anonymous Add creates
// a distinct document with a fresh handle. A non-empty uri that is already
// bound returns the existing handle without parsing; text is discarded
// (first write wins). Otherwise the text is parsed, the uri bound, and the
// new handle returned.
//
// A parse failure is returned as a *Error with code ParseErr and leaves both
// the registry and the arena unchanged; in particular the uri stays unbound.
func (r *Registry) Add(arena *xmltree.Arena, uri, text string) (Handle, error) {
	if uri != "" {
		if idx, ok := r.byURI[uri]; ok {
			return r.handle(idx), nil
		}
	}

	root, err := xmltree.Parse(arena, text)
	if err != nil {
		return Handle{}, parseErr(uri, err)
	}

	idx := int32(len(r.docs))
	r.docs = append(r.docs, Document{
		uri:         uri,
		root:        root,
		fingerprint: xxhash.Sum64String(text),
	})
	if uri != "" {
		r.byURI[uri] = idx
	}
	return r.handle(idx), nil
}

// NodeFor returns the document node for handle. ok is false when the handle
// was issued by a different registry or is otherwise unknown; that is a
// normal outcome, not an error.
func (r *Registry) NodeFor(h Handle) (xmltree.NodeID, bool) {
	if h.registry != r.id || h.index < 0 || int(h.index) >= len(r.docs) {
		return xmltree.NilNode, false
	}
	return r.docs[h.index].root, true
}

// Get returns the document bound to uri, when present. This is the lookup
// the fn:doc implementation of an evaluator performs before loading.
func (r *Registry) Get(uri string) (Document, Handle, bool) {
	idx, ok := r.byURI[uri]
	if !ok {
		return Document{}, Handle{}, false
	}
	return r.docs[idx], r.handle(idx), true
}

// Len returns the number of registered documents, anonymous ones included.
func (r *Registry) Len() int {
	return len(r.docs)
}

// All iterates over the registered documents in insertion order.
func (r *Registry) All() iter.Seq2[Handle, Document] {
	return func(yield func(Handle, Document) bool) {
		for i, d := range r.docs {
			if !yield(r.handle(int32(i)), d) {
				return
			}
		}
	}
}

func (r *Registry) handle(idx int32) Handle {
	return Handle{registry: r.id, index: idx}
}
