// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package documents

import (
	"testing"

	"github.com/xpathkit/xpathkit/v1/xmltree"
)

func TestAddIsIdempotentPerURI(t *testing.T) {
	arena := xmltree.New()
	reg := newRegistry()

	h1, err := reg.Add(arena, "http://x/a", `<r><c/></r>`)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	nodesAfterFirst := arena.Len()

	h2, err := reg.Add(arena, "http://x/a", `<different/>`)
	if err != nil {
		t.Fatalf("second Add failed: %v", err)
	}

	if h1 != h2 {
		t.Fatalf("expected the original handle back, got %v and %v", h1, h2)
	}
	if arena.Len() != nodesAfterFirst {
		t.Fatal("second Add reparsed into the arena")
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 document, got %d", reg.Len())
	}

	// The original parse wins: the root still holds <r><c/></r>.
	root, ok := reg.NodeFor(h1)
	if !ok {
		t.Fatal("handle did not resolve")
	}
	elem := arena.DocumentElement(root)
	if arena.Name(elem).Local != "r" || arena.Name(arena.FirstChild(elem)).Local != "c" {
		t.Fatal("registered document no longer holds the first text's tree")
	}
}

func TestAddAnonymousAlwaysCreates(t *testing.T) {
	arena := xmltree.New()
	reg := newRegistry()

	h1, err := reg.Add(arena, "", `<a/>`)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	h2, err := reg.Add(arena, "", `<a/>`)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if h1 == h2 {
		t.Fatal("anonymous loads must produce distinct handles")
	}
	r1, _ := reg.NodeFor(h1)
	r2, _ := reg.NodeFor(h2)
	if r1 == r2 {
		t.Fatal("anonymous loads must produce distinct trees")
	}
	if reg.Len() != 2 {
		t.Fatalf("expected 2 documents, got %d", reg.Len())
	}
}

func TestAddParseFailureLeavesNoBinding(t *testing.T) {
	arena := xmltree.New()
	reg := newRegistry()

	if _, err := reg.Add(arena, "http://x/a", `<broken`); err == nil {
		t.Fatal("expected parse error")
	} else if !IsParseErr(err) {
		t.Fatalf("expected ParseErr code, got %v", err)
	}

	if arena.Len() != 0 {
		t.Fatalf("failed parse left %d nodes in the arena", arena.Len())
	}
	if reg.Len() != 0 {
		t.Fatal("failed parse left a document registered")
	}
	if _, _, ok := reg.Get("http://x/a"); ok {
		t.Fatal("failed parse left the URI bound")
	}

	// The failed attempt is not remembered as already loaded.
	h, err := reg.Add(arena, "http://x/a", `<r/>`)
	if err != nil {
		t.Fatalf("reload after failure failed: %v", err)
	}
	if _, ok := reg.NodeFor(h); !ok {
		t.Fatal("fresh binding did not resolve")
	}
}

func TestNodeForForeignHandle(t *testing.T) {
	arenaA, arenaB := xmltree.New(), xmltree.New()
	regA, regB := newRegistry(), newRegistry()

	hA, err := regA.Add(arenaA, "http://x/a", `<r/>`)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := regB.Add(arenaB, "http://x/a", `<r/>`); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Same URI, same index, different registry: must not resolve.
	if _, ok := regB.NodeFor(hA); ok {
		t.Fatal("foreign handle resolved")
	}
	if _, ok := regA.NodeFor(Handle{}); ok {
		t.Fatal("zero handle resolved")
	}
}

func TestGetByURI(t *testing.T) {
	arena := xmltree.New()
	reg := newRegistry()

	h, err := reg.Add(arena, "http://x/a", `<r/>`)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := reg.Add(arena, "", `<anon/>`); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	doc, got, ok := reg.Get("http://x/a")
	if !ok || got != h {
		t.Fatalf("Get returned handle %v (ok=%v), want %v", got, ok, h)
	}
	if uri, ok := doc.URI(); !ok || uri != "http://x/a" {
		t.Fatalf("unexpected document URI %q (ok=%v)", uri, ok)
	}
	if doc.Fingerprint() == 0 {
		t.Fatal("expected a source fingerprint")
	}

	// Anonymous documents are never retrievable by URI.
	if _, _, ok := reg.Get(""); ok {
		t.Fatal("empty URI lookup must not find anonymous documents")
	}
	if _, _, ok := reg.Get("http://x/missing"); ok {
		t.Fatal("unknown URI lookup succeeded")
	}
}

func TestAllIteratesInInsertionOrder(t *testing.T) {
	arena := xmltree.New()
	reg := newRegistry()

	uris := []string{"http://x/1", "", "http://x/2"}
	for _, u := range uris {
		if _, err := reg.Add(arena, u, `<r/>`); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	i := 0
	for h, doc := range reg.All() {
		uri, _ := doc.URI()
		if uri != uris[i] {
			t.Fatalf("document %d: expected URI %q, got %q", i, uris[i], uri)
		}
		if _, ok := reg.NodeFor(h); !ok {
			t.Fatalf("document %d: handle did not resolve", i)
		}
		i++
	}
	if i != len(uris) {
		t.Fatalf("expected %d documents, iterated %d", len(uris), i)
	}
}
