// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package xmltree

import (
	"fmt"
	"strings"
	"testing"
)

func TestArenaGrowthKeepsNodeIDsStable(t *testing.T) {
	a := New()

	doc, err := Parse(a, `<first><child>one</child></first>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	root := a.DocumentElement(doc)
	child := a.FirstChild(root)
	text := a.FirstChild(child)

	// Force several segment extensions.
	var sb strings.Builder
	sb.WriteString("<big>")
	for i := 0; i < 3*SegmentSize; i++ {
		fmt.Fprintf(&sb, "<n i=%q/>", fmt.Sprint(i))
	}
	sb.WriteString("</big>")
	if _, err := Parse(a, sb.String()); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if a.Len() <= 3*SegmentSize {
		t.Fatalf("expected arena to grow past %d nodes, got %d", 3*SegmentSize, a.Len())
	}

	// The ids captured before growth must still resolve to the same nodes.
	if a.Name(root).Local != "first" {
		t.Fatalf("root id remapped: %v", a.Name(root))
	}
	if a.Name(child).Local != "child" {
		t.Fatalf("child id remapped: %v", a.Name(child))
	}
	if a.Value(text) != "one" {
		t.Fatalf("text id remapped: %q", a.Value(text))
	}
	if a.DocumentElement(doc) != root || a.FirstChild(root) != child {
		t.Fatal("structure links changed by growth")
	}
}

func TestArenaContains(t *testing.T) {
	a := New()
	if a.Contains(NodeID(0)) {
		t.Fatal("empty arena should contain nothing")
	}
	id := a.NewElement(LocalName("e"))
	if !a.Contains(id) {
		t.Fatal("allocated id not contained")
	}
	if a.Contains(NodeID(1)) || a.Contains(NilNode) {
		t.Fatal("unallocated id reported as contained")
	}
}

func TestBuildTree(t *testing.T) {
	a := New()

	doc := a.NewDocument()
	root := a.NewElement(LocalName("root"))
	a.AppendChild(doc, root)

	first := a.NewElement(LocalName("first"))
	second := a.NewElement(LocalName("second"))
	a.AppendChild(root, first)
	a.AppendChild(root, second)
	a.AppendChild(second, a.NewText("hello"))

	if a.FirstChild(root) != first || a.LastChild(root) != second {
		t.Fatal("child links wrong")
	}
	if a.NextSibling(first) != second || a.PreviousSibling(second) != first {
		t.Fatal("sibling links wrong")
	}
	if a.StringValue(doc) != "hello" {
		t.Fatalf("expected string value hello, got %q", a.StringValue(doc))
	}

	var order []string
	for c := range a.Children(root) {
		order = append(order, a.Name(c).Local)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected child order %v", order)
	}
}

func TestSetAttributeReplaces(t *testing.T) {
	a := New()
	e := a.NewElement(LocalName("e"))

	a.SetAttribute(e, LocalName("a"), "1")
	a.SetAttribute(e, LocalName("b"), "2")
	a.SetAttribute(e, LocalName("a"), "3")

	if v, _ := a.Attribute(e, LocalName("a")); v != "3" {
		t.Fatalf("expected replaced value 3, got %q", v)
	}

	var names []string
	for at := range a.Attributes(e) {
		names = append(names, a.Name(at).Local)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected attribute order %v", names)
	}
	for at := range a.Attributes(e) {
		if a.Parent(at) != e {
			t.Fatal("attribute parent should be its element")
		}
	}
}

func TestAppendChildContractPanics(t *testing.T) {
	a := New()
	doc := a.NewDocument()
	e := a.NewElement(LocalName("e"))
	a.AppendChild(doc, e)

	expectPanic(t, "re-append attached node", func() {
		a.AppendChild(doc, e)
	})
	expectPanic(t, "append out-of-arena id", func() {
		a.AppendChild(doc, NodeID(99))
	})

	a.SetAttribute(e, LocalName("x"), "1")
	var attrID NodeID
	for at := range a.Attributes(e) {
		attrID = at
	}
	expectPanic(t, "append attribute node", func() {
		a.AppendChild(doc, attrID)
	})
}

func expectPanic(t *testing.T, note string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", note)
		}
	}()
	fn()
}

func TestMarkTruncate(t *testing.T) {
	a := New()
	a.NewElement(LocalName("keep"))
	m := a.mark()

	a.NewElement(LocalName("drop"))
	a.NewText("drop too")
	a.truncate(m)

	if a.Len() != 1 {
		t.Fatalf("expected 1 node after truncate, got %d", a.Len())
	}
	if a.Name(NodeID(0)).Local != "keep" {
		t.Fatal("kept node damaged by truncate")
	}
	if a.Contains(NodeID(1)) {
		t.Fatal("truncated id still contained")
	}

	// Slots above the mark are reusable.
	id := a.NewElement(LocalName("fresh"))
	if id != NodeID(1) || a.Name(id).Local != "fresh" {
		t.Fatalf("expected reuse of slot 1, got %d (%v)", id, a.Name(id))
	}
}
