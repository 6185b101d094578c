// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode"
)

// Namespace URIs with fixed meaning in every document.
const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

// ParseError reports why a document could not be parsed.
type ParseError struct {
	Line int // 1-based input line, 0 if unknown
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("xml parse error on line %d: %s", e.Line, e.Msg)
	}
	return "xml parse error: " + e.Msg
}

// Parse builds a tree from the given XML text directly into the arena and
// returns the id of the new document node.
//
// On failure the arena is rolled back to its pre-parse state and a
// *ParseError is returned; no node allocated during the attempt remains
// reachable or allocated.
func Parse(a *Arena, text string) (NodeID, error) {
	m := a.mark()
	id, err := a.parse(text)
	if err != nil {
		a.truncate(m)
		return NilNode, err
	}
	return id, nil
}

func (a *Arena) parse(text string) (NodeID, error) {
	r := stringReaderPool.Get()
	r.Reset(text)
	defer stringReaderPool.Put(r)

	decoder := xml.NewDecoder(r)
	doc := a.NewDocument()

	// Stack of open elements; the document node sits at the bottom so
	// top-level comments and PIs attach naturally.
	stack := []NodeID{doc}
	sawRoot := false
	rootClosed := false

	pending := getBuilder()
	defer putBuilder(pending)

	flushText := func() {
		if pending.Len() == 0 {
			return
		}
		a.AppendChild(stack[len(stack)-1], a.NewText(pending.String()))
		pending.Reset()
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return NilNode, parseError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return NilNode, &ParseError{
					Line: line(decoder),
					Msg:  fmt.Sprintf("unexpected element %s after document element", t.Name.Local),
				}
			}
			flushText()
			elem := a.NewElement(Name(t.Name.Space, t.Name.Local))
			for _, at := range t.Attr {
				a.SetAttribute(elem, attrName(at.Name), at.Value)
			}
			a.AppendChild(stack[len(stack)-1], elem)
			stack = append(stack, elem)
			sawRoot = true

		case xml.EndElement:
			flushText()
			stack = stack[:len(stack)-1]
			if len(stack) == 1 {
				rootClosed = true
			}

		case xml.CharData:
			if len(stack) == 1 {
				if !isIgnorableOutsideRoot(string(t)) {
					return NilNode, &ParseError{
						Line: line(decoder),
						Msg:  "character data outside document element",
					}
				}
				continue
			}
			pending.Write(t)

		case xml.Comment:
			flushText()
			a.AppendChild(stack[len(stack)-1], a.NewComment(string(t)))

		case xml.ProcInst:
			if t.Target == "xml" {
				continue // XML declaration, not a PI
			}
			flushText()
			a.AppendChild(stack[len(stack)-1], a.NewProcessingInstruction(t.Target, string(t.Inst)))

		case xml.Directive:
			// DOCTYPE and friends carry no tree content.
		}
	}

	if !sawRoot {
		return NilNode, &ParseError{Msg: "missing document element"}
	}
	return doc, nil
}

// parseError converts a decoder error into a *ParseError.
func parseError(err error) *ParseError {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return &ParseError{Line: syn.Line, Msg: syn.Msg}
	}
	return &ParseError{Msg: err.Error()}
}

func line(decoder *xml.Decoder) int {
	// InputPos is cheap; the decoder tracks lines for its own errors.
	l, _ := decoder.InputPos()
	return l
}

// attrName maps xmlns declarations into the xmlns namespace so they compare
// like any other qualified attribute.
func attrName(n xml.Name) QName {
	space := n.Space
	if space == "xmlns" || (space == "" && n.Local == "xmlns") {
		space = XMLNSNamespace
	}
	return Name(space, n.Local)
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
