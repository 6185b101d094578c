// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package xmltree

import (
	"encoding/xml"
	"strings"
)

// Serialize renders the subtree rooted at id back to XML text. It is a
// diagnostic form: prefixes are not preserved by parsing, so elements are
// written with local names and a default-namespace declaration wherever the
// namespace changes relative to the parent.
func (a *Arena) Serialize(id NodeID) string {
	if !a.Contains(id) {
		return ""
	}
	sb := getBuilder()
	defer putBuilder(sb)
	a.serialize(id, "", sb)
	return sb.String()
}

func (a *Arena) serialize(id NodeID, inheritedNS string, sb *strings.Builder) {
	n := a.node(id)
	switch n.kind {
	case KindDocument:
		for c := a.FirstChild(id); c != NilNode; c = a.NextSibling(c) {
			a.serialize(c, inheritedNS, sb)
		}

	case KindElement:
		name := GetName(n.name)
		sb.WriteByte('<')
		sb.WriteString(name.Local)
		if name.Space != inheritedNS {
			sb.WriteString(` xmlns="`)
			escape(sb, name.Space)
			sb.WriteByte('"')
		}
		for at := n.firstAttr; at != NilNode; at = a.node(at).nextSib {
			aname := GetName(a.node(at).name)
			if aname.Space == XMLNSNamespace {
				continue // declarations are re-derived from namespaces
			}
			sb.WriteByte(' ')
			sb.WriteString(aname.Local)
			sb.WriteString(`="`)
			escape(sb, a.node(at).text)
			sb.WriteByte('"')
		}
		if n.firstChild == NilNode {
			sb.WriteString("/>")
			return
		}
		sb.WriteByte('>')
		for c := n.firstChild; c != NilNode; c = a.NextSibling(c) {
			a.serialize(c, name.Space, sb)
		}
		sb.WriteString("</")
		sb.WriteString(name.Local)
		sb.WriteByte('>')

	case KindText:
		escape(sb, n.text)

	case KindComment:
		sb.WriteString("<!--")
		sb.WriteString(n.text)
		sb.WriteString("-->")

	case KindProcessingInstruction:
		sb.WriteString("<?")
		sb.WriteString(GetName(n.name).Local)
		if n.text != "" {
			sb.WriteByte(' ')
			sb.WriteString(n.text)
		}
		sb.WriteString("?>")

	case KindAttribute:
		escape(sb, n.text)
	}
}

func escape(sb *strings.Builder, s string) {
	xml.EscapeText(sb, []byte(s)) //nolint:errcheck // Builder writes cannot fail
}
