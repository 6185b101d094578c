// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

//go:build go1.23

package xmltree

import "unique"

// QName is a namespace-qualified name. Prefixes are not preserved; names
// compare equal when namespace URI and local part are equal.
type QName struct {
	Space string
	Local string
}

// Name constructs a QName in the given namespace.
func Name(space, local string) QName {
	return QName{Space: space, Local: local}
}

// LocalName constructs a QName with no namespace.
func LocalName(local string) QName {
	return QName{Local: local}
}

func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}
	return "{" + q.Space + "}" + q.Local
}

// NameHandle is an interned QName handle (Go 1.23+). Handles are comparable
// in O(1), which keeps name equality checks during traversal cheap.
type NameHandle = unique.Handle[QName]

// InternName interns a QName.
func InternName(q QName) NameHandle {
	return unique.Make(q)
}

// GetName retrieves the QName from a handle.
func GetName(h NameHandle) QName {
	return h.Value()
}

// EmptyName returns the zero handle used by unnamed node kinds.
func EmptyName() NameHandle {
	return unique.Handle[QName]{}
}
