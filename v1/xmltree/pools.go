// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package xmltree

import (
	"strings"

	"github.com/xpathkit/xpathkit/v1/util"
)

// Pools for temporary objects on the parse and serialize paths. Text
// accumulation and serialization are the only places this package allocates
// scratch space repeatedly.
var (
	sbPool           = util.NewStringBuilderPool()
	stringReaderPool = util.NewSyncPool[strings.Reader]()
)

func getBuilder() *strings.Builder {
	return sbPool.Get()
}

func putBuilder(sb *strings.Builder) {
	sbPool.Put(sb)
}
