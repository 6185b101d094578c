// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package util provides small shared helpers with no dependencies on the
// rest of the module.
package util

import (
	"bytes"
	"strings"
	"sync"
)

// SyncPool is a typed wrapper around sync.Pool for pointer reuse.
type SyncPool[T any] struct {
	pool sync.Pool
}

// NewSyncPool creates a pool producing zero values of T.
func NewSyncPool[T any]() *SyncPool[T] {
	return &SyncPool[T]{
		pool: sync.Pool{
			New: func() any {
				return new(T)
			},
		},
	}
}

// Get retrieves a *T from the pool.
func (p *SyncPool[T]) Get() *T {
	return p.pool.Get().(*T)
}

// Put returns a *T to the pool. The caller must not retain the pointer.
func (p *SyncPool[T]) Put(x *T) {
	p.pool.Put(x)
}

// StringBuilderPool recycles strings.Builder values. Needs custom Put logic
// to reset the builder before reuse.
type StringBuilderPool struct {
	pool sync.Pool
}

// NewStringBuilderPool creates a builder pool.
func NewStringBuilderPool() *StringBuilderPool {
	return &StringBuilderPool{
		pool: sync.Pool{
			New: func() any {
				return &strings.Builder{}
			},
		},
	}
}

// Get retrieves a builder from the pool.
func (p *StringBuilderPool) Get() *strings.Builder {
	return p.pool.Get().(*strings.Builder)
}

// Put resets the builder and returns it to the pool.
func (p *StringBuilderPool) Put(sb *strings.Builder) {
	sb.Reset()
	p.pool.Put(sb)
}

// BufferPool recycles byte buffers.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool creates a buffer pool whose buffers start with the given
// capacity.
func NewBufferPool(capacity int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, capacity))
			},
		},
	}
}

// Get retrieves a buffer from the pool.
func (p *BufferPool) Get() *bytes.Buffer {
	return p.pool.Get().(*bytes.Buffer)
}

// Put resets the buffer and returns it to the pool.
func (p *BufferPool) Put(buf *bytes.Buffer) {
	buf.Reset()
	p.pool.Put(buf)
}
