// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package documents

// Ref is a shared-ownership handle to a Registry with runtime-checked
// access. Multiple call sites (the owning collection, plus collaborators
// such as an evaluator's fn:doc implementation reached mid-query) hold the
// same Ref and borrow the registry through it.
//
// Two modes exist: Borrow grants shared read access, BorrowMut grants
// exclusive write access. Taking exclusive access while any borrow is
// outstanding, or any access while exclusive access is outstanding, is a
// contract violation and panics. The check is a misuse detector for
// reentrant call paths, not a synchronization primitive: the collection is
// single-threaded by contract and a violation means a collaborator is
// holding a borrow across a call that needs the registry again in an
// incompatible mode.
type Ref struct {
	registry *Registry

	// borrows counts outstanding shared borrows; exclusiveBorrow is the
	// sentinel for one outstanding exclusive borrow.
	borrows int32
}

const exclusiveBorrow int32 = -1

// NewRef creates a Ref around a fresh, empty registry.
func NewRef() *Ref {
	return &Ref{registry: newRegistry()}
}

// Borrow takes shared read access to the registry. The returned release
// function must be called exactly once when the borrow ends; releasing twice
// panics.
func (r *Ref) Borrow() (*Registry, func()) {
	if r.borrows == exclusiveBorrow {
		panic("documents: registry borrowed while an exclusive borrow is outstanding")
	}
	r.borrows++
	return r.registry, r.releaseShared()
}

// BorrowMut takes exclusive write access to the registry. The returned
// release function must be called exactly once when the borrow ends.
func (r *Ref) BorrowMut() (*Registry, func()) {
	if r.borrows != 0 {
		panic("documents: exclusive registry borrow while another borrow is outstanding")
	}
	r.borrows = exclusiveBorrow
	return r.registry, r.releaseExclusive()
}

func (r *Ref) releaseShared() func() {
	released := false
	return func() {
		if released {
			panic("documents: registry borrow released twice")
		}
		released = true
		r.borrows--
	}
}

func (r *Ref) releaseExclusive() func() {
	released := false
	return func() {
		if released {
			panic("documents: registry borrow released twice")
		}
		released = true
		r.borrows = 0
	}
}

// With runs fn under a shared borrow.
func (r *Ref) With(fn func(*Registry)) {
	reg, release := r.Borrow()
	defer release()
	fn(reg)
}

// WithMut runs fn under an exclusive borrow.
func (r *Ref) WithMut(fn func(*Registry)) {
	reg, release := r.BorrowMut()
	defer release()
	fn(reg)
}
