// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines the abstract contract the sampling engines are
// generic over: a Configuration and the Steps it can propose. No
// physical model is provided here — the engines must be free to sample
// any model satisfying these two interfaces.
package model

import "github.com/SpeckFleck/mocasinns/rng"

// Energy is a signed energy value. It is the key type used by
// Wang–Landau's density-of-states and incidence histograms, so it must
// be usable as a map key and support ordering; float64's built-in
// comparisons give it both for free.
type Energy float64

// Temperature is an inverse temperature (β), kept as a distinct type
// from Energy so that the two are not confusable. Both are scalar
// float64 types; a vector- or tensor-valued β is not supported.
type Temperature float64

// Times returns β·E as a dimensionless float64, the quantity compared
// against ln(q) and exponentiated in the Metropolis acceptance rule.
func (t Temperature) Times(e Energy) float64 {
	return float64(t) * float64(e)
}

// Configuration is the state being sampled. S is the concrete Step type
// this Configuration proposes; it is a type parameter rather than an
// interface-returning method so that a caller holding a Step knows its
// concrete type without a type assertion.
type Configuration[S Step] interface {
	// Size reports the cardinality of elementary sites in the
	// configuration (e.g. the number of spins in a lattice).
	Size() int

	// Energy reports the configuration's current total energy.
	Energy() Energy

	// ProposeStep draws a candidate mutation using r. ProposeStep must
	// be pure with respect to r: it may advance r's state but must not
	// otherwise mutate the Configuration. Calling ProposeStep does not
	// commit the move; Step.Execute does.
	ProposeStep(r rng.Source) S
}

// Step encapsulates one candidate mutation of a Configuration.
//
// Invariant: between a call to ProposeStep and a call to Execute on the
// Step it returned, the owning Configuration is unchanged. After
// Execute, the Configuration's total energy equals the energy it had
// before Execute plus DeltaE().
type Step interface {
	// IsExecutable reports whether the move is legal in the
	// Configuration's current state.
	IsExecutable() bool

	// DeltaE is the signed change in energy this Step would cause if
	// executed. It must be exact and deterministic for this Step
	// instance, independent of whether Execute is ever called.
	DeltaE() Energy

	// SelectionProbabilityFactor is q = p(reverse)/p(forward), the
	// ratio of proposal densities for the reverse move versus this
	// move. It is 1 when the proposal scheme is symmetric.
	SelectionProbabilityFactor() float64

	// Execute mutates the owning Configuration in place. Execute must
	// be called at most once per accepted Step.
	Execute()
}
