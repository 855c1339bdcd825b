// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isingtest provides small, exactly-analyzable Configuration
// implementations used across this module's package tests: a periodic
// 1-D Ising chain (single-spin-flip, symmetric proposals) and a
// two-state system with a deliberately asymmetric proposer. Both are
// test fixtures only, not part of the public API.
package isingtest

import (
	"github.com/SpeckFleck/mocasinns/model"
	"github.com/SpeckFleck/mocasinns/rng"
)

// IsingChain is a periodic 1-D Ising lattice of N spins (±1), with
// Hamiltonian E = -Σ s_i·s_{i+1}, sampled by single-spin-flip moves.
// Single-spin-flip proposals are symmetric, so every IsingFlip has
// SelectionProbabilityFactor 1.
type IsingChain struct {
	spins  []int8
	energy model.Energy
}

// NewIsingChain builds an N-spin chain with every spin up.
func NewIsingChain(n int) *IsingChain {
	spins := make([]int8, n)
	for i := range spins {
		spins[i] = 1
	}
	c := &IsingChain{spins: spins}
	c.energy = c.totalEnergy()
	return c
}

func (c *IsingChain) totalEnergy() model.Energy {
	var e int
	n := len(c.spins)
	for i := 0; i < n; i++ {
		e -= int(c.spins[i]) * int(c.spins[(i+1)%n])
	}
	return model.Energy(e)
}

// Size implements model.Configuration.
func (c *IsingChain) Size() int { return len(c.spins) }

// Energy implements model.Configuration.
func (c *IsingChain) Energy() model.Energy { return c.energy }

// Spin returns the value (±1) of the i-th spin.
func (c *IsingChain) Spin(i int) int8 { return c.spins[i] }

// Clone returns an independent copy of c, for tests that need to run
// two simulations forward from the same configuration state.
func (c *IsingChain) Clone() *IsingChain {
	spins := append([]int8(nil), c.spins...)
	return &IsingChain{spins: spins, energy: c.energy}
}

// ProposeStep implements model.Configuration.
func (c *IsingChain) ProposeStep(r rng.Source) *IsingFlip {
	n := len(c.spins)
	i := int(r.UniformInt(uint32(n)))
	left := (i - 1 + n) % n
	right := (i + 1) % n
	// Flipping spin i changes each of its two bonds from -s_i*s_j to
	// +s_i*s_j, i.e. ΔE = 2·s_i·(s_left + s_right).
	delta := 2 * int(c.spins[i]) * (int(c.spins[left]) + int(c.spins[right]))
	return &IsingFlip{chain: c, site: i, deltaE: model.Energy(delta)}
}

// IsingFlip is the elementary move over IsingChain: flip one spin.
type IsingFlip struct {
	chain  *IsingChain
	site   int
	deltaE model.Energy
}

// IsExecutable implements model.Step; single-spin flips are always legal.
func (s *IsingFlip) IsExecutable() bool { return true }

// DeltaE implements model.Step.
func (s *IsingFlip) DeltaE() model.Energy { return s.deltaE }

// SelectionProbabilityFactor implements model.Step; single-spin-flip
// proposals are symmetric.
func (s *IsingFlip) SelectionProbabilityFactor() float64 { return 1 }

// Execute implements model.Step.
func (s *IsingFlip) Execute() {
	s.chain.spins[s.site] = -s.chain.spins[s.site]
	s.chain.energy += s.deltaE
}

// TwoState is a two-level system (state 0 has energy 0, state 1 has
// energy 1) whose proposer is deliberately asymmetric: forward-move
// frequencies p(0→1) = twoStateForward01 and p(1→0) = twoStateForward10
// differ, so the reverse/forward proposal-density ratios q(0→1) =
// twoStateForward10/twoStateForward01 = 2 and q(1→0) =
// twoStateForward01/twoStateForward10 = 1/2 are genuinely realized
// rather than merely declared. This exercises the
// SelectionProbabilityFactor term of the acceptance rule end to end.
type TwoState struct {
	state int
}

// NewTwoState returns a TwoState starting in state 0.
func NewTwoState() *TwoState { return &TwoState{} }

// Size implements model.Configuration.
func (t *TwoState) Size() int { return 1 }

// Energy implements model.Configuration.
func (t *TwoState) Energy() model.Energy { return model.Energy(t.state) }

// State returns the current state, 0 or 1.
func (t *TwoState) State() int { return t.state }

const (
	// twoStateForward01 is the per-step probability of proposing the
	// 0→1 flip while in state 0; the rest of the time state 0 proposes
	// an idle (non-executable) move.
	twoStateForward01 = 1.0 / 3.0
	// twoStateForward10 is the per-step probability of proposing the
	// 1→0 flip while in state 1.
	twoStateForward10 = 2.0 / 3.0
)

// ProposeStep implements model.Configuration. TwoState proposes the
// flip to the other state with a frequency that depends on the current
// state (twoStateForward01 from state 0, twoStateForward10 from state
// 1); the rest of the time it proposes a non-executable idle move. This
// realizes p(0→1) ≠ p(1→0) as an actual difference in proposal
// densities, not just a reported SelectionProbabilityFactor.
func (t *TwoState) ProposeStep(r rng.Source) *TwoStateFlip {
	forward := twoStateForward01
	q := 2.0
	if t.state == 1 {
		forward = twoStateForward10
		q = 0.5
	}
	if r.Uniform01() >= forward {
		return &TwoStateFlip{owner: t, next: t.state, executable: false, q: q}
	}
	next := 1 - t.state
	return &TwoStateFlip{
		owner:      t,
		next:       next,
		deltaE:     model.Energy(next - t.state),
		q:          q,
		executable: true,
	}
}

// TwoStateFlip is the elementary move over TwoState.
type TwoStateFlip struct {
	owner      *TwoState
	next       int
	deltaE     model.Energy
	q          float64
	executable bool
}

// IsExecutable implements model.Step; it is false for the idle move
// ProposeStep reports the rest of the time.
func (s *TwoStateFlip) IsExecutable() bool { return s.executable }

// DeltaE implements model.Step.
func (s *TwoStateFlip) DeltaE() model.Energy { return s.deltaE }

// SelectionProbabilityFactor implements model.Step.
func (s *TwoStateFlip) SelectionProbabilityFactor() float64 { return s.q }

// Execute implements model.Step.
func (s *TwoStateFlip) Execute() { s.owner.state = s.next }
