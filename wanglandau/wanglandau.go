// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wanglandau implements Wang–Landau flat-histogram sampling: a
// refinement loop that estimates a model's log-density of states by
// iteratively shrinking a modification factor once the walk's incidence
// histogram is flat enough.
//
// Unlike metropolis, which samples a fixed Boltzmann distribution at a
// caller-chosen temperature, Simulation here drives the walk toward
// uniform coverage of the energy axis, building up S[E] = ln g(E) as a
// byproduct of a self-correcting random walk, grounded on the same
// accept/reject loop shape as gonum's optimize package uses for its own
// iterate-until-converged core (gonum-gonum/optimize/minimize.go).
package wanglandau

import (
	"math"

	"github.com/SpeckFleck/mocasinns/histogram"
	"github.com/SpeckFleck/mocasinns/model"
	"github.com/SpeckFleck/mocasinns/rng"
	"github.com/SpeckFleck/mocasinns/simulation"
)

// Simulation runs Wang–Landau sampling over a Configuration C whose Step
// type is S, building up a log-density-of-states histogram keyed by
// model.Energy.
type Simulation[S model.Step, C model.Configuration[S]] struct {
	*simulation.Base[S, C]
	Params Parameters

	lnF float64
	s   *histogram.Histocrete[model.Energy, float64]
	h   *histogram.Histocrete[model.Energy, int64]
}

// New returns a Simulation with the given parameters, RNG source and
// configuration, its density-of-states and incidence histograms empty
// and its modification factor at Params.ModificationFactorInitial. New
// returns ErrInvalidParameter if params is invalid.
func New[S model.Step, C model.Configuration[S]](params Parameters, source rng.Source, config C) (*Simulation[S, C], error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Simulation[S, C]{
		Base:   simulation.NewBase[S](source, config),
		Params: params,
		lnF:    params.ModificationFactorInitial,
		s:      histogram.NewHistocrete[model.Energy, float64](),
		h:      histogram.NewHistocrete[model.Energy, int64](),
	}, nil
}

// LnModificationFactor returns the current log-space modification
// factor ln_f.
func (sim *Simulation[S, C]) LnModificationFactor() float64 { return sim.lnF }

// GetDensityOfStates returns a copy of the accumulated log-density-of-
// states histogram S[E]. Physical g(E) is exp(S[E]); S is kept in log
// form to avoid overflow at low energies.
func (sim *Simulation[S, C]) GetDensityOfStates() *histogram.Histocrete[model.Energy, float64] {
	out := histogram.NewHistocrete[model.Energy, float64]()
	for _, k := range sim.s.Keys() {
		v, _ := sim.s.Lookup(k)
		out.Set(k, v)
	}
	return out
}

// DoSteps runs n Wang–Landau steps at the current modification factor
// ln_f. Every step — accepted or not — increments S and H at the
// resulting current energy; DoSteps does not clear IsTerminating or
// poll for a POSIX signal, it is the inner loop DoSimulation is built
// from.
func (sim *Simulation[S, C]) DoSteps(n uint64) {
	for i := uint64(0); i < n; i++ {
		eCur := sim.Config.Energy()
		step := sim.Config.ProposeStep(sim.RNG)
		if step.IsExecutable() {
			eNew := eCur + step.DeltaE()
			q := step.SelectionProbabilityFactor()
			sCur, _ := sim.s.Lookup(eCur) // unseen energies default to S=0.
			sNew, _ := sim.s.Lookup(eNew)
			if sim.RNG.Uniform01() < q*math.Exp(sCur-sNew) {
				step.Execute()
				eCur = eNew
			}
		}
		sim.s.Insert(eCur, sim.lnF)
		sim.h.Insert(eCur, 1)
	}
}

// DoSimulation runs the full refinement loop: sweep in batches of
// Params.SweepSteps until the incidence histogram's flatness reaches
// Params.Flatness, then shrink ln_f by
// Params.ModificationFactorMultiplier and reset the incidence
// histogram (S is preserved across the reset), repeating until ln_f is
// no greater than Params.ModificationFactorFinal. It returns
// simulation.StatusInterrupted if a POSIX signal arrives at a sweep
// boundary, preserving S and H as accumulated so far.
func (sim *Simulation[S, C]) DoSimulation() simulation.Status {
	sim.BeginCall()
	sim.lnF = sim.Params.ModificationFactorInitial
	sim.h.ResetCounts()

	for sim.lnF > sim.Params.ModificationFactorFinal {
		for {
			sim.DoSteps(sim.Params.SweepSteps)
			sim.DispatchSweep()
			if sim.PollPOSIXSignal() {
				return simulation.StatusInterrupted
			}
			if sim.h.Flatness() >= sim.Params.Flatness {
				break
			}
		}
		sim.lnF *= sim.Params.ModificationFactorMultiplier
		sim.h.ResetCounts()
	}
	return simulation.StatusConverged
}
