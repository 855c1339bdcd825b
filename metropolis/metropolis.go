// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metropolis implements Metropolis–Hastings sampling at a fixed
// inverse temperature: the step loop, equilibration, the
// measurement/accumulation loop, multi-β sweeps and autocorrelation
// analysis.
//
// The acceptance rule realizes min(1, q·exp(−βΔE)), where q is the
// ratio of the reverse proposal density to the forward one
// (q = p(x|x')/p(x'|x)); q == 1 recovers the classic symmetric-proposal
// Metropolis rule. This is the generalized Metropolis–Hastings rule for
// possibly asymmetric proposals, grounded directly on gonum's
// stat/samplemv Metropolis-Hastings sampler (which fills a batch from a
// continuous target distribution) but rewritten for a discrete-energy
// accept/reject loop over a physical Configuration rather than a
// probability-density target.
package metropolis

import (
	"fmt"
	"math"

	"github.com/SpeckFleck/mocasinns/model"
	"github.com/SpeckFleck/mocasinns/observable"
	"github.com/SpeckFleck/mocasinns/rng"
	"github.com/SpeckFleck/mocasinns/simulation"
)

// Simulation runs Metropolis–Hastings sampling over a Configuration C
// whose Step type is S, measuring an Observable of value type V.
type Simulation[S model.Step, C model.Configuration[S], V any] struct {
	*simulation.Base[S, C]
	Params  Parameters
	Observe observable.Observable[C, V]
}

// New returns a Simulation with the given parameters, RNG source and
// configuration. New returns ErrInvalidParameter if params is invalid.
func New[S model.Step, C model.Configuration[S], V any](
	params Parameters,
	source rng.Source,
	config C,
	observe observable.Observable[C, V],
) (*Simulation[S, C, V], error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Simulation[S, C, V]{
		Base:    simulation.NewBase[S](source, config),
		Params:  params,
		Observe: observe,
	}, nil
}

// DoSteps runs n Metropolis steps at inverse temperature beta. It does
// not clear IsTerminating or poll for a POSIX signal; it is the inner
// loop the higher-level operations below are built from.
func (sim *Simulation[S, C, V]) DoSteps(n uint64, beta model.Temperature) {
	for i := uint64(0); i < n; i++ {
		step := sim.Config.ProposeStep(sim.RNG)
		if !step.IsExecutable() {
			continue
		}

		x := beta.Times(step.DeltaE())
		q := step.SelectionProbabilityFactor()

		// First arm: x <= ln(q) means q*exp(-x) >= 1, i.e. the move is
		// unconditionally accepted. q == 1 is the overwhelmingly common
		// symmetric-proposal case, so special-case it to skip the log
		// call entirely.
		var threshold float64
		if q != 1 {
			threshold = math.Log(q)
		}
		if x <= threshold {
			step.Execute()
			continue
		}

		// Second arm: accept with probability q*exp(-x).
		u := sim.RNG.Uniform01()
		if u < q*math.Exp(-x) {
			step.Execute()
		}
	}
}

// DoSimulation runs relaxation, then collects Params.MeasurementNumber
// samples of Observe spaced Params.StepsBetweenMeasurement steps apart,
// feeding each to acc. It returns simulation.StatusInterrupted, with acc
// holding whatever samples were collected before the signal, if a POSIX
// signal arrives mid-run.
func (sim *Simulation[S, C, V]) DoSimulation(beta model.Temperature, acc observable.Accumulator[V]) simulation.Status {
	sim.BeginCall()
	sim.DoSteps(sim.Params.RelaxationSteps, beta)
	return sim.measurementLoop(beta, acc)
}

// measurementLoop is DoSimulation's body without the BeginCall/relaxation
// bracketing, so DoMultiBetaSimulation can run it back to back across β
// values under a single termination-flag lifetime.
func (sim *Simulation[S, C, V]) measurementLoop(beta model.Temperature, acc observable.Accumulator[V]) simulation.Status {
	for m := uint64(0); m < sim.Params.MeasurementNumber; m++ {
		sim.DoSteps(sim.Params.StepsBetweenMeasurement, beta)
		sim.DispatchMeasurement()
		acc.Accumulate(sim.Observe(sim.Config))
		if sim.PollPOSIXSignal() {
			return simulation.StatusInterrupted
		}
	}
	return simulation.StatusOK
}

// DoMultiBetaSimulation runs relaxation and the measurement loop once
// per (beta, accumulator) pair, in order, under a single BeginCall and
// without resetting the Configuration between β values
// — the caller owns whatever warm-start behavior it wants. It returns
// the accumulators, populated in place. It stops early, returning
// simulation.StatusInterrupted, if IsTerminating becomes set partway
// through the sweep; accs retains whatever samples were collected for
// the betas processed so far.
//
// DoMultiBetaSimulation returns an error if betas and accs have
// different lengths.
func (sim *Simulation[S, C, V]) DoMultiBetaSimulation(betas []model.Temperature, accs []observable.Accumulator[V]) ([]observable.Accumulator[V], simulation.Status, error) {
	if len(betas) != len(accs) {
		return nil, simulation.StatusOK, fmt.Errorf("%w: betas and accs must have the same length (%d != %d)",
			simulation.ErrInvalidParameter, len(betas), len(accs))
	}

	sim.BeginCall()
	for i, beta := range betas {
		sim.DoSteps(sim.Params.RelaxationSteps, beta)
		status := sim.measurementLoop(beta, accs[i])
		if status == simulation.StatusInterrupted {
			return accs, simulation.StatusInterrupted, nil
		}
	}
	return accs, simulation.StatusOK, nil
}
