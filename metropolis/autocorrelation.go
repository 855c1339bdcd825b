// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metropolis

import (
	"fmt"

	"github.com/SpeckFleck/mocasinns/model"
	"github.com/SpeckFleck/mocasinns/simulation"
	"gonum.org/v1/gonum/floats"
)

// AutocorrelationFunction computes C(t) for t in [0, maximalTime] for a
// scalar (float64) observable: after relaxation, collect
// maximalTime*simulationTimeFactor+1 samples spaced one sweep (Size()
// steps) apart, then average f[s·maximalTime]·f[s·maximalTime+t] over
// s in [0, simulationTimeFactor) and subtract μ². AutocorrelationFunction
// is a free function rather than a method because it requires scalar
// arithmetic on V that a fully generic Simulation[S, C, V] cannot
// express; AutocorrelationFunctionVector below is the vector-observable
// counterpart.
func AutocorrelationFunction[S model.Step, C model.Configuration[S]](
	sim *Simulation[S, C, float64],
	beta model.Temperature,
	maximalTime, simulationTimeFactor int,
) ([]float64, error) {
	if maximalTime <= 0 || simulationTimeFactor <= 0 {
		return nil, fmt.Errorf("%w: maximalTime and simulationTimeFactor must be positive", simulation.ErrInvalidParameter)
	}

	sim.BeginCall()
	sim.DoSteps(sim.Params.RelaxationSteps, beta)

	numSamples := maximalTime*simulationTimeFactor + 1
	samples := make([]float64, numSamples)
	systemSize := uint64(sim.Config.Size())
	for i := range samples {
		sim.DoSteps(systemSize, beta)
		samples[i] = sim.Observe(sim.Config)
	}

	mu := floats.Sum(samples) / float64(numSamples)

	c := make([]float64, maximalTime+1)
	for t := 0; t <= maximalTime; t++ {
		var sum float64
		for s := 0; s < simulationTimeFactor; s++ {
			sum += samples[s*maximalTime] * samples[s*maximalTime+t]
		}
		c[t] = sum/float64(simulationTimeFactor) - mu*mu
	}
	return c, nil
}

// IntegratedAutocorrelationTime computes
//
//	τ_int = 1 + 2·Σ_{t=1..maximalTime-1} (1 - t/maximalTime)·C(t)/C(0)
//
// from a C(t) slice returned by AutocorrelationFunction. It returns
// ErrDegenerateAutocorrelation if c[0] == 0, since the ratio is then
// undefined and there is no sensible fallback.
func IntegratedAutocorrelationTime(c []float64) (float64, error) {
	if len(c) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 lags to compute an integrated autocorrelation time", simulation.ErrInvalidParameter)
	}
	if c[0] == 0 {
		return 0, simulation.ErrDegenerateAutocorrelation
	}

	maximalTime := len(c) - 1
	tau := 1.0
	for t := 1; t < maximalTime; t++ {
		tau += 2 * (1 - float64(t)/float64(maximalTime)) * c[t] / c[0]
	}
	return tau, nil
}

// AutocorrelationFunctionVector is AutocorrelationFunction's counterpart
// for a vector-valued ([]float64) observable: division is pointwise.
// Every sample must have the same length; AutocorrelationFunctionVector
// panics otherwise, the same contract gonum's floats package itself
// uses for mismatched slice lengths.
func AutocorrelationFunctionVector[S model.Step, C model.Configuration[S]](
	sim *Simulation[S, C, []float64],
	beta model.Temperature,
	maximalTime, simulationTimeFactor int,
) ([][]float64, error) {
	if maximalTime <= 0 || simulationTimeFactor <= 0 {
		return nil, fmt.Errorf("%w: maximalTime and simulationTimeFactor must be positive", simulation.ErrInvalidParameter)
	}

	sim.BeginCall()
	sim.DoSteps(sim.Params.RelaxationSteps, beta)

	numSamples := maximalTime*simulationTimeFactor + 1
	samples := make([][]float64, numSamples)
	systemSize := uint64(sim.Config.Size())
	for i := range samples {
		sim.DoSteps(systemSize, beta)
		v := sim.Observe(sim.Config)
		samples[i] = append([]float64(nil), v...)
	}
	dim := len(samples[0])

	mu := make([]float64, dim)
	for _, v := range samples {
		floats.Add(mu, v)
	}
	floats.Scale(1/float64(numSamples), mu)

	c := make([][]float64, maximalTime+1)
	for t := 0; t <= maximalTime; t++ {
		sum := make([]float64, dim)
		for s := 0; s < simulationTimeFactor; s++ {
			prod := make([]float64, dim)
			floats.MulTo(prod, samples[s*maximalTime], samples[s*maximalTime+t])
			floats.Add(sum, prod)
		}
		floats.Scale(1/float64(simulationTimeFactor), sum)
		muSq := make([]float64, dim)
		floats.MulTo(muSq, mu, mu)
		floats.SubTo(sum, sum, muSq)
		c[t] = sum
	}
	return c, nil
}

// IntegratedAutocorrelationTimeVector is IntegratedAutocorrelationTime's
// pointwise counterpart for vector-valued C(t), dividing element-wise.
func IntegratedAutocorrelationTimeVector(c [][]float64) ([]float64, error) {
	if len(c) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 lags to compute an integrated autocorrelation time", simulation.ErrInvalidParameter)
	}
	dim := len(c[0])
	for _, v := range c[0] {
		if v == 0 {
			return nil, simulation.ErrDegenerateAutocorrelation
		}
	}

	maximalTime := len(c) - 1
	tau := make([]float64, dim)
	floats.AddConst(1, tau)
	for t := 1; t < maximalTime; t++ {
		weight := 1 - float64(t)/float64(maximalTime)
		ratio := make([]float64, dim)
		floats.DivTo(ratio, c[t], c[0])
		floats.AddScaled(tau, 2*weight, ratio)
	}
	return tau, nil
}
