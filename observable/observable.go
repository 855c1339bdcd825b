// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observable defines the pluggable-measurement contract
// consumed by the Metropolis engine: a stateless function from a
// Configuration to a value, and an Accumulator that the engine feeds
// a stream of those values. The engine never inspects V; it only moves
// values from Observable to Accumulator.
package observable

// Observable computes a measurement V from a Configuration C. It must
// be stateless: repeated calls with an unchanged C return the same V.
type Observable[C, V any] func(c C) V

// Accumulator consumes a stream of values produced by an Observable.
// The core treats it opaquely — it is the caller's choice whether an
// Accumulator keeps a mean, a variance, or the raw samples.
type Accumulator[V any] interface {
	Accumulate(v V)
}

// VectorAccumulator is the default "return raw samples" Accumulator: it
// keeps every value it is given, in the order received.
type VectorAccumulator[V any] struct {
	Samples []V
}

// NewVectorAccumulator returns an empty VectorAccumulator.
func NewVectorAccumulator[V any]() *VectorAccumulator[V] {
	return &VectorAccumulator[V]{}
}

// Accumulate implements Accumulator.
func (a *VectorAccumulator[V]) Accumulate(v V) {
	a.Samples = append(a.Samples, v)
}

// MeanVarianceAccumulator keeps the running mean and variance of a
// scalar float64 observable using Welford's online algorithm, the same
// single-pass moment update gonum's stat package documents for its
// batch Mean/Variance helpers (see stat.go's MeanVariance), adapted here
// to consume one sample at a time rather than a whole slice.
type MeanVarianceAccumulator struct {
	n    int
	mean float64
	m2   float64
}

// NewMeanVarianceAccumulator returns an empty MeanVarianceAccumulator.
func NewMeanVarianceAccumulator() *MeanVarianceAccumulator {
	return &MeanVarianceAccumulator{}
}

// Accumulate implements Accumulator.
func (a *MeanVarianceAccumulator) Accumulate(v float64) {
	a.n++
	delta := v - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (v - a.mean)
}

// N returns the number of samples accumulated so far.
func (a *MeanVarianceAccumulator) N() int { return a.n }

// Mean returns the running mean of the accumulated samples.
func (a *MeanVarianceAccumulator) Mean() float64 { return a.mean }

// Variance returns the running sample variance (Bessel-corrected) of
// the accumulated samples. Variance returns 0 if fewer than two samples
// have been accumulated.
func (a *MeanVarianceAccumulator) Variance() float64 {
	if a.n < 2 {
		return 0
	}
	return a.m2 / float64(a.n-1)
}
