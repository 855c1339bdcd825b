// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observable

import (
	"math"
	"testing"
)

func TestVectorAccumulator(t *testing.T) {
	a := NewVectorAccumulator[int]()
	for _, v := range []int{1, 2, 3} {
		a.Accumulate(v)
	}
	if len(a.Samples) != 3 || a.Samples[0] != 1 || a.Samples[2] != 3 {
		t.Fatalf("Samples = %v, want [1 2 3]", a.Samples)
	}
}

func TestMeanVarianceAccumulator(t *testing.T) {
	a := NewMeanVarianceAccumulator()
	samples := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	for _, v := range samples {
		a.Accumulate(v)
	}

	if a.N() != len(samples) {
		t.Fatalf("N() = %d, want %d", a.N(), len(samples))
	}
	wantMean := 5.0
	if math.Abs(a.Mean()-wantMean) > 1e-9 {
		t.Fatalf("Mean() = %v, want %v", a.Mean(), wantMean)
	}
	wantVar := 32.0 / 7.0 // sample variance, Bessel-corrected
	if math.Abs(a.Variance()-wantVar) > 1e-9 {
		t.Fatalf("Variance() = %v, want %v", a.Variance(), wantVar)
	}
}

func TestMeanVarianceAccumulatorSingleSample(t *testing.T) {
	a := NewMeanVarianceAccumulator()
	a.Accumulate(3.0)
	if a.Variance() != 0 {
		t.Fatalf("Variance() with one sample = %v, want 0", a.Variance())
	}
}

func TestObservableIsPlainFunction(t *testing.T) {
	type config struct{ energy float64 }
	var obs Observable[config, float64] = func(c config) float64 { return c.energy }
	if got, want := obs(config{energy: 3.5}), 3.5; got != want {
		t.Fatalf("Observable(...) = %v, want %v", got, want)
	}
}
