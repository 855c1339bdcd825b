// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histogram implements the keyed numeric container that backs
// Wang–Landau's density-of-states and incidence tracking: insert/lookup
// by key, flatness testing, ordered iteration and pointwise arithmetic
// against another histogram over the same key set.
//
// Two implementations satisfy the same Histogram interface: Histocrete,
// for unbinned discrete keys (e.g. exact integer lattice energies), and
// Binned, for continuous values bucketed through a width/reference
// binning functor. Which one a caller needs is a property of the
// physical model, which this package does not know about.
package histogram

import (
	"bytes"
	"cmp"
	"encoding/gob"
	"fmt"
	"slices"
)

// Numeric is the set of value types a Histogram may hold: Wang–Landau
// uses float64 for the log-density of states and an integer count for
// incidence.
type Numeric interface {
	~float64 | ~int | ~int64
}

// ErrKeyMismatch is returned by pointwise arithmetic when the two
// histograms do not share the same key set.
var ErrKeyMismatch = fmt.Errorf("histogram: key sets do not match")

// Histogram is a keyed numeric container over key type K and value type
// V. Implementations: Histocrete (unbinned, K is used verbatim) and
// Binned (continuous X mapped through a binning functor into K).
type Histogram[K cmp.Ordered, V Numeric] interface {
	// Insert adds delta to the value stored at k, creating the bin if
	// it did not already exist.
	Insert(k K, delta V)

	// Set overwrites the value stored at k, creating the bin if it did
	// not already exist.
	Set(k K, v V)

	// Lookup returns the value at k and whether k is a known bin.
	Lookup(k K) (V, bool)

	// Keys returns the known bins in ascending key order.
	Keys() []K

	// MinY returns the minimum value over bins whose value is
	// non-zero. MinY returns 0 if there are no non-zero bins.
	MinY() float64

	// MeanY returns the mean value over bins whose value is non-zero.
	// MeanY returns 0 if there are no non-zero bins.
	MeanY() float64

	// Flatness is MinY()/MeanY(), computed over non-zero-incidence
	// bins only so that energies the walk has not yet reached cannot
	// stall a flatness check.
	Flatness() float64
}

// minMeanNonZero is the shared MinY/MeanY/Flatness implementation over
// any ordered map of numeric values; both Histocrete and Binned funnel
// through it so the "exclude zero bins" rule is defined in one place.
func minMeanNonZero[K cmp.Ordered, V Numeric](m map[K]V) (minY, meanY float64) {
	var sum float64
	var n int
	var min V
	first := true
	for _, v := range m {
		if v == 0 {
			continue
		}
		if first || v < min {
			min = v
			first = false
		}
		sum += float64(v)
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return float64(min), sum / float64(n)
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func sameKeySet[K cmp.Ordered, V Numeric](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Histocrete is an unbinned Histogram: inserted keys are used verbatim,
// suitable for models whose energies are already discrete (e.g. integer
// spin-lattice energies).
type Histocrete[K cmp.Ordered, V Numeric] struct {
	Bins map[K]V
}

// NewHistocrete returns an empty Histocrete.
func NewHistocrete[K cmp.Ordered, V Numeric]() *Histocrete[K, V] {
	return &Histocrete[K, V]{Bins: make(map[K]V)}
}

// Insert implements Histogram.
func (h *Histocrete[K, V]) Insert(k K, delta V) {
	h.Bins[k] += delta
}

// Set implements Histogram.
func (h *Histocrete[K, V]) Set(k K, v V) {
	h.Bins[k] = v
}

// Lookup implements Histogram.
func (h *Histocrete[K, V]) Lookup(k K) (V, bool) {
	v, ok := h.Bins[k]
	return v, ok
}

// Keys implements Histogram.
func (h *Histocrete[K, V]) Keys() []K {
	return sortedKeys(h.Bins)
}

// MinY implements Histogram.
func (h *Histocrete[K, V]) MinY() float64 {
	min, _ := minMeanNonZero(h.Bins)
	return min
}

// MeanY implements Histogram.
func (h *Histocrete[K, V]) MeanY() float64 {
	_, mean := minMeanNonZero(h.Bins)
	return mean
}

// Flatness implements Histogram.
func (h *Histocrete[K, V]) Flatness() float64 {
	min, mean := minMeanNonZero(h.Bins)
	if mean == 0 {
		return 0
	}
	return min / mean
}

// ResetCounts sets every known bin's value to zero without discarding
// the key set, matching Wang–Landau's incidence reset between
// refinement stages: keys the walk has already discovered remain
// known, but are excluded from Flatness until revisited.
func (h *Histocrete[K, V]) ResetCounts() {
	for k := range h.Bins {
		h.Bins[k] = 0
	}
}

// Add adds other into the receiver bin-by-bin. Add returns
// ErrKeyMismatch if the two histograms' key sets differ.
func (h *Histocrete[K, V]) Add(other *Histocrete[K, V]) error {
	if !sameKeySet(h.Bins, other.Bins) {
		return ErrKeyMismatch
	}
	for k, v := range other.Bins {
		h.Bins[k] += v
	}
	return nil
}

// Sub subtracts other from the receiver bin-by-bin. Sub returns
// ErrKeyMismatch if the two histograms' key sets differ.
func (h *Histocrete[K, V]) Sub(other *Histocrete[K, V]) error {
	if !sameKeySet(h.Bins, other.Bins) {
		return ErrKeyMismatch
	}
	for k, v := range other.Bins {
		h.Bins[k] -= v
	}
	return nil
}

// DivElem divides the receiver by other bin-by-bin. DivElem returns
// ErrKeyMismatch if the two histograms' key sets differ.
func (h *Histocrete[K, V]) DivElem(other *Histocrete[K, V]) error {
	if !sameKeySet(h.Bins, other.Bins) {
		return ErrKeyMismatch
	}
	for k, v := range other.Bins {
		h.Bins[k] /= v
	}
	return nil
}

// histocreteState is the gob-serialized shape of a Histocrete.
type histocreteState[K cmp.Ordered, V Numeric] struct {
	Bins map[K]V
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h *Histocrete[K, V]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(histocreteState[K, V]{Bins: h.Bins}); err != nil {
		return nil, fmt.Errorf("histogram: marshal Histocrete: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Histocrete[K, V]) UnmarshalBinary(data []byte) error {
	var s histocreteState[K, V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("histogram: unmarshal Histocrete: %w", err)
	}
	h.Bins = s.Bins
	return nil
}
