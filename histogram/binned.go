// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Binned buckets continuous values through a binning functor
//
//	φ(x) = r + w·floor((x-r)/w)
//
// where w is the bin Width and r is the bin Reference. The bucket's
// left edge, a float64, is used as the key.
type Binned[V Numeric] struct {
	Width     float64
	Reference float64
	bins      *Histocrete[float64, V]
}

// NewBinned returns an empty Binned histogram with the given width and
// reference point. NewBinned panics if width is not positive.
func NewBinned[V Numeric](width, reference float64) *Binned[V] {
	if width <= 0 {
		panic("histogram: Binned width must be positive")
	}
	return &Binned[V]{
		Width:     width,
		Reference: reference,
		bins:      NewHistocrete[float64, V](),
	}
}

// NewBinnedLike returns an empty Binned histogram sharing other's bin
// set: same width, reference, and keys, all values zero.
func NewBinnedLike[V Numeric](other *Binned[V]) *Binned[V] {
	b := NewBinned[V](other.Width, other.Reference)
	for _, k := range other.Keys() {
		b.bins.Set(k, 0)
	}
	return b
}

// Key applies the binning functor φ to a raw value x, returning the
// left edge of the bucket x falls into.
func (b *Binned[V]) Key(x float64) float64 {
	n := floorDiv(x-b.Reference, b.Width)
	return b.Reference + b.Width*n
}

func floorDiv(a, w float64) float64 {
	q := a / w
	f := float64(int64(q))
	if q < f {
		f--
	}
	return f
}

// InsertValue bins x and adds delta to that bucket, creating it if
// necessary. This is the usual way to feed raw (unbinned) observations
// into a Binned histogram.
func (b *Binned[V]) InsertValue(x float64, delta V) {
	b.bins.Insert(b.Key(x), delta)
}

// Insert implements Histogram. Like InsertValue, it bins k through Key
// before adding, so an already-binned key maps to its own bucket.
func (b *Binned[V]) Insert(k float64, delta V) { b.bins.Insert(b.Key(k), delta) }

// Set implements Histogram.
func (b *Binned[V]) Set(k float64, v V) { b.bins.Set(b.Key(k), v) }

// Lookup implements Histogram.
func (b *Binned[V]) Lookup(k float64) (V, bool) { return b.bins.Lookup(b.Key(k)) }

// Keys implements Histogram.
func (b *Binned[V]) Keys() []float64 { return b.bins.Keys() }

// MinY implements Histogram.
func (b *Binned[V]) MinY() float64 { return b.bins.MinY() }

// MeanY implements Histogram.
func (b *Binned[V]) MeanY() float64 { return b.bins.MeanY() }

// Flatness implements Histogram.
func (b *Binned[V]) Flatness() float64 { return b.bins.Flatness() }

// ResetCounts zeroes every known bin's value without discarding the bin
// set, mirroring Histocrete.ResetCounts.
func (b *Binned[V]) ResetCounts() { b.bins.ResetCounts() }

// Add adds other into the receiver bin-by-bin. Add returns
// ErrKeyMismatch if the two histograms' bin sets differ.
func (b *Binned[V]) Add(other *Binned[V]) error { return b.bins.Add(other.bins) }

// Sub subtracts other from the receiver bin-by-bin. Sub returns
// ErrKeyMismatch if the two histograms' bin sets differ.
func (b *Binned[V]) Sub(other *Binned[V]) error { return b.bins.Sub(other.bins) }

// DivElem divides the receiver by other bin-by-bin. DivElem returns
// ErrKeyMismatch if the two histograms' bin sets differ.
func (b *Binned[V]) DivElem(other *Binned[V]) error { return b.bins.DivElem(other.bins) }

// binnedState is the gob-serialized shape of a Binned histogram: the
// binning parameters plus the already-bucketed key/value pairs.
type binnedState struct {
	Width     float64
	Reference float64
	Bins      []byte
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Binned[V]) MarshalBinary() ([]byte, error) {
	binsData, err := b.bins.MarshalBinary()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(binnedState{Width: b.Width, Reference: b.Reference, Bins: binsData}); err != nil {
		return nil, fmt.Errorf("histogram: marshal Binned: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Binned[V]) UnmarshalBinary(data []byte) error {
	var s binnedState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("histogram: unmarshal Binned: %w", err)
	}
	b.Width = s.Width
	b.Reference = s.Reference
	if b.bins == nil {
		b.bins = NewHistocrete[float64, V]()
	}
	return b.bins.UnmarshalBinary(s.Bins)
}
