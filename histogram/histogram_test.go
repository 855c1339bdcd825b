// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistocreteInsertLookup(t *testing.T) {
	h := NewHistocrete[int, float64]()
	h.Insert(3, 1)
	h.Insert(3, 1)
	h.Insert(1, 5)

	v, ok := h.Lookup(3)
	if !ok || v != 2 {
		t.Fatalf("Lookup(3) = %v, %v; want 2, true", v, ok)
	}
	if _, ok := h.Lookup(99); ok {
		t.Fatalf("Lookup(99) found a bin that was never inserted")
	}
	if got, want := h.Keys(), []int{1, 3}; !cmp.Equal(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
}

func TestHistocreteFlatnessExcludesZeroBins(t *testing.T) {
	h := NewHistocrete[int, int]()
	h.Set(0, 0)
	h.Set(1, 10)
	h.Set(2, 20)

	// Mean and min should be computed only over the non-zero bins
	// {10, 20}.
	if got, want := h.MeanY(), 15.0; got != want {
		t.Fatalf("MeanY() = %v, want %v", got, want)
	}
	if got, want := h.MinY(), 10.0; got != want {
		t.Fatalf("MinY() = %v, want %v", got, want)
	}
	if got, want := h.Flatness(), 10.0/15.0; got != want {
		t.Fatalf("Flatness() = %v, want %v", got, want)
	}
}

func TestHistocreteFlatnessAllZero(t *testing.T) {
	h := NewHistocrete[int, int]()
	h.Set(0, 0)
	h.Set(1, 0)
	if got := h.Flatness(); got != 0 {
		t.Fatalf("Flatness() over all-zero bins = %v, want 0", got)
	}
}

func TestHistocreteResetCountsPreservesKeys(t *testing.T) {
	h := NewHistocrete[int, int]()
	h.Insert(5, 3)
	h.Insert(6, 4)
	h.ResetCounts()

	if _, ok := h.Lookup(5); !ok {
		t.Fatalf("ResetCounts discarded key 5")
	}
	if v, _ := h.Lookup(5); v != 0 {
		t.Fatalf("ResetCounts left value %d at key 5, want 0", v)
	}
	if got, want := h.Keys(), []int{5, 6}; !cmp.Equal(got, want) {
		t.Fatalf("Keys() after reset = %v, want %v", got, want)
	}
}

func TestHistocreteArithmeticKeyMismatch(t *testing.T) {
	a := NewHistocrete[int, float64]()
	a.Set(1, 1)
	b := NewHistocrete[int, float64]()
	b.Set(2, 1)

	if err := a.Add(b); err != ErrKeyMismatch {
		t.Fatalf("Add with mismatched keys = %v, want ErrKeyMismatch", err)
	}
	if err := a.Sub(b); err != ErrKeyMismatch {
		t.Fatalf("Sub with mismatched keys = %v, want ErrKeyMismatch", err)
	}
	if err := a.DivElem(b); err != ErrKeyMismatch {
		t.Fatalf("DivElem with mismatched keys = %v, want ErrKeyMismatch", err)
	}
}

func TestHistocreteArithmetic(t *testing.T) {
	a := NewHistocrete[int, float64]()
	a.Set(1, 4)
	a.Set(2, 10)
	b := NewHistocrete[int, float64]()
	b.Set(1, 1)
	b.Set(2, 2)

	if err := a.Sub(b); err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if v, _ := a.Lookup(1); v != 3 {
		t.Fatalf("after Sub, bin 1 = %v, want 3", v)
	}
	if v, _ := a.Lookup(2); v != 8 {
		t.Fatalf("after Sub, bin 2 = %v, want 8", v)
	}

	if err := a.DivElem(b); err != nil {
		t.Fatalf("DivElem: %v", err)
	}
	if v, _ := a.Lookup(1); v != 3 {
		t.Fatalf("after DivElem, bin 1 = %v, want 3", v)
	}
	if v, _ := a.Lookup(2); v != 4 {
		t.Fatalf("after DivElem, bin 2 = %v, want 4", v)
	}
}

func TestHistocreteRoundTrip(t *testing.T) {
	h := NewHistocrete[int, float64]()
	h.Set(-4, 1.5)
	h.Set(0, 2.5)
	h.Set(4, 1.5)

	data, err := h.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	restored := NewHistocrete[int, float64]()
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !cmp.Equal(h.Bins, restored.Bins) {
		t.Fatalf("round-tripped bins = %v, want %v", restored.Bins, h.Bins)
	}
}

func TestBinnedKey(t *testing.T) {
	b := NewBinned[float64](0.5, 0.0)
	cases := []struct {
		x    float64
		want float64
	}{
		{0.0, 0.0},
		{0.24, 0.0},
		{0.25, 0.0},
		{0.5, 0.5},
		{0.99, 0.5},
		{-0.1, -0.5},
		{-0.5, -0.5},
	}
	for _, c := range cases {
		if got := b.Key(c.x); got != c.want {
			t.Errorf("Key(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestBinnedInsertValueAndLikeBinSet(t *testing.T) {
	b := NewBinned[int](1.0, 0.0)
	b.InsertValue(0.2, 1)
	b.InsertValue(0.8, 1)
	b.InsertValue(1.3, 1)

	if got, want := b.Keys(), []float64{0, 1}; !cmp.Equal(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	v, ok := b.Lookup(0.9)
	if !ok || v != 2 {
		t.Fatalf("Lookup(0.9) = %v, %v; want 2, true", v, ok)
	}

	like := NewBinnedLike(b)
	if got, want := like.Keys(), b.Keys(); !cmp.Equal(got, want) {
		t.Fatalf("NewBinnedLike Keys() = %v, want %v", got, want)
	}
	if v, _ := like.Lookup(0); v != 0 {
		t.Fatalf("NewBinnedLike bin value = %v, want 0", v)
	}
}

func TestBinnedRoundTrip(t *testing.T) {
	b := NewBinned[float64](0.25, 0.0)
	b.InsertValue(0.1, 2.0)
	b.InsertValue(1.1, 3.0)

	data, err := b.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	restored := &Binned[float64]{}
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if restored.Width != b.Width || restored.Reference != b.Reference {
		t.Fatalf("restored binning params = (%v, %v), want (%v, %v)",
			restored.Width, restored.Reference, b.Width, b.Reference)
	}
	if got, want := restored.Keys(), b.Keys(); !cmp.Equal(got, want) {
		t.Fatalf("restored Keys() = %v, want %v", got, want)
	}
}
