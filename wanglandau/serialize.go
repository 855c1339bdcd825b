// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wanglandau

import (
	"fmt"

	"github.com/SpeckFleck/mocasinns/histogram"
	"github.com/SpeckFleck/mocasinns/model"
	"github.com/SpeckFleck/mocasinns/simulation"
)

// archiveKind tags a Wang–Landau archive so LoadSerialize can reject an
// archive produced by a different engine.
const archiveKind = "mocasinns.wanglandau.v1"

// archive is the gob-serialized shape of a Wang–Landau Simulation: its
// parameters, RNG state, modification factor and both histograms. The
// Configuration is deliberately not part of the archive — it is
// externally owned by the caller.
type archive struct {
	Kind   string
	Params Parameters
	RNG    []byte
	LnF    float64
	S      []byte
	H      []byte
}

// SaveSerialize writes the simulation's parameters, RNG state,
// modification factor and both the density-of-states and incidence
// histograms to a byte slice.
func (sim *Simulation[S, C]) SaveSerialize() ([]byte, error) {
	rngState, err := sim.MarshalRNGState()
	if err != nil {
		return nil, err
	}
	sState, err := sim.s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	hState, err := sim.h.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return simulation.EncodeGob(archive{
		Kind:   archiveKind,
		Params: sim.Params,
		RNG:    rngState,
		LnF:    sim.lnF,
		S:      sState,
		H:      hState,
	})
}

// LoadSerialize restores the simulation's parameters, RNG state,
// modification factor and both histograms from data previously produced
// by SaveSerialize. The Configuration is left untouched — the caller
// must ensure it matches the state the archive was saved from for
// subsequent sampling to reproduce bit-identically.
func (sim *Simulation[S, C]) LoadSerialize(data []byte) error {
	var a archive
	if err := simulation.DecodeGob(data, &a); err != nil {
		return err
	}
	if a.Kind != archiveKind {
		return fmt.Errorf("%w: got archive kind %q, want %q", simulation.ErrSerializationMismatch, a.Kind, archiveKind)
	}
	if err := sim.UnmarshalRNGState(a.RNG); err != nil {
		return fmt.Errorf("%w: %v", simulation.ErrSerializationMismatch, err)
	}

	s := histogram.NewHistocrete[model.Energy, float64]()
	if err := s.UnmarshalBinary(a.S); err != nil {
		return fmt.Errorf("%w: %v", simulation.ErrSerializationMismatch, err)
	}
	h := histogram.NewHistocrete[model.Energy, int64]()
	if err := h.UnmarshalBinary(a.H); err != nil {
		return fmt.Errorf("%w: %v", simulation.ErrSerializationMismatch, err)
	}

	sim.Params = a.Params
	sim.lnF = a.LnF
	sim.s = s
	sim.h = h
	return nil
}
