// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metropolis

import (
	"fmt"

	"github.com/SpeckFleck/mocasinns/simulation"
)

// archiveKind tags a Metropolis archive so LoadSerialize can reject an
// archive produced by a different engine.
const archiveKind = "mocasinns.metropolis.v1"

// archive is the gob-serialized shape of a Metropolis Simulation: its
// parameters and its RNG state. The Configuration is deliberately not
// part of the archive — it is externally owned by the caller.
type archive struct {
	Kind   string
	Params Parameters
	RNG    []byte
}

// SaveSerialize writes the simulation's parameters and RNG state to a
// byte slice.
func (sim *Simulation[S, C, V]) SaveSerialize() ([]byte, error) {
	rngState, err := sim.MarshalRNGState()
	if err != nil {
		return nil, err
	}
	return simulation.EncodeGob(archive{Kind: archiveKind, Params: sim.Params, RNG: rngState})
}

// LoadSerialize restores the simulation's parameters and RNG state from
// data previously produced by SaveSerialize. The Configuration is left
// untouched — the caller must ensure it matches the state the archive
// was saved from for subsequent sampling to reproduce bit-identically.
func (sim *Simulation[S, C, V]) LoadSerialize(data []byte) error {
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
	sim.Params = a.Params
	return nil
}
