// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simulation implements the lifecycle shared by every sampling
// engine in this module: RNG and configuration ownership, the
// termination flag, POSIX signal polling, measurement/sweep signal
// dispatch, and the gob-based save/load building blocks engines use to
// persist their own state.
package simulation

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/SpeckFleck/mocasinns/model"
	"github.com/SpeckFleck/mocasinns/rng"
)

// Base is the state shared by every engine: an RNG, a non-owning
// reference to the Configuration being sampled, and the cooperative
// termination flag. S is the Configuration's Step type; C is the
// Configuration type itself.
//
// Base does not own Config for the lifetime of the program — only for
// the duration of whatever sampling call is in progress. The caller is
// responsible for the Configuration's lifetime.
type Base[S model.Step, C model.Configuration[S]] struct {
	RNG    rng.Source
	Config C

	// IsTerminating is set once a POSIX signal has been observed
	// during the current call. Outer loops (multi-β sweeps,
	// Wang–Landau refinement) check it between iterations and exit
	// cleanly, preserving partial results.
	IsTerminating bool

	// OnMeasurement, if set, is invoked once per measurement, after
	// the steps for that measurement have run but before the
	// observable is sampled. This is a single callback slot rather
	// than a multi-subscriber signal/slot system; a caller that needs
	// several subscribers can compose them into one closure.
	OnMeasurement func()

	// OnSweep, if set, is invoked once per Wang–Landau sweep, after a
	// batch of steps and before the flatness check.
	OnSweep func()
}

// NewBase returns a Base wrapping source and config, installing the
// process-wide POSIX signal handler on first use.
func NewBase[S model.Step, C model.Configuration[S]](source rng.Source, config C) *Base[S, C] {
	installSignalHandler()
	return &Base[S, C]{RNG: source, Config: config}
}

// SetRandomSeed reseeds the engine's RNG.
func (b *Base[S, C]) SetRandomSeed(seed uint32) {
	b.RNG.Seed(seed)
}

// BeginCall clears the termination flag, both the engine-local copy and
// the process-wide POSIX signal latch. The engines' sampling entry
// points call this before looping; their inner DoSteps loops do not.
func (b *Base[S, C]) BeginCall() {
	clearPOSIXSignal()
	b.IsTerminating = false
}

// PollPOSIXSignal checks the process-wide signal latch and, if it has
// been raised, sets IsTerminating. It returns the resulting value of
// IsTerminating, so callers can write `if b.PollPOSIXSignal() { return }`
// at each loop's yield point.
func (b *Base[S, C]) PollPOSIXSignal() bool {
	if checkForPOSIXSignal() {
		b.IsTerminating = true
	}
	return b.IsTerminating
}

// DispatchMeasurement invokes OnMeasurement if set.
func (b *Base[S, C]) DispatchMeasurement() {
	if b.OnMeasurement != nil {
		b.OnMeasurement()
	}
}

// DispatchSweep invokes OnSweep if set.
func (b *Base[S, C]) DispatchSweep() {
	if b.OnSweep != nil {
		b.OnSweep()
	}
}

// MarshalRNGState returns the serialized state of the engine's RNG, for
// engines building their own save archives.
func (b *Base[S, C]) MarshalRNGState() ([]byte, error) {
	return b.RNG.MarshalBinary()
}

// UnmarshalRNGState restores the engine's RNG from previously-marshaled
// state.
func (b *Base[S, C]) UnmarshalRNGState(data []byte) error {
	return b.RNG.UnmarshalBinary(data)
}

// EncodeGob is a small helper engines use to build their save archives:
// it gob-encodes v into a byte slice, wrapping any error with the
// package's own message so callers get a consistent failure shape.
func EncodeGob(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("simulation: encode archive: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeGob is the inverse of EncodeGob.
func DecodeGob(data []byte, v any) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return fmt.Errorf("simulation: decode archive: %w", err)
	}
	return nil
}
