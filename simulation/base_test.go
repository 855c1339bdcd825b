// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulation

import (
	"testing"

	"github.com/SpeckFleck/mocasinns/internal/isingtest"
	"github.com/SpeckFleck/mocasinns/rng"
)

func newTestBase() *Base[*isingtest.IsingFlip, *isingtest.IsingChain] {
	return NewBase[*isingtest.IsingFlip](rng.NewPCG64(1), isingtest.NewIsingChain(8))
}

func TestBaseSetRandomSeedReproducible(t *testing.T) {
	b1 := newTestBase()
	b2 := newTestBase()
	b1.SetRandomSeed(7)
	b2.SetRandomSeed(7)
	for i := 0; i < 100; i++ {
		if b1.RNG.Uniform01() != b2.RNG.Uniform01() {
			t.Fatalf("identically reseeded engines diverged at draw %d", i)
		}
	}
}

func TestBaseBeginCallClearsTermination(t *testing.T) {
	b := newTestBase()
	b.IsTerminating = true
	posixSignalRaised.Store(true)

	b.BeginCall()

	if b.IsTerminating {
		t.Fatalf("BeginCall did not clear IsTerminating")
	}
	if checkForPOSIXSignal() {
		t.Fatalf("BeginCall did not clear the process-wide signal latch")
	}
}

func TestBasePollPOSIXSignal(t *testing.T) {
	b := newTestBase()
	b.BeginCall()
	if b.PollPOSIXSignal() {
		t.Fatalf("PollPOSIXSignal reported termination before any signal was raised")
	}

	posixSignalRaised.Store(true)
	if !b.PollPOSIXSignal() {
		t.Fatalf("PollPOSIXSignal did not observe the raised signal")
	}
	if !b.IsTerminating {
		t.Fatalf("PollPOSIXSignal did not set IsTerminating")
	}

	posixSignalRaised.Store(false)
}

func TestBaseDispatchMeasurementAndSweep(t *testing.T) {
	b := newTestBase()
	var measured, swept int
	b.OnMeasurement = func() { measured++ }
	b.OnSweep = func() { swept++ }

	b.DispatchMeasurement()
	b.DispatchMeasurement()
	b.DispatchSweep()

	if measured != 2 || swept != 1 {
		t.Fatalf("measured=%d swept=%d, want 2 and 1", measured, swept)
	}
}

func TestBaseDispatchNilCallbacksAreNoop(t *testing.T) {
	b := newTestBase()
	b.DispatchMeasurement()
	b.DispatchSweep()
}

func TestEncodeDecodeGobRoundTrip(t *testing.T) {
	type payload struct {
		A int
		B string
	}
	want := payload{A: 42, B: "wang-landau"}

	data, err := EncodeGob(want)
	if err != nil {
		t.Fatalf("EncodeGob: %v", err)
	}
	var got payload
	if err := DecodeGob(data, &got); err != nil {
		t.Fatalf("DecodeGob: %v", err)
	}
	if got != want {
		t.Fatalf("round-tripped payload = %+v, want %+v", got, want)
	}
}
