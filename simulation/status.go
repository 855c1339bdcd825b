// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulation

// Status reports how a sampling call ended. It is returned alongside a
// result so a caller can distinguish full completion from a graceful
// partial result; an interruption is not an error, but a normal
// partial-success outcome.
type Status int

const (
	// StatusOK means the call ran to completion.
	StatusOK Status = iota

	// StatusInterrupted means a POSIX signal was observed between
	// measurements or sweeps and the call returned early with whatever
	// partial result had been accumulated.
	StatusInterrupted

	// StatusConverged means a Wang–Landau refinement loop's modification
	// factor reached its configured floor.
	StatusConverged
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInterrupted:
		return "Interrupted"
	case StatusConverged:
		return "Converged"
	default:
		return "Unknown"
	}
}
