// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulation

import "errors"

// Sentinel errors surfaced at the API boundary of a sampling call. None
// of these are ever swallowed internally — a caller that gets one of
// these back knows the call did not run to completion for a reason
// other than interruption, which is not an error.
var (
	// ErrInvalidParameter is returned by a constructor when a parameter
	// struct fails validation: e.g. flatness outside (0,1], a final
	// modification factor greater than or equal to the initial one, or
	// a multiplier outside (0,1).
	ErrInvalidParameter = errors.New("simulation: invalid parameter")

	// ErrDegenerateAutocorrelation is returned by
	// IntegratedAutocorrelationTime when C(0) == 0, which makes τ_int
	// undefined; there is no sensible fallback value.
	ErrDegenerateAutocorrelation = errors.New("simulation: degenerate autocorrelation, C(0) == 0")

	// ErrSerializationMismatch is returned by LoadSerialize when the
	// archive being loaded does not match the shape the engine expects.
	ErrSerializationMismatch = errors.New("simulation: serialization mismatch")
)
