// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wanglandau

import (
	"fmt"

	"github.com/SpeckFleck/mocasinns/simulation"
)

// Parameters configures a Wang–Landau Simulation.
type Parameters struct {
	// ModificationFactorInitial is ln_f at the start of a fresh
	// refinement run (default convention: 1.0).
	ModificationFactorInitial float64

	// ModificationFactorFinal is the ln_f threshold at which
	// refinement terminates: DoSimulation stops once ln_f is no
	// greater than this value.
	ModificationFactorFinal float64

	// ModificationFactorMultiplier shrinks ln_f at each refinement
	// boundary: ln_f *= ModificationFactorMultiplier. Must lie in
	// (0, 1).
	ModificationFactorMultiplier float64

	// Flatness is the required H.Flatness() before a refinement
	// boundary is crossed. Must lie in (0, 1].
	Flatness float64

	// SweepSteps is the number of single steps run between flatness
	// checks.
	SweepSteps uint64
}

// validate reports ErrInvalidParameter if p cannot be used to run a
// refinement: flatness must lie in (0,1], the final modification
// factor must be less than the initial one, and the multiplier must
// lie in (0,1).
func (p Parameters) validate() error {
	if p.Flatness <= 0 || p.Flatness > 1 {
		return fmt.Errorf("%w: Flatness must be in (0, 1], got %v", simulation.ErrInvalidParameter, p.Flatness)
	}
	if p.ModificationFactorMultiplier <= 0 || p.ModificationFactorMultiplier >= 1 {
		return fmt.Errorf("%w: ModificationFactorMultiplier must be in (0, 1), got %v", simulation.ErrInvalidParameter, p.ModificationFactorMultiplier)
	}
	if p.ModificationFactorInitial <= 0 {
		return fmt.Errorf("%w: ModificationFactorInitial must be positive, got %v", simulation.ErrInvalidParameter, p.ModificationFactorInitial)
	}
	if p.ModificationFactorFinal >= p.ModificationFactorInitial {
		return fmt.Errorf("%w: ModificationFactorFinal must be less than ModificationFactorInitial", simulation.ErrInvalidParameter)
	}
	if p.SweepSteps == 0 {
		return fmt.Errorf("%w: SweepSteps must be positive", simulation.ErrInvalidParameter)
	}
	return nil
}
