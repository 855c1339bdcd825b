// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metropolis

import (
	"fmt"

	"github.com/SpeckFleck/mocasinns/simulation"
)

// Parameters configures a Metropolis Simulation.
type Parameters struct {
	// RelaxationSteps is the number of equilibration steps run before
	// any measurement.
	RelaxationSteps uint64

	// MeasurementNumber is the number of observable samples a call to
	// DoSimulation collects.
	MeasurementNumber uint64

	// StepsBetweenMeasurement is the number of Metropolis steps run
	// between consecutive measurements.
	StepsBetweenMeasurement uint64
}

// validate reports ErrInvalidParameter if p cannot be used to run a
// simulation. MeasurementNumber == 0 is legal (a caller may want
// relaxation only), and so is StepsBetweenMeasurement == 0 when no
// measurements are taken: none of Parameters' fields has a forbidden
// range by themselves, but a zero StepsBetweenMeasurement combined with
// a nonzero MeasurementNumber would silently measure the same unchanged
// configuration repeatedly, so validate rejects that combination.
func (p Parameters) validate() error {
	if p.MeasurementNumber > 0 && p.StepsBetweenMeasurement == 0 {
		return fmt.Errorf("%w: StepsBetweenMeasurement must be positive when MeasurementNumber > 0", simulation.ErrInvalidParameter)
	}
	return nil
}
