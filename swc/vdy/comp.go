// Package vdy implements the vehicle dynamics software component stub.
// The component owns one storage field per vehicle signal and exposes
// each field twice: as a read accessor for the algorithm side, and as a
// named receive port the simulation harness injects values through.
package vdy

import (
	"github.com/vehsim/vehsig/port"
)

// Comp is the VDY software component. It performs no computation; it is
// the glue between the harness-facing receive ports and the accessor
// interface the algorithm code reads signals with.
type Comp struct {
	*port.OwnerBase

	name string

	signalStore
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}
