package vdy

import (
	"github.com/vehsim/vehsig/port"
	"github.com/vehsim/vehsig/simulation"
)

// Builder can build VDY components.
type Builder struct {
	sim *simulation.Simulation
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithSimulation sets the simulation that the component registers with.
func (b Builder) WithSimulation(s *simulation.Simulation) Builder {
	b.sim = s
	return b
}

// Build creates the component and registers all its receive ports.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		OwnerBase: port.NewOwnerBase(),
		name:      name,
	}

	c.setupPorts()

	if b.sim != nil {
		b.sim.RegisterComponent(c)
	}

	return c
}
