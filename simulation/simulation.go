// Package simulation hosts software component stubs and wires them to
// the harness-facing services: the injection recorder and the control
// server.
package simulation

import (
	"github.com/vehsim/vehsig/harness"
	"github.com/vehsim/vehsig/port"
	"github.com/vehsim/vehsig/recording"
)

// A Component is an element hosted by the simulation. It exposes the
// receive ports the harness injects signal values through.
type Component interface {
	port.Named
	port.Owner
}

// A Simulation provides the services required to host component stubs.
type Simulation struct {
	id string

	recorder   recording.Recorder
	injections *recording.InjectionLogger
	monitor    *harness.Monitor

	components    []Component
	compNameIndex map[string]int
	ports         []*port.ReceivePort
	portNameIndex map[string]int
}

// ID returns the ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetRecorder returns the injection recorder used in the simulation.
func (s *Simulation) GetRecorder() recording.Recorder {
	return s.recorder
}

// GetMonitor returns the harness control server used in the simulation.
func (s *Simulation) GetMonitor() *harness.Monitor {
	return s.monitor
}

// RegisterComponent registers a component with the simulation. All the
// receive ports of the component are registered along with it.
func (s *Simulation) RegisterComponent(c Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	for _, p := range c.Ports() {
		s.registerPort(p)
	}

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// registerPort registers a port with the simulation.
func (s *Simulation) registerPort(p *port.ReceivePort) {
	portName := p.Name()
	if _, found := s.portNameIndex[portName]; found {
		panic("port " + portName + " already registered")
	}

	s.ports = append(s.ports, p)
	s.portNameIndex[portName] = len(s.ports) - 1

	if s.injections != nil {
		p.AcceptHook(s.injections)
	}
}

// Components returns all the registered components.
func (s *Simulation) Components() []Component {
	return s.components
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) Component {
	return s.components[s.compNameIndex[name]]
}

// GetPortByName returns the port with the given name.
func (s *Simulation) GetPortByName(name string) *port.ReceivePort {
	return s.ports[s.portNameIndex[name]]
}

// Terminate terminates the simulation.
func (s *Simulation) Terminate() {
	if s.recorder != nil {
		s.recorder.Flush()
		s.recorder.Close()
	}
}
