package port

import (
	"fmt"
	"os"
	"sort"

	"github.com/vehsim/vehsig/sig"
)

// An Owner is an element that exposes receive ports to the harness.
type Owner interface {
	GetPortByName(name string) *ReceivePort
	Ports() []*ReceivePort
}

// OwnerBase provides an implementation of the Owner interface.
type OwnerBase struct {
	ports map[string]*ReceivePort
}

// NewOwnerBase creates a new OwnerBase.
func NewOwnerBase() *OwnerBase {
	return &OwnerBase{
		ports: make(map[string]*ReceivePort),
	}
}

// AddReceivePort creates a port that binds dest and registers it under
// the given name. This function panics when the name is already taken
// or when the storage type does not match the kind.
func (o *OwnerBase) AddReceivePort(
	name string,
	kind sig.Kind,
	dest any,
) *ReceivePort {
	port := NewReceivePort(name, kind, dest)
	o.AddPort(port)

	return port
}

// AddPort registers a port. This function panics when a port with the
// same name is already registered.
func (o *OwnerBase) AddPort(port *ReceivePort) {
	if _, found := o.ports[port.Name()]; found {
		panic("port already exist")
	}

	o.ports[port.Name()] = port
}

// GetPortByName returns the port according to the name of the port. This
// function panics when the given name is not found.
func (o OwnerBase) GetPortByName(name string) *ReceivePort {
	port, found := o.ports[name]
	if !found {
		errMsg := fmt.Sprintf(
			"Port %s is not available.\n", name)
		errMsg += "Available ports include:\n"
		for n := range o.ports {
			errMsg += fmt.Sprintf("\t%s\n", n)
		}
		fmt.Fprint(os.Stderr, errMsg)

		panic("port not found")
	}

	return port
}

// Ports returns a slice of all the ports registered with the Owner,
// sorted by name.
func (o OwnerBase) Ports() []*ReceivePort {
	names := make([]string, 0, len(o.ports))

	for n := range o.ports {
		names = append(names, n)
	}

	sort.Strings(names)

	list := make([]*ReceivePort, 0, len(o.ports))

	for _, n := range names {
		list = append(list, o.ports[n])
	}

	return list
}
