// Package port implements the receive ports that connect a software
// component stub to the simulation harness. A receive port binds a
// named, typed storage location owned by the component; the harness
// injects values through the port and the component reads the storage
// directly through its accessors.
package port

import (
	"fmt"
	"sync"

	"github.com/vehsim/vehsig/sig"
)

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A ReceivePort is a named, typed binding to one signal field of a
// component. Only the harness writes through the port.
type ReceivePort struct {
	HookableBase

	lock     sync.Mutex
	name     string
	kind     sig.Kind
	dest     any
	received bool
}

// NewReceivePort creates a receive port that binds dest. The dest
// pointer type must match the signal kind.
func NewReceivePort(name string, kind sig.Kind, dest any) *ReceivePort {
	destMustMatchKind(name, kind, dest)

	p := &ReceivePort{
		name: name,
		kind: kind,
		dest: dest,
	}

	return p
}

func destMustMatchKind(name string, kind sig.Kind, dest any) {
	if dest == nil {
		panic("port " + name + " binds no storage")
	}

	ok := false
	switch dest.(type) {
	case *uint8:
		ok = kind == sig.U8
	case *uint16:
		ok = kind == sig.U16
	case *uint32:
		ok = kind == sig.U32
	}

	if !ok {
		panic(fmt.Sprintf(
			"port %s: storage type %T does not match kind %s",
			name, dest, kind,
		))
	}
}

// Name returns the name of the port.
func (p *ReceivePort) Name() string {
	return p.name
}

// Kind returns the primitive type tag of the port.
func (p *ReceivePort) Kind() sig.Kind {
	return p.kind
}

// Size returns the size of the bound storage in bytes.
func (p *ReceivePort) Size() int {
	return p.kind.Size()
}

// Inject writes a value into the bound storage. It is used by the
// harness to deliver a signal value to the component.
func (p *ReceivePort) Inject(value uint64) error {
	if value > p.kind.Max() {
		return fmt.Errorf(
			"value %d does not fit %s port %s",
			value, p.kind, p.name,
		)
	}

	p.lock.Lock()

	switch dest := p.dest.(type) {
	case *uint8:
		*dest = uint8(value)
	case *uint16:
		*dest = uint16(value)
	case *uint32:
		*dest = uint32(value)
	}
	p.received = true

	hookCtx := HookCtx{
		Port:  p,
		Pos:   HookPosInject,
		Value: value,
	}
	p.InvokeHook(hookCtx)
	p.lock.Unlock()

	return nil
}

// Peek returns the current value of the bound storage, widened to
// uint64.
func (p *ReceivePort) Peek() uint64 {
	p.lock.Lock()
	defer p.lock.Unlock()

	switch dest := p.dest.(type) {
	case *uint8:
		return uint64(*dest)
	case *uint16:
		return uint64(*dest)
	case *uint32:
		return uint64(*dest)
	}

	return 0
}

// Received reports whether the harness has injected a value since the
// port was created. Accessors do not consult this flag; the component
// keeps its unconditional-success read contract and the harness can
// query the flag instead.
func (p *ReceivePort) Received() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.received
}
