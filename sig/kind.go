// Package sig defines the signal model shared by the receive-port layer,
// the software component stubs, and the stub generator.
package sig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind is the primitive type tag of a signal. All signals are unsigned
// integers of 8, 16, or 32 bits.
type Kind int

const (
	// U8 is an 8-bit unsigned signal.
	U8 Kind = iota

	// U16 is a 16-bit unsigned signal.
	U16

	// U32 is a 32-bit unsigned signal.
	U32
)

// Size returns the size of the signal value in bytes.
func (k Kind) Size() int {
	switch k {
	case U8:
		return 1
	case U16:
		return 2
	case U32:
		return 4
	default:
		panic(fmt.Sprintf("unknown signal kind %d", int(k)))
	}
}

// Max returns the largest value that fits the signal width.
func (k Kind) Max() uint64 {
	return 1<<(uint(k.Size())*8) - 1
}

// GoType returns the Go type that backs a signal of this kind.
func (k Kind) GoType() string {
	switch k {
	case U8:
		return "uint8"
	case U16:
		return "uint16"
	case U32:
		return "uint32"
	default:
		panic(fmt.Sprintf("unknown signal kind %d", int(k)))
	}
}

// SimType returns the simulation framework type tag emitted into
// harness configuration files.
func (k Kind) SimType() string {
	switch k {
	case U8:
		return "simUI8_t"
	case U16:
		return "simUI16_t"
	case U32:
		return "simUI32_t"
	default:
		panic(fmt.Sprintf("unknown signal kind %d", int(k)))
	}
}

func (k Kind) String() string {
	switch k {
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFromString parses the catalog spelling of a kind.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "u8", "uint8":
		return U8, nil
	case "u16", "uint16":
		return U16, nil
	case "u32", "uint32":
		return U32, nil
	default:
		return 0, fmt.Errorf("unknown signal kind %q", s)
	}
}

// UnmarshalYAML parses a kind from its catalog spelling.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	kind, err := KindFromString(s)
	if err != nil {
		return err
	}

	*k = kind

	return nil
}

// MarshalYAML emits the catalog spelling of the kind.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
