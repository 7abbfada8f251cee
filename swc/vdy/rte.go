package vdy

// ReturnCode is the status a read accessor reports, mirroring the
// Std_ReturnType of the runtime environment the stubs replace.
type ReturnCode uint8

const (
	// RteOK reports a successful read. Accessors return RteOK
	// unconditionally; whether a value has ever been injected is
	// tracked by the receive port instead.
	RteOK ReturnCode = 0x00

	// RteNotOK reports a failed runtime environment operation. The
	// stubs never return it; it exists so harness code comparing
	// against the full Std_ReturnType range keeps compiling.
	RteNotOK ReturnCode = 0x01
)

func (c ReturnCode) String() string {
	switch c {
	case RteOK:
		return "RTE_E_OK"
	case RteNotOK:
		return "RTE_E_NOT_OK"
	default:
		return "RTE_E_UNKNOWN"
	}
}
