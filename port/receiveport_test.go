package port

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vehsim/vehsig/sig"
)

type captureHook struct {
	ctxs []HookCtx
}

func (h *captureHook) Func(ctx HookCtx) {
	h.ctxs = append(h.ctxs, ctx)
}

var _ = Describe("ReceivePort", func() {
	var (
		storage uint16
		port    *ReceivePort
	)

	BeforeEach(func() {
		storage = 0
		port = NewReceivePort("ps_rYawRate_YawRate", sig.U16, &storage)
	})

	It("should return name", func() {
		Expect(port.Name()).To(Equal("ps_rYawRate_YawRate"))
	})

	It("should return kind and size", func() {
		Expect(port.Kind()).To(Equal(sig.U16))
		Expect(port.Size()).To(Equal(2))
	})

	It("should start not received with zero value", func() {
		Expect(port.Received()).To(BeFalse())
		Expect(port.Peek()).To(Equal(uint64(0)))
	})

	It("should write through to the bound storage", func() {
		err := port.Inject(0x1234)

		Expect(err).ToNot(HaveOccurred())
		Expect(storage).To(Equal(uint16(0x1234)))
		Expect(port.Peek()).To(Equal(uint64(0x1234)))
		Expect(port.Received()).To(BeTrue())
	})

	It("should see values written directly to the storage", func() {
		storage = 77

		Expect(port.Peek()).To(Equal(uint64(77)))
	})

	It("should reject values that do not fit the width", func() {
		err := port.Inject(0x10000)

		Expect(err).To(HaveOccurred())
		Expect(storage).To(Equal(uint16(0)))
		Expect(port.Received()).To(BeFalse())
	})

	It("should accept the largest value of the width", func() {
		err := port.Inject(0xFFFF)

		Expect(err).ToNot(HaveOccurred())
		Expect(storage).To(Equal(uint16(0xFFFF)))
	})

	It("should invoke hooks on injection", func() {
		hook := &captureHook{}
		port.AcceptHook(hook)

		err := port.Inject(42)

		Expect(err).ToNot(HaveOccurred())
		Expect(hook.ctxs).To(HaveLen(1))
		Expect(hook.ctxs[0].Port).To(BeIdenticalTo(port))
		Expect(hook.ctxs[0].Pos).To(BeIdenticalTo(HookPosInject))
		Expect(hook.ctxs[0].Value).To(Equal(uint64(42)))
	})

	It("should not invoke hooks on rejected injection", func() {
		hook := &captureHook{}
		port.AcceptHook(hook)

		err := port.Inject(1 << 20)

		Expect(err).To(HaveOccurred())
		Expect(hook.ctxs).To(BeEmpty())
	})

	It("should panic when the storage type does not match", func() {
		var wrong uint32

		Expect(func() {
			NewReceivePort("ps_rYawRate_YawRate", sig.U16, &wrong)
		}).To(Panic())
	})

	It("should panic when no storage is bound", func() {
		Expect(func() {
			NewReceivePort("ps_rYawRate_YawRate", sig.U16, nil)
		}).To(Panic())
	})
})

var _ = Describe("OwnerBase", func() {
	var (
		owner   *OwnerBase
		odo     uint32
		wiper   uint8
		yawRate uint16
	)

	BeforeEach(func() {
		owner = NewOwnerBase()
	})

	It("should register and look up ports", func() {
		port := owner.AddReceivePort("ps_rOdometer_Odometer", sig.U32, &odo)

		Expect(owner.GetPortByName("ps_rOdometer_Odometer")).
			To(BeIdenticalTo(port))
	})

	It("should panic on duplicate registration", func() {
		owner.AddReceivePort("ps_rOdometer_Odometer", sig.U32, &odo)

		Expect(func() {
			owner.AddReceivePort("ps_rOdometer_Odometer", sig.U32, &odo)
		}).To(Panic())
	})

	It("should panic on unknown port", func() {
		Expect(func() {
			owner.GetPortByName("ps_rOdometer_Odometer")
		}).To(Panic())
	})

	It("should list ports sorted by name", func() {
		owner.AddReceivePort("ps_rYawRate_YawRate", sig.U16, &yawRate)
		owner.AddReceivePort("ps_rOdometer_Odometer", sig.U32, &odo)
		owner.AddReceivePort("ps_rWiperState_WiperState", sig.U8, &wiper)

		ports := owner.Ports()

		Expect(ports).To(HaveLen(3))
		Expect(ports[0].Name()).To(Equal("ps_rOdometer_Odometer"))
		Expect(ports[1].Name()).To(Equal("ps_rWiperState_WiperState"))
		Expect(ports[2].Name()).To(Equal("ps_rYawRate_YawRate"))
	})
})
