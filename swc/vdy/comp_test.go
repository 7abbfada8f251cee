package vdy_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vehsim/vehsig/sig"
	"github.com/vehsim/vehsig/swc/vdy"
)

var _ = Describe("Comp", func() {
	var c *vdy.Comp

	BeforeEach(func() {
		c = vdy.MakeBuilder().Build("VDY")
	})

	It("should return its name", func() {
		Expect(c.Name()).To(Equal("VDY"))
	})

	It("should register one receive port per catalog signal", func() {
		catalog := sig.VDY()

		Expect(c.Ports()).To(HaveLen(len(catalog.Signals)))

		for _, s := range catalog.Signals {
			p := c.GetPortByName(s.Port)
			Expect(p.Kind()).To(Equal(s.Kind),
				"port %s has wrong kind", s.Port)
			Expect(p.Size()).To(Equal(s.Kind.Size()))
		}
	})

	It("should read zero and report success before any injection", func() {
		for _, sc := range signalCases {
			value, rc := sc.read(c)

			Expect(rc).To(Equal(vdy.RteOK), "port %s", sc.port)
			Expect(value).To(Equal(uint64(0)), "port %s", sc.port)
			Expect(c.GetPortByName(sc.port).Received()).To(BeFalse())
		}
	})

	It("should return injected values through every accessor", func() {
		for i, sc := range signalCases {
			injected := (uint64(i)*2654435761 + 1) & sc.max

			err := c.GetPortByName(sc.port).Inject(injected)
			Expect(err).ToNot(HaveOccurred(), "port %s", sc.port)

			value, rc := sc.read(c)

			Expect(rc).To(Equal(vdy.RteOK), "port %s", sc.port)
			Expect(value).To(Equal(injected), "port %s", sc.port)
			Expect(c.GetPortByName(sc.port).Received()).To(BeTrue())
		}
	})

	It("should keep the last injected value", func() {
		p := c.GetPortByName("ps_rSpeedoSpeed_SpeedoSpeed")

		Expect(p.Inject(80)).To(Succeed())
		Expect(p.Inject(120)).To(Succeed())

		var v uint16
		rc := c.ReadSpeedoSpeed(&v)

		Expect(rc).To(Equal(vdy.RteOK))
		Expect(v).To(Equal(uint16(120)))
	})

	It("should keep the stored value on a rejected injection", func() {
		p := c.GetPortByName("ps_rWiperState_WiperState")

		Expect(p.Inject(2)).To(Succeed())
		Expect(p.Inject(1 << 10)).ToNot(Succeed())

		var v uint8
		rc := c.ReadWiperState(&v)

		Expect(rc).To(Equal(vdy.RteOK))
		Expect(v).To(Equal(uint8(2)))
	})
})

var _ = Describe("ReturnCode", func() {
	It("should spell the runtime environment names", func() {
		Expect(vdy.RteOK.String()).To(Equal("RTE_E_OK"))
		Expect(vdy.RteNotOK.String()).To(Equal("RTE_E_NOT_OK"))
		Expect(fmt.Sprint(vdy.ReturnCode(0x7F))).
			To(Equal("RTE_E_UNKNOWN"))
	})
})
