package harness

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vehsim/vehsig/port"
	"github.com/vehsim/vehsig/sig"
)

type sampleComponent struct {
	*port.OwnerBase

	name string

	odometer   uint32
	wiperState uint8
}

func (c *sampleComponent) Name() string {
	return c.name
}

func newSampleComponent() *sampleComponent {
	c := &sampleComponent{
		OwnerBase: port.NewOwnerBase(),
		name:      "VDY",
	}

	c.AddReceivePort("ps_rOdometer_Odometer", sig.U32, &c.odometer)
	c.AddReceivePort("ps_rWiperState_WiperState", sig.U8, &c.wiperState)

	return c
}

var _ = Describe("Monitor", func() {
	var (
		m *Monitor
		c *sampleComponent
	)

	BeforeEach(func() {
		m = NewMonitor()
		c = newSampleComponent()
		m.RegisterComponent(c)
	})

	It("should register components and their ports", func() {
		Expect(m.components).To(HaveLen(1))
		Expect(m.ports).To(HaveLen(2))
	})

	It("should list components", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/components", nil)

		m.listComponents(w, r)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal(`["VDY"]`))
	})

	It("should list ports", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/ports", nil)

		m.listPorts(w, r)

		var rsp []portRsp
		err := json.Unmarshal(w.Body.Bytes(), &rsp)

		Expect(err).ToNot(HaveOccurred())
		Expect(rsp).To(HaveLen(2))
		Expect(rsp[0].Port).To(Equal("ps_rOdometer_Odometer"))
		Expect(rsp[0].Kind).To(Equal("u32"))
		Expect(rsp[0].Size).To(Equal(4))
		Expect(rsp[0].Received).To(BeFalse())
	})

	It("should report port state after injection", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(
			http.MethodPost,
			"/api/inject/ps_rOdometer_Odometer?value=123456",
			nil)
		r = mux.SetURLVars(r, map[string]string{
			"name": "ps_rOdometer_Odometer",
		})

		m.inject(w, r)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(c.odometer).To(Equal(uint32(123456)))

		w = httptest.NewRecorder()
		r = httptest.NewRequest(
			http.MethodGet, "/api/port/ps_rOdometer_Odometer", nil)
		r = mux.SetURLVars(r, map[string]string{
			"name": "ps_rOdometer_Odometer",
		})

		m.portState(w, r)

		var rsp portRsp
		err := json.Unmarshal(w.Body.Bytes(), &rsp)

		Expect(err).ToNot(HaveOccurred())
		Expect(rsp.Value).To(Equal(uint64(123456)))
		Expect(rsp.Received).To(BeTrue())
	})

	It("should reject values that do not fit the port", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(
			http.MethodPost,
			"/api/inject/ps_rWiperState_WiperState?value=300",
			nil)
		r = mux.SetURLVars(r, map[string]string{
			"name": "ps_rWiperState_WiperState",
		})

		m.inject(w, r)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(c.wiperState).To(Equal(uint8(0)))
	})

	It("should reject non-numeric values", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(
			http.MethodPost,
			"/api/inject/ps_rWiperState_WiperState?value=fast",
			nil)
		r = mux.SetURLVars(r, map[string]string{
			"name": "ps_rWiperState_WiperState",
		})

		m.inject(w, r)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should 404 on unknown port", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(
			http.MethodPost, "/api/inject/ps_rUnknown?value=1", nil)
		r = mux.SetURLVars(r, map[string]string{"name": "ps_rUnknown"})

		m.inject(w, r)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should 404 on unknown component", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(
			http.MethodGet, "/api/component/Nope", nil)
		r = mux.SetURLVars(r, map[string]string{"name": "Nope"})

		m.listComponentDetails(w, r)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
