// Package harness turns a hosted software component stub into a server
// that an external test harness can control: listing registered receive
// ports, inspecting their state, and injecting signal values.
package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/vehsim/vehsig/port"
)

// A Component is an element that exposes receive ports to the harness.
type Component interface {
	port.Named
	port.Owner
}

// Monitor can turn a hosted component into a server and allows external
// inspection and value injection.
type Monitor struct {
	portNumber int
	addr       string

	components []Component
	ports      map[string]*port.ReceivePort
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		ports: make(map[string]*port.ReceivePort),
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the harness server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterComponent registers a component to be served.
func (m *Monitor) RegisterComponent(c Component) {
	m.components = append(m.components, c)

	for _, p := range c.Ports() {
		m.ports[p.Name()] = p
	}
}

// Addr returns the address the server listens on, once started.
func (m *Monitor) Addr() string {
	return m.addr
}

// StartServer starts the monitor as a web server with a custom port if
// wanted.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/components", m.listComponents)
	r.HandleFunc("/api/component/{name}", m.listComponentDetails)
	r.HandleFunc("/api/ports", m.listPorts)
	r.HandleFunc("/api/port/{name}", m.portState)
	r.HandleFunc("/api/inject/{name}", m.inject).Methods(http.MethodPost)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.addr = fmt.Sprintf(
		"localhost:%d", listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr,
		"Harness control server at http://%s\n", m.addr)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) listComponents(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, c := range m.components {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", c.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) listComponentDetails(
	w http.ResponseWriter,
	r *http.Request,
) {
	name := mux.Vars(r)["name"]

	component := m.findComponentOr404(w, name)
	if component == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(component)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type portRsp struct {
	Port     string `json:"port"`
	Kind     string `json:"kind"`
	Size     int    `json:"size"`
	Value    uint64 `json:"value"`
	Received bool   `json:"received"`
}

func (m *Monitor) listPorts(w http.ResponseWriter, _ *http.Request) {
	rsp := make([]portRsp, 0, len(m.ports))
	for _, c := range m.components {
		for _, p := range c.Ports() {
			rsp = append(rsp, portStateRsp(p))
		}
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) portState(w http.ResponseWriter, r *http.Request) {
	p := m.findPortOr404(w, mux.Vars(r)["name"])
	if p == nil {
		return
	}

	bytes, err := json.Marshal(portStateRsp(p))
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func portStateRsp(p *port.ReceivePort) portRsp {
	return portRsp{
		Port:     p.Name(),
		Kind:     p.Kind().String(),
		Size:     p.Size(),
		Value:    p.Peek(),
		Received: p.Received(),
	}
}

func (m *Monitor) inject(w http.ResponseWriter, r *http.Request) {
	p := m.findPortOr404(w, mux.Vars(r)["name"])
	if p == nil {
		return
	}

	valueStr := r.URL.Query().Get("value")
	value, err := strconv.ParseUint(valueStr, 0, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: invalid value %q", valueStr)
		return
	}

	err = p.Inject(value)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) findComponentOr404(
	w http.ResponseWriter,
	name string,
) Component {
	var component Component
	for _, c := range m.components {
		if c.Name() == name {
			component = c
		}
	}

	if component == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Component not found"))
		dieOnErr(err)
	}

	return component
}

func (m *Monitor) findPortOr404(
	w http.ResponseWriter,
	name string,
) *port.ReceivePort {
	p, found := m.ports[name]
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Port not found"))
		dieOnErr(err)

		return nil
	}

	return p
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
