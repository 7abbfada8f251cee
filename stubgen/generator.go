// Package stubgen turns a signal catalog into component stub source code
// and the matching harness configuration files. The component source it
// emits is the one committed under swc; regenerating after a catalog
// change keeps the two in sync.
package stubgen

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/vehsim/vehsig/sig"
)

//go:embed comp.go.tmpl
var compTemplate string

//go:embed simudex.tmpl
var simudexTemplate string

//go:embed simcon.tmpl
var simconTemplate string

//go:embed testcases.tmpl
var testCasesTemplate string

var (
	compTmpl      = template.Must(template.New("comp").Parse(compTemplate))
	simudexTmpl   = template.Must(template.New("simudex").Parse(simudexTemplate))
	simconTmpl    = template.Must(template.New("simcon").Parse(simconTemplate))
	testCasesTmpl = template.Must(template.New("testcases").Parse(testCasesTemplate))
)

// urlPlaceholder marks signals whose bus URL is not settled yet. The
// harness config carries the placeholder so that unresolved ports are
// easy to grep for.
const urlPlaceholder = "URL"

// Generator emits the stub artifacts for one catalog.
type Generator struct {
	Catalog sig.Catalog

	// Package is the Go package name for the component source.
	Package string

	// ImportPath is the import path of the component package. It is
	// only needed when generating the accessor test cases.
	ImportPath string

	// MainCallMethod is the name of the bus conversion method the
	// framework main loop calls after injection. It is only needed
	// when generating the main-call include fragment.
	MainCallMethod string
}

type signalView struct {
	Name        string
	Field       string
	FieldPadded string
	Port        string
	GoType      string
	KindConst   string
	SimType     string
	URL         string
	MaxLit      string
}

type catalogView struct {
	Package    string
	ImportPath string
	Component  string
	Signals    []signalView
}

func (g Generator) view() catalogView {
	fieldWidth := 0
	for _, s := range g.Catalog.Signals {
		if len(s.Field()) > fieldWidth {
			fieldWidth = len(s.Field())
		}
	}

	v := catalogView{
		Package:    g.Package,
		ImportPath: g.ImportPath,
		Component:  g.Catalog.Component,
	}
	for _, s := range g.Catalog.Signals {
		url := s.URL
		if url == "" {
			url = urlPlaceholder
		}

		v.Signals = append(v.Signals, signalView{
			Name:        s.Name,
			Field:       s.Field(),
			FieldPadded: fmt.Sprintf("%-*s", fieldWidth, s.Field()),
			Port:        s.Port,
			GoType:      s.Kind.GoType(),
			KindConst:   "sig." + strings.ToUpper(s.Kind.String()),
			SimType:     s.Kind.SimType(),
			URL:         url,
			MaxLit:      fmt.Sprintf("1<<%d - 1", s.Kind.Size()*8),
		})
	}

	return v
}

// ComponentSource renders the Go source file that declares the signal
// store, one read accessor per signal, and the port registration.
func (g Generator) ComponentSource() ([]byte, error) {
	return g.render(compTmpl)
}

// Simudex renders the provide-port configuration that the harness loads
// to expose one signal URL per port.
func (g Generator) Simudex() ([]byte, error) {
	return g.render(simudexTmpl)
}

// Simcon renders the request-to-provide connection file that wires the
// simulated component's ports to the stubbed one's.
func (g Generator) Simcon() ([]byte, error) {
	return g.render(simconTmpl)
}

// TestCases renders the accessor test cases matching the component
// source, one entry per signal.
func (g Generator) TestCases() ([]byte, error) {
	return g.render(testCasesTmpl)
}

// MainCall renders the include fragment that calls the bus conversion
// method from the framework main loop.
func (g Generator) MainCall() ([]byte, error) {
	if g.MainCallMethod == "" {
		return nil, fmt.Errorf("stubgen: no main call method set")
	}

	fragment := "  // Calls the method that converts from BUS to the " +
		"Algo RTE interface\n  " + g.MainCallMethod + "();\n"

	return []byte(fragment), nil
}

func (g Generator) render(t *template.Template) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, g.view()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFiles renders all artifacts into dir, which must already exist.
// The component source is named ports.go; the configuration files are
// named after the lower-cased component. The accessor test cases and
// the main-call fragment are only written when ImportPath and
// MainCallMethod are set, respectively.
func (g Generator) WriteFiles(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("stubgen: %w", err)
	}

	type output struct {
		name   string
		render func() ([]byte, error)
	}

	base := strings.ToLower(g.Catalog.Component)
	outputs := []output{
		{"ports.go", g.ComponentSource},
		{base + ".simudex", g.Simudex},
		{base + ".simcon", g.Simcon},
	}
	if g.ImportPath != "" {
		outputs = append(outputs,
			output{"signalcases_test.go", g.TestCases})
	}
	if g.MainCallMethod != "" {
		outputs = append(outputs,
			output{base + "_main_call.h", g.MainCall})
	}

	for _, out := range outputs {
		data, err := out.render()
		if err != nil {
			return fmt.Errorf("stubgen: render %s: %w", out.name, err)
		}

		path := filepath.Join(dir, out.name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("stubgen: %w", err)
		}
	}

	return nil
}
