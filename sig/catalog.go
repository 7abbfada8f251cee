package sig

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// A Signal describes one receive-port entry of a software component: the
// signal name, the port name registered with the simulation framework,
// the primitive kind, and the bus address the harness wires the port to.
type Signal struct {
	Name  string `yaml:"name"`
	Port  string `yaml:"port"`
	Kind  Kind   `yaml:"kind"`
	Group string `yaml:"group,omitempty"`
	URL   string `yaml:"url,omitempty"`
}

// Accessor returns the name of the read accessor generated for the
// signal.
func (s Signal) Accessor() string {
	return "Read" + s.Name
}

// Field returns the name of the component field that stores the signal
// value.
func (s Signal) Field() string {
	r := []rune(s.Name)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

// A Catalog lists every signal of one software component.
type Catalog struct {
	Component string   `yaml:"component"`
	Signals   []Signal `yaml:"signals"`
}

// ParseCatalog parses a YAML signal catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}

	err = c.validate()
	if err != nil {
		return Catalog{}, err
	}

	return c, nil
}

// LoadCatalog reads and parses a YAML signal catalog from a file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}

	return ParseCatalog(data)
}

func (c Catalog) validate() error {
	if c.Component == "" {
		return fmt.Errorf("catalog has no component name")
	}

	seenName := make(map[string]bool)
	seenPort := make(map[string]bool)

	for i, s := range c.Signals {
		if s.Name == "" {
			return fmt.Errorf("signal %d has no name", i)
		}

		if !unicode.IsUpper([]rune(s.Name)[0]) {
			return fmt.Errorf("signal name %q must be exported", s.Name)
		}

		if s.Port == "" {
			return fmt.Errorf("signal %s has no port name", s.Name)
		}

		if strings.ContainsAny(s.Port, " \t") {
			return fmt.Errorf("port name %q contains whitespace", s.Port)
		}

		if seenName[s.Name] {
			return fmt.Errorf("duplicate signal name %s", s.Name)
		}

		if seenPort[s.Port] {
			return fmt.Errorf("duplicate port name %s", s.Port)
		}

		seenName[s.Name] = true
		seenPort[s.Port] = true
	}

	return nil
}

// SignalByPort returns the signal registered under the given port name.
func (c Catalog) SignalByPort(port string) (Signal, bool) {
	for _, s := range c.Signals {
		if s.Port == port {
			return s, true
		}
	}

	return Signal{}, false
}

//go:embed vdy_catalog.yaml
var vdyCatalogYAML []byte

// VDY returns the catalog of the vehicle dynamics component. The list
// follows the vehicle signal interface of the FCU bus conversion method.
func VDY() Catalog {
	c, err := ParseCatalog(vdyCatalogYAML)
	if err != nil {
		panic(err)
	}

	return c
}
