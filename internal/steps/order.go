package steps

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kmall/stepdiag/internal/diagram"
)

//go:embed order.yaml
var orderYAML []byte

type orderTable struct {
	Forces    []diagram.ForceType `yaml:"forces"`
	Synthetic []string            `yaml:"synthetic"`
}

var canonical = mustLoadOrder()

func mustLoadOrder() orderTable {
	var t orderTable
	if err := yaml.Unmarshal(orderYAML, &t); err != nil {
		panic(fmt.Sprintf("steps: bad embedded order table: %v", err))
	}
	return t
}

// CanonicalOrder returns a copy of the pedagogy ordering for force steps.
func CanonicalOrder() []diagram.ForceType {
	out := make([]diagram.ForceType, len(canonical.Forces))
	copy(out, canonical.Forces)
	return out
}
