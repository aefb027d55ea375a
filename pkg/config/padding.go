package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-plotkit/plotkit/pkg/geom"
)

// autoMarker is the YAML literal selecting measured padding.
const autoMarker = "auto"

// PaddingSpec is either a concrete [top, right, bottom, left] inset
// tuple or the symbolic "auto" value, which defers the concrete tuple to
// a measurement pass. The zero value is unset and treated as "auto".
type PaddingSpec struct {
	set    bool
	auto   bool
	values [4]float64
}

// AutoPadding returns the spec selecting measured padding.
func AutoPadding() PaddingSpec {
	return PaddingSpec{set: true, auto: true}
}

// PaddingOf returns a concrete padding spec in top, right, bottom, left
// order.
func PaddingOf(top, right, bottom, left float64) PaddingSpec {
	return PaddingSpec{set: true, values: [4]float64{top, right, bottom, left}}
}

// IsSet reports whether the spec was explicitly provided.
func (p PaddingSpec) IsSet() bool {
	return p.set
}

// IsAuto reports whether padding must be resolved by measurement. An
// unset spec is auto.
func (p PaddingSpec) IsAuto() bool {
	return !p.set || p.auto
}

// Values returns the concrete insets. Only meaningful when IsAuto is
// false.
func (p PaddingSpec) Values() geom.Padding {
	return geom.PaddingFromSlice(p.values)
}

// UnmarshalYAML accepts either the string "auto" or a four-element
// sequence of non-negative numbers.
func (p *PaddingSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if s != autoMarker {
			return fmt.Errorf("invalid padding %q: want %q or a 4-element tuple", s, autoMarker)
		}
		*p = AutoPadding()
		return nil
	}
	var values []float64
	if err := value.Decode(&values); err != nil {
		return err
	}
	if len(values) != 4 {
		return fmt.Errorf("invalid padding: want 4 insets, got %d", len(values))
	}
	for _, v := range values {
		if v < 0 {
			return fmt.Errorf("invalid padding: negative inset %v", v)
		}
	}
	*p = PaddingOf(values[0], values[1], values[2], values[3])
	return nil
}

// MarshalYAML renders "auto" or the inset tuple.
func (p PaddingSpec) MarshalYAML() (any, error) {
	if !p.set {
		return nil, nil
	}
	if p.auto {
		return autoMarker, nil
	}
	return p.values[:], nil
}

// IsZero lets yaml omitempty skip an unset spec.
func (p PaddingSpec) IsZero() bool {
	return !p.set
}
