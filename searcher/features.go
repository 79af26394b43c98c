package searcher

import (
	"fmt"
	"sort"
	"strings"
)

// Feature names a single term of the linear evaluation.
type Feature string

const (
	SuccessorScore    Feature = "successor_score"
	OnDefense         Feature = "on_defense"
	ObjectiveDistance Feature = "objective_distance"
	NumInvaders       Feature = "num_invaders"
	Stopped           Feature = "stop"
	Fear              Feature = "fear"
)

// Features is an immutable sparse feature vector. Absent features read as
// zero, but presence is observable: a feature omitted because it does not
// apply this turn differs from one explicitly set to zero.
type Features struct {
	values map[Feature]float64
}

// Get returns the value of name, zero when absent.
func (f Features) Get(name Feature) float64 {
	return f.values[name]
}

func (f Features) Has(name Feature) bool {
	_, ok := f.values[name]
	return ok
}

// Names returns the present features in sorted order.
func (f Features) Names() []Feature {
	names := make([]Feature, 0, len(f.values))
	for name := range f.values {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (f Features) String() string {
	parts := make([]string, 0, len(f.values))
	for _, name := range f.Names() {
		parts = append(parts, fmt.Sprintf("%s=%g", name, f.values[name]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// featureBuilder accumulates values for a single extraction. It must not be
// used after build.
type featureBuilder struct {
	values map[Feature]float64
}

func newFeatureBuilder() *featureBuilder {
	return &featureBuilder{values: make(map[Feature]float64, 6)}
}

func (b *featureBuilder) set(name Feature, value float64) *featureBuilder {
	b.values[name] = value
	return b
}

func (b *featureBuilder) build() Features {
	f := Features{values: b.values}
	b.values = nil
	return f
}

// newFeatures builds a feature vector from explicit values.
func newFeatures(values map[Feature]float64) Features {
	b := newFeatureBuilder()
	for name, v := range values {
		b.set(name, v)
	}
	return b.build()
}
