package benchmarks

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownRegime = errors.New("unknown benchmark regime")

// Registry is a read-only set of regimes. It is safe for concurrent use
// because nothing mutates it after NewRegistry returns.
type Registry struct {
	defaultName string
	regimes     map[string]Regime
}

// NewRegistry holds the built-in regime plus extra. An extra regime with
// the same name as an earlier one replaces it.
func NewRegistry(defaultName string, extra ...Regime) (*Registry, error) {
	builtin := Default()
	reg := &Registry{
		defaultName: defaultName,
		regimes:     map[string]Regime{builtin.Name: builtin},
	}
	for _, r := range extra {
		if err := Validate(r); err != nil {
			return nil, err
		}
		reg.regimes[r.Name] = r
	}

	if _, ok := reg.regimes[defaultName]; !ok {
		return nil, fmt.Errorf("%w: default %q", ErrUnknownRegime, defaultName)
	}
	return reg, nil
}

// Lookup returns the named regime, or the default one for an empty name.
func (r *Registry) Lookup(name string) (Regime, error) {
	if name == "" {
		name = r.defaultName
	}
	regime, ok := r.regimes[name]
	if !ok {
		return Regime{}, fmt.Errorf("%w: %q", ErrUnknownRegime, name)
	}
	return regime, nil
}

func (r *Registry) DefaultName() string {
	return r.defaultName
}

// Names returns the regime names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.regimes))
	for name := range r.regimes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
