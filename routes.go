package bubblepop

import (
	"fmt"
	"math/rand/v2"
)

// Label names a bubble and the page it leads to. A Surprise label has no
// route of its own and resolves to a random other label's route.
type Label struct {
	Name     string `toml:"name"`
	Route    string `toml:"route,omitempty"`
	Surprise bool   `toml:"surprise,omitempty"`
}

// RouteTable is the validated label sequence plus the label→route mapping.
type RouteTable struct {
	sequence []Label
	distinct []Label
	byName   map[string]Label
	routes   []string // routes of the distinct non-surprise labels, in sequence order
}

// NewRouteTable validates labels and builds the lookup tables. The same name
// may appear more than once in the sequence as long as every occurrence is
// identical.
func NewRouteTable(labels []Label) (*RouteTable, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	t := &RouteTable{
		sequence: append([]Label(nil), labels...),
		byName:   make(map[string]Label, len(labels)),
	}
	for i, l := range labels {
		switch {
		case l.Name == "":
			return nil, fmt.Errorf("%w: labels[%d] has no name", ErrInvalidConfig, i)
		case l.Surprise && l.Route != "":
			return nil, fmt.Errorf("%w: surprise label %q must not have a route", ErrInvalidConfig, l.Name)
		case !l.Surprise && l.Route == "":
			return nil, fmt.Errorf("%w: label %q has no route", ErrInvalidConfig, l.Name)
		}
		if prev, ok := t.byName[l.Name]; ok {
			if prev != l {
				return nil, fmt.Errorf("%w: label %q defined twice with different targets", ErrInvalidConfig, l.Name)
			}
			continue
		}
		t.byName[l.Name] = l
		t.distinct = append(t.distinct, l)
		if !l.Surprise {
			t.routes = append(t.routes, l.Route)
		}
	}
	if len(t.routes) == 0 {
		return nil, ErrNoRoutes
	}
	return t, nil
}

// Sequence returns the spawn order. The returned slice MUST NOT be mutated.
func (t *RouteTable) Sequence() []Label {
	return t.sequence
}

// Distinct returns each label once, in order of first appearance.
// The returned slice MUST NOT be mutated.
func (t *RouteTable) Distinct() []Label {
	return t.distinct
}

// Resolve returns the navigation target for the named label. Surprise labels
// draw uniformly from the other labels' routes using rng, so the choice is
// made at the moment of the call.
func (t *RouteTable) Resolve(name string, rng *rand.Rand) (string, error) {
	l, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLabel, name)
	}
	if !l.Surprise {
		return l.Route, nil
	}
	return t.routes[rng.IntN(len(t.routes))], nil
}
