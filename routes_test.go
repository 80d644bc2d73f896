package bubblepop

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestNewRouteTableErrors(t *testing.T) {
	tests := []struct {
		name   string
		labels []Label
		want   error
	}{
		{"empty", nil, ErrNoLabels},
		{"no name", []Label{{Route: "/a"}}, ErrInvalidConfig},
		{"surprise with route", []Label{{Name: "A", Route: "/a"}, {Name: "S", Route: "/s", Surprise: true}}, ErrInvalidConfig},
		{"missing route", []Label{{Name: "A"}}, ErrInvalidConfig},
		{"conflicting duplicate", []Label{{Name: "A", Route: "/a"}, {Name: "A", Route: "/b"}}, ErrInvalidConfig},
		{"only surprise", []Label{{Name: "S", Surprise: true}}, ErrNoRoutes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRouteTable(tt.labels)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRouteTableDuplicatesKeepSequence(t *testing.T) {
	labels := []Label{
		{Name: "A", Route: "/a"},
		{Name: "B", Route: "/b"},
		{Name: "A", Route: "/a"},
	}
	rt, err := NewRouteTable(labels)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(rt.Sequence()); got != 3 {
		t.Errorf("len(Sequence) = %d, want 3", got)
	}
	if got := len(rt.Distinct()); got != 2 {
		t.Errorf("len(Distinct) = %d, want 2", got)
	}
}

func TestResolve(t *testing.T) {
	rt, err := NewRouteTable(DefaultConfig().Labels)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(1, 2))

	got, err := rt.Resolve("Projects", rng)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/helen-website-bubbles/projects/index.html" {
		t.Errorf("Resolve(Projects) = %q", got)
	}

	if _, err := rt.Resolve("Nope", rng); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("Resolve(Nope) err = %v, want ErrUnknownLabel", err)
	}
}

func TestResolveSurpriseIsUniform(t *testing.T) {
	rt, err := NewRouteTable(DefaultConfig().Labels)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(42, 42))

	const draws = 40000
	counts := make(map[string]int)
	for range draws {
		target, err := rt.Resolve("Surprise Me", rng)
		if err != nil {
			t.Fatal(err)
		}
		counts[target]++
	}
	if len(counts) != 4 {
		t.Fatalf("surprise reached %d routes, want 4: %v", len(counts), counts)
	}
	// Each route expects 10000 hits; 5 standard deviations is about ±430.
	for target, n := range counts {
		if n < 9500 || n > 10500 {
			t.Errorf("route %q drawn %d times, want about %d", target, n, draws/4)
		}
	}
}
