package scale_test

import (
	"math"
	"testing"

	"github.com/jclemens/inkplot/internal/scale"
)

func TestDomainOf(t *testing.T) {
	d, err := scale.DomainOf([]float64{3, 1, 4, 1, 5})
	if err != nil {
		t.Fatalf("DomainOf returned error: %v", err)
	}
	if d.Min != 1 || d.Max != 5 {
		t.Errorf("domain = [%v, %v], want [1, 5]", d.Min, d.Max)
	}
}

func TestDomainOfEmpty(t *testing.T) {
	if _, err := scale.DomainOf(nil); err == nil {
		t.Fatal("expected error for empty sequence")
	}
}

func TestDomainOfNaN(t *testing.T) {
	if _, err := scale.DomainOf([]float64{1, math.NaN(), 3}); err == nil {
		t.Fatal("expected error for NaN in sequence")
	}
}

func TestCellEndpoints(t *testing.T) {
	s := scale.Linear{Min: 0, Max: 100}
	if got := s.Cell(0, 60); got != 0 {
		t.Errorf("Cell(min) = %d, want 0", got)
	}
	if got := s.Cell(100, 60); got != 59 {
		t.Errorf("Cell(max) = %d, want 59", got)
	}
}

func TestCellClipsOutOfDomain(t *testing.T) {
	s := scale.Linear{Min: 0, Max: 10}
	if got := s.Cell(-5, 20); got != 0 {
		t.Errorf("Cell below domain = %d, want 0", got)
	}
	if got := s.Cell(50, 20); got != 19 {
		t.Errorf("Cell above domain = %d, want 19", got)
	}
}

func TestCellMonotonic(t *testing.T) {
	s := scale.Linear{Min: -3, Max: 7}
	n := 40
	prev := -1
	for v := s.Min; v <= s.Max; v += 0.01 {
		c := s.Cell(v, n)
		if c < 0 || c >= n {
			t.Fatalf("Cell(%v) = %d outside [0, %d)", v, c, n)
		}
		if c < prev {
			t.Fatalf("Cell not monotonic: Cell(%v) = %d after %d", v, c, prev)
		}
		prev = c
	}
}

func TestCellYInverts(t *testing.T) {
	s := scale.Linear{Min: 0, Max: 10}
	n := 20
	if got := s.CellY(10, n); got != 0 {
		t.Errorf("CellY(max) = %d, want 0 (top)", got)
	}
	if got := s.CellY(0, n); got != n-1 {
		t.Errorf("CellY(min) = %d, want %d (bottom)", got, n-1)
	}
	// Monotonic decreasing
	prev := n
	for v := s.Min; v <= s.Max; v += 0.05 {
		c := s.CellY(v, n)
		if c > prev {
			t.Fatalf("CellY not decreasing: CellY(%v) = %d after %d", v, c, prev)
		}
		prev = c
	}
}

func TestDegenerateDomainMapsToMidpoint(t *testing.T) {
	s := scale.Linear{Min: 5, Max: 5}
	if got := s.Cell(5, 21); got != 10 {
		t.Errorf("degenerate Cell = %d, want midpoint 10", got)
	}
	if got := s.Cell(999, 21); got != 10 {
		t.Errorf("degenerate Cell of any value = %d, want midpoint 10", got)
	}
}
