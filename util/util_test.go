package util

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	got := Linspace(0, 2*math.Pi, 100)
	if len(got) != 100 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0] != 0 || got[99] != 2*math.Pi {
		t.Fatalf("endpoints = %v, %v", got[0], got[99])
	}
	if len(Linspace(1, 2, 0)) != 0 {
		t.Fatal("expected empty")
	}
	if one := Linspace(3, 9, 1); one[0] != 3 {
		t.Fatalf("single sample = %v", one)
	}
}

func TestCircle(t *testing.T) {
	x, y := Circle(Linspace(0, 2*math.Pi, 17), 12, 1, -1)
	for i := range x {
		r := math.Hypot(x[i]-1, y[i]+1)
		if math.Abs(r-12) > 1e-9 {
			t.Fatalf("sample %d at radius %v", i, r)
		}
	}
}

func TestFull(t *testing.T) {
	for _, v := range Full(5, 0.5) {
		if v != 0.5 {
			t.Fatalf("value = %v", v)
		}
	}
}
