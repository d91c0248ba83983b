package testutil

import (
	"math"
	"testing"
)

func TestDecayingFID(t *testing.T) {
	s := DecayingFID(0.1, 50, 1000, 64)
	if len(s) != 128 {
		t.Fatalf("len = %d, want 128", len(s))
	}
	// Phase 0 at the first point: all energy in the real part.
	if s[0] != 1000 || s[1] != 0 {
		t.Fatalf("first pair = (%d, %d), want (1000, 0)", s[0], s[1])
	}
	for i := 0; i < len(s); i += 2 {
		mag := math.Hypot(float64(s[i]), float64(s[i+1]))
		if mag > 1001 {
			t.Fatalf("point %d magnitude %v exceeds amplitude", i/2, mag)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(1, 4)
	want := []int32{1, 2, 3, 4}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("Ramp[%d] = %d, want %d", i, r[i], want[i])
		}
	}
}
