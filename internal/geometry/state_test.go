package geometry

import (
	"math"
	"testing"

	"github.com/iburimskiy/chord-angle/internal/config"
)

func TestReferenceConfiguration(t *testing.T) {
	s := NewState(Point{}, 5)
	if s.ChordSpread != 120 || s.PAngle != 90 {
		t.Fatalf("unexpected defaults: spread %v, p %v", s.ChordSpread, s.PAngle)
	}
	snap := s.Derive()
	if !snap.AngleDefined {
		t.Fatal("expected a defined angle")
	}
	if !near(snap.CurrentAngle, 60, tol) {
		t.Fatalf("expected 60°, got %v", snap.CurrentAngle)
	}
	// |AB| = 2r sin(spread/2)
	if want := 10 * math.Sin(ToRadians(60)); !near(snap.ChordLength, want, 1e-9) {
		t.Fatalf("chord length %v, want %v", snap.ChordLength, want)
	}
	if snap.Arc != ArcMajor {
		t.Fatalf("expected major arc, got %v", snap.Arc)
	}
	if snap.AngleA != 210 || snap.AngleB != 330 {
		t.Fatalf("endpoint angles %v, %v", snap.AngleA, snap.AngleB)
	}
}

func TestWideChordSweep(t *testing.T) {
	s := NewState(Point{X: 400, Y: 250}, 175)
	s.SetChordSpread(160)
	// A = 190°, B = 350°: the major arc runs through the top, from 350° to 190°.

	sweep := func(from, to float64) (lo, hi float64) {
		lo, hi = math.Inf(1), math.Inf(-1)
		for p := from; p <= to; p++ {
			s.SetPAngle(p)
			snap := s.Derive()
			if !snap.AngleDefined {
				t.Fatalf("undefined angle at %v", p)
			}
			lo = math.Min(lo, snap.CurrentAngle)
			hi = math.Max(hi, snap.CurrentAngle)
		}
		return lo, hi
	}

	lo, hi := sweep(91, 189)
	if hi-lo >= 0.01 {
		t.Fatalf("angle drifted by %v over the major arc", hi-lo)
	}
	if !near(lo, 80, 1e-6) {
		t.Fatalf("expected 80°, got %v", lo)
	}

	// Past A at 190°, P is on the minor arc.
	lo, hi = sweep(191, 269)
	if hi-lo >= 0.01 || !near(lo, 100, 1e-6) {
		t.Fatalf("minor arc angles %v..%v, want 100°", lo, hi)
	}
}

func TestSetChordSpreadClamps(t *testing.T) {
	s := NewState(Point{}, 1)
	tests := []struct {
		in, want float64
	}{
		{10, config.ChordSpreadMin},
		{200, config.ChordSpreadMax},
		{95, 95},
		{math.Inf(1), config.ChordSpreadMax},
	}
	for _, tt := range tests {
		s.SetChordSpread(tt.in)
		if s.ChordSpread != tt.want {
			t.Errorf("SetChordSpread(%v) stored %v, want %v", tt.in, s.ChordSpread, tt.want)
		}
	}
	s.SetChordSpread(math.NaN())
	if s.ChordSpread != config.ChordSpreadMax {
		t.Errorf("NaN changed the spread to %v", s.ChordSpread)
	}
}

func TestPAngleUnbounded(t *testing.T) {
	s := NewState(Point{}, 5)
	s.SetPAngle(90 + 360*40)
	if s.PAngle != 90+360*40 {
		t.Fatalf("PAngle should be stored as is, got %v", s.PAngle)
	}
	snap := s.Derive()
	if !near(snap.PAngle, 90, 1e-9) {
		t.Fatalf("snapshot PAngle %v, want 90", snap.PAngle)
	}
	if !near(snap.CurrentAngle, 60, 1e-6) {
		t.Fatalf("periodicity broken: %v", snap.CurrentAngle)
	}

	s.SetPAngle(math.NaN())
	if math.IsNaN(s.PAngle) {
		t.Fatal("NaN stored")
	}
}

func TestDeriveDegenerate(t *testing.T) {
	s := NewState(Point{}, 5)
	angleA, _ := ChordAngles(s.ChordSpread)
	s.SetPAngle(angleA)
	snap := s.Derive()
	if snap.AngleDefined {
		t.Fatalf("expected undefined angle with P on A, got %v", snap.CurrentAngle)
	}
	if math.IsNaN(snap.CurrentAngle) {
		t.Fatal("NaN leaked into the snapshot")
	}
	if snap.Arc != ArcEndpoint {
		t.Fatalf("expected endpoint, got %v", snap.Arc)
	}
}

func TestDeriveEndpointAgreesWithAngle(t *testing.T) {
	for _, radius := range []float64{0.001, 1, 5, 1000} {
		s := NewState(Point{}, radius)
		angleA, angleB := ChordAngles(s.ChordSpread)
		for _, off := range []float64{-5e-9, -1e-10, 0, 1e-10, 5e-9, 1e-7} {
			for _, end := range []float64{angleA, angleB} {
				s.SetPAngle(end + off)
				snap := s.Derive()
				if (snap.Arc == ArcEndpoint) == snap.AngleDefined {
					t.Fatalf("radius %v, P at %v%+g: arc=%v angleDefined=%v",
						radius, end, off, snap.Arc, snap.AngleDefined)
				}
			}
		}
	}
}

func TestDeriveExpectedAngle(t *testing.T) {
	s := NewState(Point{}, 5)
	s.SetChordSpread(140)
	for _, tt := range []struct {
		p    float64
		arc  Arc
		want float64
	}{
		{90, ArcMajor, 70},
		{270, ArcMinor, 110},
	} {
		s.SetPAngle(tt.p)
		snap := s.Derive()
		if snap.Arc != tt.arc || snap.ExpectedAngle != tt.want {
			t.Fatalf("P at %v: arc %v expected %v, want %v %v", tt.p, snap.Arc, snap.ExpectedAngle, tt.arc, tt.want)
		}
		if !near(snap.CurrentAngle, snap.ExpectedAngle, tol) {
			t.Fatalf("P at %v: measured %v, theorem %v", tt.p, snap.CurrentAngle, snap.ExpectedAngle)
		}
	}
}

func TestDeriveDoesNotMutate(t *testing.T) {
	s := NewState(Point{}, 5)
	s.SetPAngle(-1000)
	before := *s
	_ = s.Derive()
	_ = s.Derive()
	if *s != before {
		t.Fatalf("Derive mutated state: %+v -> %+v", before, *s)
	}
}

func TestReset(t *testing.T) {
	s := NewState(Point{}, 5)
	s.SetChordSpread(150)
	s.SetPAngle(12)
	s.Reset()
	if s.PAngle != config.DefaultPAngle || s.ChordSpread != config.DefaultChordSpread {
		t.Fatalf("reset left %v / %v", s.PAngle, s.ChordSpread)
	}
}
