package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/hwf/internal/quantum"
)

func mustState(t *testing.T, n, l, m int, opts ...quantum.Option) quantum.State {
	t.Helper()
	st, err := quantum.NewState(n, l, m, opts...)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return st
}

func TestNewSliceSpec_Validation(t *testing.T) {
	tests := []struct {
		name       string
		mode       PhiMode
		phi0, k, e float64
		res        int
	}{
		{"unknown mode", PhiMode(7), 0, 1, 0, 10},
		{"NaN phi0", PhiConstant, math.NaN(), 1, 0, 10},
		{"negative k", PhiPlane, 0, -1, 0, 10},
		{"negative extent", PhiPlane, 0, 0, -3, 10},
		{"resolution one", PhiPlane, 0, 1, 0, 1},
		{"resolution zero", PhiPlane, 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSliceSpec(tt.mode, tt.phi0, tt.k, tt.e, tt.res)
			if !errors.Is(err, quantum.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestParsePhiMode(t *testing.T) {
	tests := []struct {
		in   string
		want PhiMode
		ok   bool
	}{
		{"plane", PhiPlane, true},
		{"", PhiPlane, true},
		{"Constant", PhiConstant, true},
		{" constant ", PhiConstant, true},
		{"spiral", 0, false},
	}
	for _, tt := range tests {
		got, err := ParsePhiMode(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParsePhiMode(%q) = %v, %v", tt.in, got, err)
		}
		if !tt.ok && !errors.Is(err, quantum.ErrInvalidParameter) {
			t.Errorf("ParsePhiMode(%q): expected ErrInvalidParameter, got %v", tt.in, err)
		}
	}
	if PhiPlane.String() != "plane" || PhiConstant.String() != "constant" {
		t.Error("PhiMode.String mismatch")
	}
}

func TestHalfWidthUnits(t *testing.T) {
	st := mustState(t, 3, 2, 1)

	framed, _ := NewSliceSpec(PhiPlane, 0, 2, 0, 10)
	if got := framed.HalfWidthUnits(st); math.Abs(got-21) > 1e-12 {
		t.Errorf("framed half-width = %v, want 21", got)
	}

	explicit, _ := NewSliceSpec(PhiPlane, 0, 0, 12, 10)
	if got := explicit.HalfWidthUnits(st); got != 12 {
		t.Errorf("explicit half-width = %v, want 12", got)
	}

	def, _ := NewSliceSpec(PhiPlane, 0, 0, 0, 10)
	if got := def.HalfWidthUnits(st); got != DefaultExtent {
		t.Errorf("default half-width = %v, want %v", got, DefaultExtent)
	}
}

func TestNew_Layout(t *testing.T) {
	st := mustState(t, 2, 1, 0)
	spec, _ := NewSliceSpec(PhiPlane, 0, 0, 10, 8)
	g, err := New(st, spec)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.Len() != 64 {
		t.Fatalf("expected 64 samples, got %d", g.Len())
	}
	if g.Axis[0] != -g.HalfWidth() || g.Axis[7] != g.HalfWidth() {
		t.Errorf("axis endpoints = %v, %v", g.Axis[0], g.Axis[7])
	}
	if math.Abs(g.HalfWidth()-10*st.AMu()) > 1e-24 {
		t.Errorf("half-width = %v, want %v", g.HalfWidth(), 10*st.AMu())
	}

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			k := g.Index(i, j)
			if g.Z[k] != g.Axis[i] || g.X[k] != g.Axis[j] {
				t.Fatalf("sample (%d,%d) at x=%v z=%v", i, j, g.X[k], g.Z[k])
			}
			if math.Abs(g.R[k]-math.Hypot(g.X[k], g.Z[k])) > 0 {
				t.Fatalf("r mismatch at (%d,%d)", i, j)
			}
			if math.Abs(g.CosTheta[k]-g.Z[k]/g.R[k]) > 1e-15 {
				t.Fatalf("cosθ mismatch at (%d,%d)", i, j)
			}
		}
	}

	b := g.Bounds()
	if math.Abs(b.XMax-10) > 1e-12 || math.Abs(b.ZMin+10) > 1e-12 {
		t.Errorf("bounds = %+v", b)
	}
}

func TestNew_PlanePhi(t *testing.T) {
	st := mustState(t, 2, 1, 1)
	spec, _ := NewSliceSpec(PhiPlane, 0, 0, 5, 6)
	g, _ := New(st, spec)

	for k := range g.X {
		want := 0.0
		if g.X[k] < 0 {
			want = math.Pi
		}
		if g.Phi[k] != want {
			t.Fatalf("x=%v: φ = %v, want %v", g.X[k], g.Phi[k], want)
		}
	}
}

func TestNew_ConstantPhi(t *testing.T) {
	st := mustState(t, 2, 1, 1)
	spec, _ := NewSliceSpec(PhiConstant, 0.75, 0, 5, 6)
	g, _ := New(st, spec)

	for k := range g.Phi {
		if g.Phi[k] != 0.75 {
			t.Fatalf("φ[%d] = %v, want 0.75", k, g.Phi[k])
		}
	}
	if g.Mode() != PhiConstant {
		t.Errorf("mode = %v", g.Mode())
	}
}

func TestNew_OriginPolicy(t *testing.T) {
	st := mustState(t, 1, 0, 0)
	// Five samples over [-h, h] put the centre sample exactly on r = 0.
	spec, _ := NewSliceSpec(PhiPlane, 0, 0, 4, 5)
	g, _ := New(st, spec)

	found := false
	for k := range g.R {
		if g.R[k] == 0 {
			found = true
			if g.CosTheta[k] != 0 {
				t.Errorf("cosθ at origin = %v, want 0", g.CosTheta[k])
			}
		}
	}
	if !found {
		t.Fatal("expected an origin sample")
	}
}

func TestNew_ChargeContractsFrame(t *testing.T) {
	ion := mustState(t, 2, 1, 0, quantum.WithCharge(2), quantum.WithoutReducedMass())
	hInf := mustState(t, 2, 1, 0, quantum.WithoutReducedMass())
	spec, _ := NewSliceSpec(PhiPlane, 0, 1.5, 0, 4)

	gh, _ := New(hInf, spec)
	gi, _ := New(ion, spec)
	if ratio := gh.HalfWidth() / gi.HalfWidth(); math.Abs(ratio-2) > 1e-12 {
		t.Errorf("frame ratio = %v, want 2", ratio)
	}
}
