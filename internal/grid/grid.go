package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/hwf/internal/quantum"
)

// Grid is a square sampling of the y = 0 plane. Sample (i, j) sits at
// z = Axis[i], x = Axis[j] and is stored at flat index i*Resolution + j.
// All slices are allocated once in New and are read-only afterwards.
type Grid struct {
	Resolution int
	Axis       []float64 // metres

	X        []float64
	Z        []float64
	R        []float64
	CosTheta []float64
	Phi      []float64

	halfWidth float64
	aMu       float64
	mode      PhiMode
}

// Bounds is the frame extent in units of a_μ.
type Bounds struct {
	XMin, XMax float64
	ZMin, ZMax float64
}

// New samples the plane for st according to spec.
//
// At r = 0 the polar angle is undefined; cosθ is set to 0 (θ = π/2). This is
// a boundary policy only: every l > 0 state vanishes there and Y_00 is
// isotropic, so ψ(0) does not depend on the choice.
func New(st quantum.State, spec SliceSpec) (*Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	aMu := st.AMu()
	half := spec.HalfWidthUnits(st) * aMu
	res := spec.Resolution
	size := res * res

	g := &Grid{
		Resolution: res,
		Axis:       make([]float64, res),
		X:          make([]float64, size),
		Z:          make([]float64, size),
		R:          make([]float64, size),
		CosTheta:   make([]float64, size),
		Phi:        make([]float64, size),
		halfWidth:  half,
		aMu:        aMu,
		mode:       spec.Mode,
	}
	floats.Span(g.Axis, -half, half)

	for i := 0; i < res; i++ {
		z := g.Axis[i]
		for j := 0; j < res; j++ {
			x := g.Axis[j]
			k := i*res + j
			r := math.Hypot(x, z)

			g.X[k] = x
			g.Z[k] = z
			g.R[k] = r
			if r > 0 {
				c := z / r
				// hypot rounding can push |z/r| a ulp past 1.
				if c > 1 {
					c = 1
				} else if c < -1 {
					c = -1
				}
				g.CosTheta[k] = c
			}

			switch spec.Mode {
			case PhiConstant:
				g.Phi[k] = spec.Phi0
			default:
				if x < 0 {
					g.Phi[k] = math.Pi
				}
			}
		}
	}
	return g, nil
}

// Len returns the number of samples.
func (g *Grid) Len() int { return len(g.R) }

// Index maps (row i ↔ z, column j ↔ x) to the flat sample index.
func (g *Grid) Index(i, j int) int { return i*g.Resolution + j }

// HalfWidth returns the frame half-width in metres.
func (g *Grid) HalfWidth() float64 { return g.halfWidth }

// AMu returns the length unit the frame was built with.
func (g *Grid) AMu() float64 { return g.aMu }

// Mode returns the azimuth prescription used for Phi.
func (g *Grid) Mode() PhiMode { return g.mode }

// Bounds returns the frame extent in units of a_μ.
func (g *Grid) Bounds() Bounds {
	h := g.halfWidth / g.aMu
	return Bounds{XMin: -h, XMax: h, ZMin: -h, ZMax: h}
}
