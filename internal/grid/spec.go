package grid

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/hwf/internal/quantum"
)

// DefaultExtent is the half-width, in units of a_μ, used when neither a
// framing factor nor an explicit extent is given.
const DefaultExtent = 20.0

// PhiMode selects how the azimuth is assigned on the y = 0 plane.
type PhiMode int

const (
	// PhiPlane uses φ = 0 for x >= 0 and φ = π for x < 0, so e^{imφ} = ±1.
	PhiPlane PhiMode = iota
	// PhiConstant uses φ = φ₀ everywhere.
	PhiConstant
)

func (m PhiMode) String() string {
	switch m {
	case PhiPlane:
		return "plane"
	case PhiConstant:
		return "constant"
	default:
		return fmt.Sprintf("PhiMode(%d)", int(m))
	}
}

// ParsePhiMode accepts "plane" or "constant".
func ParsePhiMode(s string) (PhiMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plane":
		return PhiPlane, nil
	case "constant":
		return PhiConstant, nil
	default:
		return 0, fmt.Errorf("%w: phi mode %q (expected plane or constant)", quantum.ErrInvalidParameter, s)
	}
}

// SliceSpec describes how the x–z plane is sampled. It is validated once by
// NewSliceSpec and never mutated afterwards.
type SliceSpec struct {
	Mode       PhiMode
	Phi0       float64 // radians, PhiConstant only
	K          float64 // framing factor; 0 disables
	Extent     float64 // half-width in a_μ when K is 0; 0 selects DefaultExtent
	Resolution int     // samples per axis
}

// NewSliceSpec validates and returns a SliceSpec.
func NewSliceSpec(mode PhiMode, phi0, k, extent float64, resolution int) (SliceSpec, error) {
	spec := SliceSpec{Mode: mode, Phi0: phi0, K: k, Extent: extent, Resolution: resolution}
	if err := spec.Validate(); err != nil {
		return SliceSpec{}, err
	}
	return spec, nil
}

// Validate checks the slice parameters.
func (s SliceSpec) Validate() error {
	if s.Mode != PhiPlane && s.Mode != PhiConstant {
		return &quantum.ParameterError{Name: "mode", Value: float64(s.Mode), Reason: "unknown azimuth mode"}
	}
	if math.IsNaN(s.Phi0) || math.IsInf(s.Phi0, 0) {
		return &quantum.ParameterError{Name: "phi0", Value: s.Phi0, Reason: "must be finite"}
	}
	if !(s.K >= 0) || math.IsInf(s.K, 0) {
		return &quantum.ParameterError{Name: "k", Value: s.K, Reason: "framing factor must be >= 0"}
	}
	if !(s.Extent >= 0) || math.IsInf(s.Extent, 0) {
		return &quantum.ParameterError{Name: "extent", Value: s.Extent, Reason: "extent must be >= 0"}
	}
	if s.Resolution < 2 {
		return &quantum.ParameterError{Name: "resolution", Value: float64(s.Resolution), Reason: "need at least 2 samples per axis"}
	}
	return nil
}

// HalfWidthUnits returns the frame half-width in units of a_μ. A positive K
// frames the state around its mean radius, K·(3n² − l(l+1))/(2Z).
func (s SliceSpec) HalfWidthUnits(st quantum.State) float64 {
	switch {
	case s.K > 0:
		return s.K * st.MeanRadiusUnits()
	case s.Extent > 0:
		return s.Extent
	default:
		return DefaultExtent
	}
}
