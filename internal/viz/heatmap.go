package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hwf/internal/field"
	"github.com/san-kum/hwf/internal/quantum"
)

// Shades orders glyphs by ink coverage.
const Shades = " .:-=+*#%@"

type HeatmapOptions struct {
	Width    int // characters; rows are Width/2 to keep the frame square
	Exposure float64
	Theme    Theme
	Color    bool
}

// Label returns the "(n, l, m)" tag drawn on every preview.
func Label(st quantum.State) string {
	return fmt.Sprintf("(%d, %d, %d)", st.N(), st.L(), st.M())
}

// UnitLabel names the length unit of the frame axes.
func UnitLabel(st quantum.State) string {
	if st.UsesReducedMass() {
		return "a_μ"
	}
	return "a_0"
}

// Downsample averages the normalised field into rows×cols blocks. Row 0 is
// the top of the frame (largest z).
func Downsample(values []float64, res, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		// Grid row i grows with z, so the top display row reads the last block.
		rb := rows - 1 - r
		i0, i1 := rb*res/rows, (rb+1)*res/rows
		for c := range out[r] {
			j0, j1 := c*res/cols, (c+1)*res/cols
			sum, count := 0.0, 0
			for i := i0; i < max(i1, i0+1); i++ {
				for j := j0; j < max(j1, j0+1); j++ {
					sum += values[i*res+j]
					count++
				}
			}
			out[r][c] = sum / float64(count)
		}
	}
	return out
}

func shadeFor(v float64) byte {
	idx := int(v*float64(len(Shades)-1) + 0.5)
	idx = max(0, min(idx, len(Shades)-1))
	return Shades[idx]
}

// Heatmap renders |ψ|² on the x–z plane as shaded characters with z up.
func Heatmap(f *field.Field, opts HeatmapOptions) (string, error) {
	if opts.Width < 2 {
		return "", fmt.Errorf("%w: width=%d: must be >= 2", quantum.ErrInvalidParameter, opts.Width)
	}
	normed, err := Exposure(f.Density, opts.Exposure)
	if err != nil {
		return "", err
	}

	cols := min(opts.Width, f.Resolution)
	rows := max(1, cols/2)
	cells := Downsample(normed, f.Resolution, rows, cols)

	t := opts.Theme
	var b strings.Builder
	title := Label(f.State)
	if opts.Color {
		title = titleStyle(t).Render(title)
	}
	b.WriteString(title + "\n")

	for _, row := range cells {
		for _, v := range row {
			ch := string(shadeFor(v))
			if opts.Color {
				ch = lipgloss.NewStyle().
					Foreground(t.ColorAt(v)).
					Background(t.Background).
					Render(ch)
			}
			b.WriteString(ch)
		}
		b.WriteByte('\n')
	}

	unit := UnitLabel(f.State)
	caption := fmt.Sprintf("x, z / %s ∈ [%.3g, %.3g]", unit, f.Extent.Units.XMin, f.Extent.Units.XMax)
	if opts.Color {
		caption = labelStyle(t).Render(caption)
	}
	b.WriteString(caption + "\n")
	return b.String(), nil
}
