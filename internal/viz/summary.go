package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/hwf/internal/analysis"
)

// Summary renders analysis results as a key/value panel.
func Summary(s analysis.Summary, t Theme) string {
	rows := [][2]string{
		{"state", fmt.Sprintf("(%d, %d, %d)  Z=%g", s.N, s.L, s.M, s.Z)},
		{"a_μ", fmt.Sprintf("%.6e m", s.AMu)},
		{"radial nodes", fmt.Sprintf("%d (expected %d)", s.RadialNodes, s.ExpectedNodes)},
		{"∫r²R² dr", fmt.Sprintf("%.9f", s.RadialNorm)},
		{"∫|Y|² dΩ", fmt.Sprintf("%.9f", s.AngularNorm)},
		{"peak r", fmt.Sprintf("%.4g a_μ", s.PeakRadius)},
		{"<r> (window)", fmt.Sprintf("%.4g a_μ (exact %.4g)", s.MeanRadius, s.ExpectedMean)},
		{"max |ψ|²", fmt.Sprintf("%.4e m⁻³", s.MaxDensity)},
	}

	width := 0
	for _, r := range rows {
		width = max(width, len([]rune(r[0])))
	}

	var b strings.Builder
	for i, r := range rows {
		pad := strings.Repeat(" ", width-len([]rune(r[0])))
		b.WriteString(labelStyle(t).Render(r[0]+pad) + "  " + valueStyle(t).Render(r[1]))
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	for _, adv := range s.Advisories {
		b.WriteString("\n" + labelStyle(t).Render("warning") + "  " + adv)
	}
	return Panel("diagnostics", b.String(), t)
}
