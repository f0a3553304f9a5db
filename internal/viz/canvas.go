package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/hwf/internal/field"
	"github.com/san-kum/hwf/internal/quantum"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set turns on the dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Contour marks every sub-pixel whose normalised density reaches level.
// Each sub-pixel reads the nearest grid sample; z points up.
func Contour(f *field.Field, level, exposure float64, width int) (*Canvas, error) {
	if !(level > 0 && level <= 1) {
		return nil, fmt.Errorf("%w: level=%g: must be in (0, 1]", quantum.ErrInvalidParameter, level)
	}
	if width < 1 {
		return nil, fmt.Errorf("%w: width=%d: must be >= 1", quantum.ErrInvalidParameter, width)
	}
	norm, err := NewNorm(f.Density, exposure)
	if err != nil {
		return nil, err
	}

	c := NewCanvas(width, max(1, width/2))
	subW, subH := 2*c.Width, 4*c.Height
	res := f.Resolution
	for y := 0; y < subH; y++ {
		i := res - 1 - (y*res)/subH
		for x := 0; x < subW; x++ {
			j := (x * res) / subW
			if norm.Apply(f.DensityAt(i, j)) >= level {
				c.Set(x, y)
			}
		}
	}
	return c, nil
}
