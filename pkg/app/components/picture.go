package components

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Fit returns the cell size of img scaled into cols x rows terminal cells.
// Every cell shows two vertically stacked pixels.
func Fit(bounds image.Rectangle, cols, rows int) (int, int) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}

	pxH := rows * 2
	if w <= cols && h <= pxH {
		return w, (h + 1) / 2
	}

	scale := min(float64(cols)/float64(w), float64(pxH)/float64(h))
	fw := max(1, int(float64(w)*scale))
	fh := max(1, int(float64(h)*scale))
	return fw, (fh + 1) / 2
}

// RenderPicture draws img with half block characters, the upper pixel as
// foreground and the lower one as background color.
func RenderPicture(img image.Image, cols, rows int) string {
	if img == nil {
		return ""
	}
	w, h := Fit(img.Bounds(), cols, rows)
	if w == 0 || h == 0 {
		return ""
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := dst.RGBAAt(x, 2*y)
			bottom := dst.RGBAAt(x, 2*y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(hex(top.R, top.G, top.B)).
				Background(hex(bottom.R, bottom.G, bottom.B)).
				Render("▀"))
		}
		if y < h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func hex(r, g, b uint8) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
