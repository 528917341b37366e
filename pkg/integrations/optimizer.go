package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

// PageOptimizer scales and re-encodes comic pages for an e-reader.
type PageOptimizer struct {
	settings OptimizationSettings
}

func NewPageOptimizer(settings OptimizationSettings) *PageOptimizer {
	return &PageOptimizer{settings: settings}
}

func (p *PageOptimizer) Optimize(content []byte) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := p.calculateDimensions(bounds.Dx(), bounds.Dy())

	var processed image.Image = img
	if width != bounds.Dx() || height != bounds.Dy() {
		processed = p.resize(img, width, height)
	}

	if (p.settings.Contrast != 0 && p.settings.Contrast != 1.0) || (p.settings.Gamma != 0 && p.settings.Gamma != 1.0) {
		processed = p.adjustTone(processed)
	}

	if p.settings.Grayscale {
		processed = p.toGrayscale(processed)
	}

	return p.encode(processed)
}

// calculateDimensions fits width x height into the reader screen keeping
// the aspect ratio. Pages are never enlarged.
func (p *PageOptimizer) calculateDimensions(width, height int) (int, int) {
	if p.settings.MaxWidth <= 0 || p.settings.MaxHeight <= 0 {
		return width, height
	}
	if width <= p.settings.MaxWidth && height <= p.settings.MaxHeight {
		return width, height
	}

	scale := math.Min(
		float64(p.settings.MaxWidth)/float64(width),
		float64(p.settings.MaxHeight)/float64(height),
	)

	return max(1, int(float64(width)*scale)), max(1, int(float64(height)*scale))
}

func (p *PageOptimizer) resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func (p *PageOptimizer) toGrayscale(img image.Image) image.Image {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// adjustTone applies contrast around middle gray followed by gamma, using a
// single lookup table per channel value.
func (p *PageOptimizer) adjustTone(img image.Image) image.Image {
	contrast, gamma := p.settings.Contrast, p.settings.Gamma
	if contrast == 0 {
		contrast = 1.0
	}
	if gamma == 0 {
		gamma = 1.0
	}

	var table [256]uint8
	for i := range table {
		v := (float64(i)-128)*contrast + 128
		v = clamp(v)
		if gamma != 1.0 {
			v = 255 * math.Pow(v/255, 1/gamma)
		}
		table[i] = uint8(clamp(v))
	}

	bounds := img.Bounds()
	adjusted := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			adjusted.SetRGBA(x, y, color.RGBA{table[c.R], table[c.G], table[c.B], c.A})
		}
	}
	return adjusted
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}

func (p *PageOptimizer) encode(img image.Image) ([]byte, string, error) {
	var buf bytes.Buffer

	switch p.settings.Format {
	case "jpeg", "jpg", "":
		quality := p.settings.Quality
		if quality <= 0 {
			quality = jpeg.DefaultQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
		}
		return buf.Bytes(), "jpg", nil
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("failed to encode PNG: %w", err)
		}
		return buf.Bytes(), "png", nil
	default:
		return nil, "", fmt.Errorf("unsupported format: %s", p.settings.Format)
	}
}
