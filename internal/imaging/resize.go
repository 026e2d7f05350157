package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// scaleDown shrinks img so the longest side is at most maxSize pixels,
// preserving aspect ratio. Images already within bounds pass through.
func scaleDown(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	longest := width
	if height > longest {
		longest = height
	}
	if longest <= maxSize {
		return img
	}

	scale := float64(maxSize) / float64(longest)
	newW := int(float64(width) * scale)
	newH := int(float64(height) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
