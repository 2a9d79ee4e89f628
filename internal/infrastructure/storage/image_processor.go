package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
)

type ImageProcessor struct {
	MaxDimension int // px, 0 = không resize
}

func NewImageProcessor(maxDimension int) *ImageProcessor {
	return &ImageProcessor{MaxDimension: maxDimension}
}

// Normalize fits JPEG/PNG covers larger than MaxDimension into a
// MaxDimension square box and re-encodes them in the same format.
// Other formats (gif, webp) and small images are returned untouched.
func (p *ImageProcessor) Normalize(data []byte, format string) ([]byte, error) {
	if p.MaxDimension <= 0 || (format != "jpeg" && format != "png") {
		return data, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("not an image: %w", err)
	}
	if cfg.Width <= p.MaxDimension && cfg.Height <= p.MaxDimension {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	resized := imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)

	b := new(bytes.Buffer)
	switch format {
	case "png":
		err = png.Encode(b, resized)
	default:
		err = jpeg.Encode(b, resized, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, fmt.Errorf("cannot encode %s: %w", format, err)
	}
	return b.Bytes(), nil
}
