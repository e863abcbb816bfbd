// Package testutil provides shared fixtures for tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
)

// PNGPayload returns a valid encoded PNG of the given dimensions.
func PNGPayload(width, height int) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, fillRGBA(width, height)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// JPEGPayload returns a valid encoded JPEG of the given dimensions.
func JPEGPayload(width, height int) []byte {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, fillRGBA(width, height), &jpeg.Options{Quality: 80}); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// GIFPayload returns a valid encoded GIF of the given dimensions.
func GIFPayload(width, height int) []byte {
	pal := image.NewPaletted(image.Rect(0, 0, width, height), []color.Color{
		color.White, color.Black,
	})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, pal, nil); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func fillRGBA(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}
