// Package imageio exports a render.Framebuffer to still-image files, for
// the CLI driver's headless (-out) mode.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/kaelwright/trigon/pkg/render"
)

// Save writes fb to path, choosing PNG or TGA encoding from the file
// extension ("" and unrecognized extensions are rejected rather than
// silently guessed at).
func Save(fb *render.Framebuffer, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return SavePNG(fb, path)
	case ".tga":
		return SaveTGA(fb, path)
	default:
		return fmt.Errorf("imageio: unsupported extension %q (use .png or .tga)", filepath.Ext(path))
	}
}

// SavePNG encodes fb as a PNG file.
func SavePNG(fb *render.Framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := render.Vec3ToColor(fb.GetPixel(x, y))
			img.SetRGBA(x, y, c)
		}
	}
	return png.Encode(f, img)
}

// SaveTGA encodes fb as an uncompressed 24-bit TGA file. No Go TGA encoder
// exists in this module's dependency graph, so the 18-byte header and BGR
// rows are written directly, framebuffer row 0 first. The image descriptor
// byte 0x20 marks the file as top-left origin, so row 0 is the top row of
// the stored image and no row-reversal pass is needed.
func SaveTGA(fb *render.Framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, 18)
	header[2] = 2 // uncompressed true-color
	header[12] = byte(fb.Width)
	header[13] = byte(fb.Width >> 8)
	header[14] = byte(fb.Height)
	header[15] = byte(fb.Height >> 8)
	header[16] = 24 // bits per pixel
	header[17] = 0x20 // top-left origin

	if _, err := f.Write(header); err != nil {
		return err
	}

	rgb := render.FramebufferToRGB(fb)
	row := make([]byte, fb.Width*3)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			i := (y*fb.Width + x) * 3
			row[x*3+0] = rgb[i+2] // B
			row[x*3+1] = rgb[i+1] // G
			row[x*3+2] = rgb[i+0] // R
		}
		if _, err := f.Write(row); err != nil {
			return err
		}
	}
	return nil
}
