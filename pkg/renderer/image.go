package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// pixelStats holds Welford running statistics for one pixel
type pixelStats struct {
	count int
	mean  core.Vec3
	m2    core.Vec3
}

// Image is a Film backed by per-pixel running mean and variance.
// Each pixel is an independent slot, so concurrent writers touching
// distinct pixels need no locking.
type Image struct {
	width, height int
	pixels        []pixelStats
}

// NewImage creates an empty image of the given size
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("renderer: invalid image size %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		pixels: make([]pixelStats, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

func (img *Image) at(x, y int) *pixelStats {
	return &img.pixels[y*img.width+x]
}

// AddSample folds one radiance sample into the pixel statistics
func (img *Image) AddSample(x, y int, value core.Vec3) {
	p := img.at(x, y)
	p.count++
	delta := value.Subtract(p.mean)
	p.mean = p.mean.Add(delta.Divide(float64(p.count)))
	p.m2 = p.m2.Add(delta.MultiplyVec(value.Subtract(p.mean)))
}

// StandardDeviation returns the per-channel sample standard deviation.
// Pixels with fewer than two samples report zero.
func (img *Image) StandardDeviation(x, y int) core.Vec3 {
	p := img.at(x, y)
	if p.count < 2 {
		return core.Vec3{}
	}
	n := float64(p.count - 1)
	return core.NewVec3(
		math.Sqrt(math.Max(0, p.m2.X/n)),
		math.Sqrt(math.Max(0, p.m2.Y/n)),
		math.Sqrt(math.Max(0, p.m2.Z/n)),
	)
}

// Mean returns the current pixel estimate
func (img *Image) Mean(x, y int) core.Vec3 {
	return img.at(x, y).mean
}

// Samples returns how many samples the pixel has received
func (img *Image) Samples(x, y int) int {
	return img.at(x, y).count
}

// TotalSamples returns the number of samples across all pixels
func (img *Image) TotalSamples() int {
	total := 0
	for i := range img.pixels {
		total += img.pixels[i].count
	}
	return total
}

// ToRGBA tone maps the image: gamma 2, clamped to [0, 1]
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			out.SetRGBA(x, y, vec3ToColor(img.Mean(x, y)))
		}
	}
	return out
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	if !colorVec.IsFinite() {
		colorVec = core.Vec3{}
	}
	colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

type encoder func(w io.Writer, m image.Image) error

var encoders = map[string]encoder{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
}

// SupportedFormats lists the file extensions Save understands, without the dot
func SupportedFormats() []string {
	return []string{"png", "bmp", "tif", "tiff"}
}

// Save writes the tone mapped image; the encoder is chosen by file extension
func (img *Image) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("unsupported image format %q", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(file, img.ToRGBA()); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
