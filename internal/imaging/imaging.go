// Package imaging shrinks uploaded photos before they are sent to the backend.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	_ "image/png" // register decoder
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

const (
	// MaxDimension caps both sides of a processed image, in pixels.
	MaxDimension = 300
	// Quality is the JPEG quality of a processed image.
	Quality = 60

	maxUploadSize = 10 << 20
	jpegDataURI   = "data:image/jpeg;base64,"
)

var (
	// ErrEmptyImage is returned for an empty upload.
	ErrEmptyImage = errors.New("empty image")
	// ErrUnsupportedImage is returned when the upload cannot be decoded.
	ErrUnsupportedImage = errors.New("unsupported image format")
	// ErrTooLarge is returned for uploads above the accepted size.
	ErrTooLarge = errors.New("image too large")
	// ErrInvalidDataURI is returned by ParseDataURI for malformed input.
	ErrInvalidDataURI = errors.New("invalid data uri")
)

// Options controls Process. Zero fields take the package defaults.
type Options struct {
	MaxDimension int
	Quality      int
}

func (o Options) withDefaults() Options {
	if o.MaxDimension <= 0 {
		o.MaxDimension = MaxDimension
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = Quality
	}
	return o
}

// Process decodes a JPEG, PNG, GIF or WebP image, scales it to fit within
// MaxDimension without upscaling and returns it as a JPEG data URI.
func Process(r io.Reader) (string, error) {
	return ProcessWith(r, Options{})
}

// ProcessWith is Process with explicit options.
func ProcessWith(r io.Reader, opts Options) (string, error) {
	opts = opts.withDefaults()

	data, err := io.ReadAll(io.LimitReader(r, maxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if len(data) > maxUploadSize {
		return "", ErrTooLarge
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	bounds := src.Bounds()
	width, height := Fit(bounds.Dx(), bounds.Dy(), opts.MaxDimension)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// JPEG has no alpha channel; transparent pixels become white.
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return "", fmt.Errorf("encode %s as jpeg: %w", format, err)
	}

	return jpegDataURI + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Fit returns the size of a width x height image scaled so that neither side
// exceeds limit, preserving aspect ratio. Images already within the limit
// keep their size.
func Fit(width, height, limit int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	if width <= limit && height <= limit {
		return width, height
	}
	if width > height {
		h := int(math.Round(float64(height) * float64(limit) / float64(width)))
		return limit, max(h, 1)
	}
	w := int(math.Round(float64(width) * float64(limit) / float64(height)))
	return max(w, 1), limit
}

// ParseDataURI splits a base64 data URI into its media type and payload.
func ParseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	mediaType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("%w: payload is not base64", ErrInvalidDataURI)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return mediaType, data, nil
}
