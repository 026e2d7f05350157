// Package imaging converts raster images between files, portable base64
// text, and in-memory bitmaps. Every decoded bitmap is normalized through
// PNG so its pixel data is independent of the transient decode buffer.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"iter"
	"os"
	"strings"
)

// Format is the raster format used when re-encoding an image.
type Format string

const (
	// FormatPNG is the normalized lossless default.
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ParseFormat resolves a user-supplied format string. The empty string
// resolves to PNG.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported image format: %q", value)
	}
}

// DecodeError indicates bytes or text that could not be interpreted as an
// image. It wraps the underlying codec error.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("decode image %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeOptions controls re-encoding during EncodeFile.
type EncodeOptions struct {
	// Format selects the target raster format; empty means PNG.
	Format Format

	// MaxSize, when positive, downscales so the longest side is at most
	// MaxSize pixels. Images already within bounds are left untouched.
	MaxSize int

	// JPEGQuality applies to FormatJPEG only; zero means the default 80.
	JPEGQuality int
}

// EncodeFile loads a raster image from path, re-encodes it into the target
// format in memory, and returns the base64 text of the result.
func EncodeFile(path string, opts EncodeOptions) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- image path is user-provided
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Source: path, Err: err}
	}

	if opts.MaxSize > 0 {
		img = scaleDown(img, opts.MaxSize)
	}

	var buf bytes.Buffer
	if err := encode(&buf, img, opts); err != nil {
		return "", fmt.Errorf("encode image %s: %w", path, err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeFiles yields one base64 string per path, in input order. Failures
// are per-item: a bad path yields an error for that element only. The
// sequence is lazy and restartable only by calling EncodeFiles again.
func EncodeFiles(paths []string, opts EncodeOptions) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, path := range paths {
			encoded, err := EncodeFile(path, opts)
			if !yield(encoded, err) {
				return
			}
		}
	}
}

// Decode turns a base64 text representation back into a displayable bitmap.
// The pixels are re-encoded through PNG and decoded again so the returned
// image owns its data outright; the intermediate buffers are scoped to this
// call and released on return.
func Decode(encoded string) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("invalid base64 text: %w", err)}
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	// Normalization round-trip. Re-encoding to PNG and decoding the result
	// detaches the bitmap from the input buffer and collapses every source
	// format into one lossless representation.
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("normalize image: %w", err)
	}

	normalized, err := png.Decode(&buf)
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("normalized pixels unreadable: %w", err)}
	}

	return normalized, nil
}

// DecodeAll yields one bitmap per text representation, in input order, with
// per-item failures.
func DecodeAll(encoded []string) iter.Seq2[image.Image, error] {
	return func(yield func(image.Image, error) bool) {
		for _, text := range encoded {
			img, err := Decode(text)
			if !yield(img, err) {
				return
			}
		}
	}
}

func encode(buf *bytes.Buffer, img image.Image, opts EncodeOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatPNG
	}

	switch format {
	case FormatPNG:
		return png.Encode(buf, img)
	case FormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 {
			quality = 80
		}
		if quality > 100 {
			quality = 100
		}
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("unsupported image format: %q", format)
	}
}
