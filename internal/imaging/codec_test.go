package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatPNG, format)

	format, err = ParseFormat("JPG")
	require.NoError(t, err)
	require.Equal(t, FormatJPEG, format)

	_, err = ParseFormat("webp")
	require.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	path := writeTestPNG(t, 8, 6)

	encoded, err := EncodeFile(path, EncodeOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	img, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, 8, img.Bounds().Dx())
	require.Equal(t, 6, img.Bounds().Dy())

	// PNG is lossless, so pixels survive the round trip exactly.
	r, g, b, a := img.At(3, 2).RGBA()
	require.Equal(t, uint32(3*16), r>>8)
	require.Equal(t, uint32(2*16), g>>8)
	require.Equal(t, uint32(128), b>>8)
	require.Equal(t, uint32(255), a>>8)
}

func TestEncodeJPEG(t *testing.T) {
	path := writeTestPNG(t, 8, 8)

	encoded, err := EncodeFile(path, EncodeOptions{Format: FormatJPEG, JPEGQuality: 90})
	require.NoError(t, err)

	img, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, 8, img.Bounds().Dx())
}

func TestEncodeDownscales(t *testing.T) {
	path := writeTestPNG(t, 12, 6)

	encoded, err := EncodeFile(path, EncodeOptions{MaxSize: 6})
	require.NoError(t, err)

	img, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, 6, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())
}

func TestEncodeMissingFile(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "absent.png"), EncodeOptions{})
	require.Error(t, err)
}

func TestEncodeNonImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("not pixels"), 0o644))

	_, err := EncodeFile(path, EncodeOptions{})
	require.Error(t, err)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}

func TestDecodeMalformedBase64(t *testing.T) {
	_, err := Decode("%%% not base64 %%%")
	require.Error(t, err)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}

func TestDecodeNonImageBytes(t *testing.T) {
	_, err := Decode("aGVsbG8gd29ybGQ=") // "hello world"
	require.Error(t, err)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}

func TestEncodeFilesIsolatesFailures(t *testing.T) {
	good := writeTestPNG(t, 4, 4)
	bad := filepath.Join(t.TempDir(), "absent.png")

	var (
		results []string
		errs    []error
	)
	for encoded, err := range EncodeFiles([]string{good, bad, good}, EncodeOptions{}) {
		results = append(results, encoded)
		errs = append(errs, err)
	}

	require.Len(t, results, 3)
	require.NoError(t, errs[0])
	require.Error(t, errs[1])
	require.NoError(t, errs[2])
	require.Equal(t, results[0], results[2])
}

func TestDecodeAll(t *testing.T) {
	path := writeTestPNG(t, 4, 4)
	encoded, err := EncodeFile(path, EncodeOptions{})
	require.NoError(t, err)

	count := 0
	for img, err := range DecodeAll([]string{encoded, "garbage"}) {
		count++
		if count == 1 {
			require.NoError(t, err)
			require.NotNil(t, img)
		} else {
			require.Error(t, err)
			require.Nil(t, img)
		}
	}
	require.Equal(t, 2, count)
}
