package unisite

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 80
)

// Upload is a file handed to the media store, decoupled from the transport
// that carried it.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// MediaStore persists uploaded files under a fixed root and returns publicly
// addressable URLs. Filenames are random identifiers with an explicit
// collision check, and the size bound is enforced here at the ingest
// boundary, not only in the submitting form.
type MediaStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewMediaStore creates a MediaStore rooted at dir. Stored files are
// addressed as {baseURL}/uploads/{filename}.
func NewMediaStore(dir, baseURL string, maxBytes int64) *MediaStore {
	return &MediaStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/"), maxBytes: maxBytes}
}

// Dir returns the filesystem root the store writes into.
func (m *MediaStore) Dir() string { return m.dir }

// Store persists the upload and returns its public URL. Raster images wider
// than maxImageWidth are downscaled and re-encoded as JPEG; anything the
// image decoder rejects (favicons, SVG) is stored verbatim.
func (m *MediaStore) Store(up Upload) (string, error) {
	data, err := io.ReadAll(io.LimitReader(up.Reader, m.maxBytes+1))
	if err != nil {
		return "", &MediaWriteError{Filename: up.Filename, Err: err}
	}
	if int64(len(data)) > m.maxBytes {
		return "", NewValidationError("image", "file exceeds the upload size limit")
	}
	if len(data) == 0 {
		return "", NewValidationError("image", "file is empty")
	}

	ext := strings.ToLower(filepath.Ext(up.Filename))
	if processed, ok := reencodeImage(data); ok {
		data = processed
		ext = ".jpg"
	}

	filename, err := m.writeUnique(data, ext)
	if err != nil {
		return "", err
	}
	return m.baseURL + "/uploads/" + filename, nil
}

// writeUnique writes data under a fresh random name, regenerating on the
// rare collision, and returns the final filename.
func (m *MediaStore) writeUnique(data []byte, ext string) (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", &MediaWriteError{Filename: ext, Err: err}
	}
	for {
		filename := uuid.NewString() + ext
		path := filepath.Join(m.dir, filename)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", &MediaWriteError{Filename: filename, Err: err}
		}
		return filename, nil
	}
}

// reencodeImage decodes a raster image, downscales it if wider than
// maxImageWidth, and re-encodes it as JPEG. ok is false when data is not a
// decodable raster image.
func reencodeImage(data []byte) (out []byte, ok bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
