package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUploadRejected covers files failing the type or size checks. Checked
// before anything is written.
var ErrUploadRejected = errors.New("upload rejected")

// MaxUploadSize is the upload ceiling.
const MaxUploadSize = 5 << 20 // 5MB

var allowedTypes = map[string]string{
	"image/png":     "png",
	"image/jpg":     "jpg",
	"image/jpeg":    "jpeg",
	"image/svg+xml": "svg",
}

type UploadResult struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

// ImageStore saves uploaded images under a local root directory and serves
// them at baseURL/uploads/.
type ImageStore struct {
	root    string
	baseURL string
}

func NewImageStore(root, baseURL string) *ImageStore {
	return &ImageStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Save validates and stores an image under the given folder prefix with a
// generated {timestamp}_{random}.{ext} name.
func (s *ImageStore) Save(contentType string, size int64, r io.Reader, folder string) (UploadResult, error) {
	ext, ok := allowedTypes[strings.ToLower(contentType)]
	if !ok {
		return UploadResult{}, fmt.Errorf("%w: type %s not allowed, only PNG, JPG and SVG", ErrUploadRejected, contentType)
	}
	if size > MaxUploadSize {
		return UploadResult{}, fmt.Errorf("%w: file too large, max 5MB", ErrUploadRejected)
	}
	if folder == "" {
		folder = "images"
	}

	name := fmt.Sprintf("%d_%s.%s", time.Now().UnixMilli(), randomSuffix(), ext)
	fileName := filepath.Join(folder, name)

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return UploadResult{}, err
	}
	f, err := os.Create(filepath.Join(s.root, fileName))
	if err != nil {
		return UploadResult{}, err
	}
	defer f.Close()
	// Size is re-checked while copying; the declared size is client input.
	if _, err := io.Copy(f, io.LimitReader(r, MaxUploadSize+1)); err != nil {
		os.Remove(f.Name())
		return UploadResult{}, err
	}
	if info, err := f.Stat(); err == nil && info.Size() > MaxUploadSize {
		os.Remove(f.Name())
		return UploadResult{}, fmt.Errorf("%w: file too large, max 5MB", ErrUploadRejected)
	}

	return UploadResult{
		URL:      fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, folder, name),
		FileName: fileName,
	}, nil
}

// Delete removes a stored image. Best effort: a missing file is not an error.
// Paths resolving outside the root are ignored; a bare prefix check would let
// a sibling directory sharing the root's name through.
func (s *ImageStore) Delete(fileName string) {
	path := filepath.Join(s.root, filepath.Clean(fileName))
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return
	}
	os.Remove(path)
}

func randomSuffix() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
