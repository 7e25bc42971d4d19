package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Per-listing submission limits and the per-file size cap. These are
// storage policy, enforced here rather than in the listing services.
const (
	MaxImagesPerListing    = 10
	MaxDocumentsPerListing = 5
	MaxVideosPerListing    = 2

	MaxFileSize = 50 * 1024 * 1024 // 50 MB
)

// Kind classifies a stored file by its purpose in a listing.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

var allowedMimeByKind = map[Kind]map[string]bool{
	KindImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	},
	KindVideo: {
		"video/mp4":  true,
		"video/webm": true,
	},
	KindDocument: {
		"application/pdf": true,
		"image/jpeg":      true,
		"image/png":       true,
	},
}

var subdirByKind = map[Kind]string{
	KindImage:    "images",
	KindVideo:    "videos",
	KindDocument: "documents",
}

// StoredFile is the normalized record the listing services consume: a
// stable relative URL plus the byte classification.
type StoredFile struct {
	URL  string
	Kind Kind
}

// Storage saves uploaded files to local disk under
// {baseDir}/{images,videos,documents} and returns public URLs under the
// static base. Images pass through a bounded optimization step.
type Storage struct {
	baseDir    string
	staticBase string
	optimizer  *Optimizer
}

func NewStorage(baseDir, staticBase string) *Storage {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if staticBase == "" {
		staticBase = "/uploads"
	}
	return &Storage{
		baseDir:    baseDir,
		staticBase: staticBase,
		optimizer:  NewOptimizer(DefaultOptimizeTimeout),
	}
}

// SaveListingFiles stores a listing submission's attachments. Counts are
// checked per purpose before anything is written; a violation fails the
// whole batch.
func (s *Storage) SaveListingFiles(ctx context.Context, images, videos, documents []*multipart.FileHeader) ([]StoredFile, error) {
	if len(images) > MaxImagesPerListing ||
		len(videos) > MaxVideosPerListing ||
		len(documents) > MaxDocumentsPerListing {
		return nil, ErrTooManyFiles
	}

	var stored []StoredFile
	for _, fh := range images {
		f, err := s.Save(ctx, fh, KindImage)
		if err != nil {
			return nil, err
		}
		stored = append(stored, f)
	}
	for _, fh := range videos {
		f, err := s.Save(ctx, fh, KindVideo)
		if err != nil {
			return nil, err
		}
		stored = append(stored, f)
	}
	for _, fh := range documents {
		f, err := s.Save(ctx, fh, KindDocument)
		if err != nil {
			return nil, err
		}
		stored = append(stored, f)
	}
	return stored, nil
}

// Save writes one file to disk. Images are re-encoded by the optimizer;
// if optimization fails or times out the unprocessed original is kept,
// so a listing never fails to publish over a slow resize.
func (s *Storage) Save(ctx context.Context, fh *multipart.FileHeader, kind Kind) (StoredFile, error) {
	if fh.Size == 0 {
		return StoredFile{}, ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return StoredFile{}, ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return StoredFile{}, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	mimeType, err := detectMime(file)
	if err != nil {
		return StoredFile{}, err
	}
	if !allowedMimeByKind[kind][mimeType] {
		return StoredFile{}, ErrInvalidMimeType
	}

	subdir := subdirByKind[kind]
	absDir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return StoredFile{}, fmt.Errorf("create upload dir: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := fmt.Sprintf("%s-%s%s", subdir, uuid.NewString(), ext)
	absPath := filepath.Join(absDir, filename)

	dst, err := os.Create(absPath)
	if err != nil {
		return StoredFile{}, fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		_ = os.Remove(absPath)
		return StoredFile{}, fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(absPath)
		return StoredFile{}, fmt.Errorf("close file: %w", err)
	}

	if kind == KindImage {
		if optimized, ok := s.optimizer.Optimize(ctx, absPath, absDir); ok {
			_ = os.Remove(absPath)
			filename = optimized
		}
	}

	return StoredFile{
		URL:  s.staticBase + "/" + subdir + "/" + filename,
		Kind: kind,
	}, nil
}

// detectMime sniffs the content type from the first 512 bytes and
// rewinds the reader.
func detectMime(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0]

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}
	return mimeType, nil
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}

// EnsureDirs creates the upload directory tree at startup.
func (s *Storage) EnsureDirs() error {
	for _, subdir := range subdirByKind {
		if err := os.MkdirAll(filepath.Join(s.baseDir, subdir), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// BaseDir is the on-disk root served under the static base.
func (s *Storage) BaseDir() string { return s.baseDir }

// StaticBase is the URL prefix files are served under.
func (s *Storage) StaticBase() string { return s.staticBase }
