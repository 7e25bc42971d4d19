package upload

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// DefaultOptimizeTimeout is the hard wall-clock ceiling for one image
// optimization. Past it the original file is used as-is.
const DefaultOptimizeTimeout = 10 * time.Second

const (
	maxImageDimension = 1200
	jpegQuality       = 80
)

// Optimizer re-encodes uploaded images to a bounded size. It is
// strictly best-effort: any failure or timeout leaves the original file
// in place and the upload proceeds.
type Optimizer struct {
	timeout time.Duration
}

func NewOptimizer(timeout time.Duration) *Optimizer {
	if timeout <= 0 {
		timeout = DefaultOptimizeTimeout
	}
	return &Optimizer{timeout: timeout}
}

// Optimize resizes srcPath to fit within 1200x1200 and re-encodes it as
// JPEG q80 into dstDir. Returns the optimized filename and true on
// success; false means the caller should keep the original.
func (o *Optimizer) Optimize(ctx context.Context, srcPath, dstDir string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	optimizedName := fmt.Sprintf("opt-%s.jpg", uuid.NewString())
	outPath := filepath.Join(dstDir, optimizedName)

	done := make(chan error, 1)
	go func() {
		done <- o.process(srcPath, outPath)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("image optimization failed, keeping original: file=%s err=%v", filepath.Base(srcPath), err)
			return "", false
		}
		return optimizedName, true
	case <-ctx.Done():
		// The worker goroutine may still finish writing outPath; the
		// orphaned file is harmless and never referenced.
		log.Printf("image optimization timed out, keeping original: file=%s", filepath.Base(srcPath))
		return "", false
	}
}

func (o *Optimizer) process(srcPath, outPath string) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)

	if err := imaging.Save(img, outPath, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
