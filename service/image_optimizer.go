package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// Image sizes
const (
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

// Image kinds map to sub-directories of the assets dir
const (
	KindAnimal  = "animals"
	KindProduct = "products"
)

// ErrImageNotFound is returned when no local asset exists for an id
var ErrImageNotFound = errors.New("image not found")

var sourceExtensions = []string{".jpg", ".jpeg", ".png"}

// ImageOptimizer serves resized JPEGs of local catalog images, caching each size on disk
type ImageOptimizer struct {
	assetsDir string
	cacheDir  string
	logger    *zap.Logger
}

// NewImageOptimizer creates an optimizer reading from assetsDir and caching into cacheDir
func NewImageOptimizer(assetsDir, cacheDir string, logger *zap.Logger) *ImageOptimizer {
	return &ImageOptimizer{assetsDir: assetsDir, cacheDir: cacheDir, logger: logger}
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (o *ImageOptimizer) EnsureCacheDir() error {
	if err := os.MkdirAll(o.cacheDir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// CachePath returns the cache file path for an image id and size
func (o *ImageOptimizer) CachePath(kind string, id int, size string) string {
	return filepath.Join(o.cacheDir, fmt.Sprintf("%s_%d_%s.jpg", kind, id, size))
}

// Image returns the optimized JPEG for kind/id, from cache when available
func (o *ImageOptimizer) Image(kind string, id int, size string) ([]byte, error) {
	size = normalizeSize(size)
	cachePath := o.CachePath(kind, id, size)

	if data, err := os.ReadFile(cachePath); err == nil {
		return data, nil
	}

	source, err := o.findSource(kind, id)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	optimized, err := o.OptimizeImage(raw, size)
	if err != nil {
		return nil, err
	}

	if err := o.saveToCache(cachePath, optimized); err != nil {
		o.logger.Warn("failed to cache image", zap.String("path", cachePath), zap.Error(err))
	}
	return optimized, nil
}

func (o *ImageOptimizer) findSource(kind string, id int) (string, error) {
	for _, ext := range sourceExtensions {
		p := filepath.Join(o.assetsDir, kind, fmt.Sprintf("%d%s", id, ext))
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%d", ErrImageNotFound, kind, id)
}

func (o *ImageOptimizer) saveToCache(cachePath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	o.logger.Debug("image cached", zap.String("path", cachePath))
	return nil
}

func normalizeSize(size string) string {
	if size == SizeThumb {
		return SizeThumb
	}
	return SizeMedium
}

// OptimizeImage converts an image to JPEG, shrinking it so neither side
// exceeds the size's max dimension
func (o *ImageOptimizer) OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim, quality := maxSizeMedium, qualityMedium
	if normalizeSize(size) == SizeThumb {
		maxDim, quality = maxSizeThumb, qualityThumb
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		// imaging keeps the aspect ratio when one dimension is zero
		if bounds.Dx() >= bounds.Dy() {
			img = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	o.logger.Debug("image optimized",
		zap.String("format", format),
		zap.String("size", size),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}
