package gallery

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// PreviewPrefix marks locally minted preview references. Only
// references with this prefix are subject to deferred revocation;
// remote URLs on existing images are never released.
const PreviewPrefix = "blob:"

// PreviewAllocator mints displayable preview references for ingested
// files and releases them again. Create either returns a reference that
// must eventually be revoked exactly once, or an error (the file is then
// excluded with reason create_url_failed).
type PreviewAllocator interface {
	Create(file File) (string, error)
	Revoke(ref string)
}

const thumbnailBound = 512

// MemoryPreviews is the in-process allocator: it decodes the upload,
// downscales it to a display thumbnail and parks it under a blob-style
// handle until the handle is revoked.
type MemoryPreviews struct {
	images map[string]image.Image
}

func NewMemoryPreviews() *MemoryPreviews {
	return &MemoryPreviews{images: make(map[string]image.Image)}
}

func (p *MemoryPreviews) Create(file File) (string, error) {
	if len(file.Data) == 0 {
		return "", fmt.Errorf("preview %s: no file data", file.Name)
	}
	img, err := imaging.Decode(bytes.NewReader(file.Data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("preview %s: %w", file.Name, err)
	}
	ref := PreviewPrefix + uuid.NewString()
	p.images[ref] = imaging.Fit(img, thumbnailBound, thumbnailBound, imaging.Lanczos)
	return ref, nil
}

func (p *MemoryPreviews) Revoke(ref string) {
	delete(p.images, ref)
}

// Image returns the thumbnail behind a reference for rendering hosts.
func (p *MemoryPreviews) Image(ref string) (image.Image, bool) {
	img, ok := p.images[ref]
	return img, ok
}

// Held reports how many references are currently alive.
func (p *MemoryPreviews) Held() int {
	return len(p.images)
}
