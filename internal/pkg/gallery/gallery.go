// Package gallery manages the bounded image set behind the blueprint
// upload form: batch ingestion with validation and deduplication,
// stable-ID removal with deferred preview release, wholesale reorder,
// and initialization from already-uploaded images.
package gallery

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/talospioneers/blueprinthub/internal/pkg/i18n"
	"github.com/talospioneers/blueprinthub/internal/pkg/lifecycle"
	"github.com/talospioneers/blueprinthub/internal/pkg/notify"
)

// FailureReason is the typed per-file rejection cause; it is tracked
// independently of translated messages.
type FailureReason string

const (
	ReasonInvalidType     FailureReason = "invalid_type"
	ReasonTooLarge        FailureReason = "too_large"
	ReasonCreateURLFailed FailureReason = "create_url_failed"
)

// FailedFile records one rejected candidate for UI feedback.
type FailedFile struct {
	Name   string
	Reason FailureReason
}

// File is a raw upload handle as delivered by the host's file picker or
// drop event.
type File struct {
	Name string
	Size int64
	// LastModified is the file's modification timestamp in Unix
	// milliseconds; it participates in the deduplication key.
	LastModified int64
	ContentType  string
	Data         []byte
}

// dedupeKey identifies a file by name, size and modification time.
// Known weakness: renaming a file sidesteps it. Content hashing would
// close that hole but is too expensive at ingestion time.
func (f File) dedupeKey() string {
	return fmt.Sprintf("%s:%d:%d", f.Name, f.Size, f.LastModified)
}

// ImageItem is one gallery entry: either a new upload holding a locally
// minted preview reference, or an existing image referencing a remote
// URL.
type ImageItem struct {
	ID         string
	File       *File
	Preview    string
	IsExisting bool
	URL        string
	MediaID    string
}

// ExistingImage describes an already-uploaded image used to seed the
// gallery in edit mode.
type ExistingImage struct {
	URL       string
	Thumbnail string
	ID        string
}

// Options configures a Manager.
type Options struct {
	MaxImages         int   `validate:"omitempty,gt=0"`
	MaxFileSizeBytes  int64 `validate:"omitempty,gt=0"`
	AllowedMIMETypes  []string
	AllowedExtensions []string
	// AllowedHosts is the hostname allow-list for existing-image URLs.
	// Empty accepts every hostname.
	AllowedHosts []string

	Translate i18n.TranslateFunc `validate:"required"`
	Notifier  notify.Notifier    `validate:"required"`
	// Previews defaults to an in-process MemoryPreviews allocator.
	Previews PreviewAllocator

	// OnChange fires after every committed item-list change.
	OnChange func()
	// OnValidate asks the host form to validate the named field.
	OnValidate func(field string)
	// OnForgetError asks the host form to clear the named field error.
	OnForgetError func(field string)
}

var validate = validator.New()

// Manager owns one gallery's item list and pending-revocation queue.
// It is owned by a single mounted view and is not safe for concurrent
// use; the disposal flag is the only guard deferred work checks.
type Manager struct {
	opts     Options
	previews PreviewAllocator

	items      []ImageItem
	failed     []FailedFile
	pending    revocationQueue
	processing bool
	dragging   bool
	disposed   bool
}

func NewManager(opts Options) (*Manager, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("gallery options: %w", err)
	}
	if opts.MaxImages == 0 {
		opts.MaxImages = DefaultMaxImages
	}
	if opts.MaxFileSizeBytes == 0 {
		opts.MaxFileSizeBytes = DefaultMaxFileSizeBytes
	}
	if opts.AllowedMIMETypes == nil {
		opts.AllowedMIMETypes = DefaultAllowedMIMETypes
	}
	if opts.AllowedExtensions == nil {
		opts.AllowedExtensions = DefaultAllowedExtensions
	}
	previews := opts.Previews
	if previews == nil {
		previews = NewMemoryPreviews()
	}
	return &Manager{opts: opts, previews: previews}, nil
}

// Attach registers disposal with an explicit lifecycle so the hosting
// application tears the gallery down deterministically.
func (m *Manager) Attach(life *lifecycle.Lifecycle) {
	life.OnDispose(m.Dispose)
}

func newImageID() string {
	return "img_" + uuid.NewString()
}

// ProcessFiles ingests a batch. The whole batch aborts with a single
// notification when the gallery is already full; otherwise the batch is
// truncated to the remaining slots, deduplicated against current items
// and earlier batch entries, validated, given preview references, and
// committed as one atomic list replacement. At most one combined
// notification is emitted, errors taking priority over skip warnings.
func (m *Manager) ProcessFiles(files []File) {
	if m.disposed {
		return
	}
	m.processing = true
	defer func() { m.processing = false }()
	m.failed = nil

	remaining := m.opts.MaxImages - len(m.items)
	if remaining <= 0 {
		m.opts.Notifier.Error(m.opts.Translate("gallery.maxImagesReached", map[string]any{
			"max": m.opts.MaxImages,
		}))
		return
	}

	toProcess := files
	skipped := 0
	if len(files) > remaining {
		toProcess = files[:remaining]
		skipped = len(files) - remaining
	}

	var (
		errMessages []string
		failed      []FailedFile
		duplicates  int
	)

	newItems := make([]ImageItem, len(m.items), len(m.items)+len(toProcess))
	copy(newItems, m.items)

	for _, file := range toProcess {
		if isDuplicateIn(file, newItems) {
			duplicates++
			continue
		}

		if reason, ok := m.validateFile(file); !ok {
			errMessages = append(errMessages, m.rejectionMessage(file, reason))
			failed = append(failed, FailedFile{Name: file.Name, Reason: reason})
			continue
		}

		preview, err := m.previews.Create(file)
		if err != nil {
			log.Errorf("[Gallery] preview creation failed for %s: %v", file.Name, err)
			errMessages = append(errMessages, m.opts.Translate("gallery.createUrlFailed", map[string]any{
				"name": file.Name,
			}))
			failed = append(failed, FailedFile{Name: file.Name, Reason: ReasonCreateURLFailed})
			continue
		}

		fileCopy := file
		newItems = append(newItems, ImageItem{
			ID:      newImageID(),
			File:    &fileCopy,
			Preview: preview,
		})
	}

	// One atomic replacement: observers never see a half-applied batch.
	m.items = newItems
	m.failed = failed

	if m.disposed {
		return
	}
	m.notifyChanged()
	m.emitBatchFeedback(errMessages, skipped, duplicates)
	if m.opts.OnValidate != nil {
		m.opts.OnValidate("gallery")
	}
}

func isDuplicateIn(file File, items []ImageItem) bool {
	key := file.dedupeKey()
	for _, item := range items {
		if item.File != nil && item.File.dedupeKey() == key {
			return true
		}
	}
	return false
}

func (m *Manager) rejectionMessage(file File, reason FailureReason) string {
	switch reason {
	case ReasonTooLarge:
		return m.opts.Translate("gallery.fileTooLarge", map[string]any{
			"name": file.Name,
			"size": fmt.Sprintf("%.2f", float64(file.Size)/float64(mb)),
			"max":  m.opts.MaxFileSizeBytes / mb,
		})
	default:
		return m.opts.Translate("gallery.invalidFileType", map[string]any{
			"name":  file.Name,
			"types": strings.Join(m.opts.AllowedExtensions, ", "),
		})
	}
}

// emitBatchFeedback collapses all batch outcomes into at most one
// notification. Errors (first three, then "+N more") outrank the
// combined skip/duplicate warning.
func (m *Manager) emitBatchFeedback(errMessages []string, skipped, duplicates int) {
	var warnings []string
	if skipped > 0 {
		warnings = append(warnings, m.opts.Translate("gallery.someImagesSkipped", map[string]any{
			"skipped": skipped,
			"max":     m.opts.MaxImages,
		}))
	}
	if duplicates > 0 {
		warnings = append(warnings, m.opts.Translate("gallery.duplicatesSkipped", map[string]any{
			"count": duplicates,
		}))
	}

	if len(errMessages) > 0 {
		display := errMessages
		if len(display) > 3 {
			display = display[:3]
			display = append(display, m.opts.Translate("gallery.andMoreErrors", map[string]any{
				"count": len(errMessages) - 3,
			}))
		}
		message := strings.Join(display, "\n")
		if len(warnings) > 0 {
			message += "\n\n" + strings.Join(warnings, " ")
		}
		m.opts.Notifier.Error(message)
		return
	}
	if len(warnings) > 0 {
		m.opts.Notifier.Warning(strings.Join(warnings, " "))
	}
}

// RemoveImage removes the item with the given stable ID. The locally
// minted preview is not released here; it is parked in the bounded
// pending-revocation queue so a still-rendered element keeps working.
func (m *Manager) RemoveImage(id string) {
	index := -1
	for i, item := range m.items {
		if item.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return
	}

	item := m.items[index]
	if !item.IsExisting && strings.HasPrefix(item.Preview, PreviewPrefix) {
		m.pending.push(item.Preview, m.previews.Revoke)
	}

	newItems := make([]ImageItem, 0, len(m.items)-1)
	newItems = append(newItems, m.items[:index]...)
	newItems = append(newItems, m.items[index+1:]...)
	m.items = newItems

	m.notifyChanged()
	if m.opts.OnForgetError != nil {
		m.opts.OnForgetError("gallery")
	}
}

// OnImageReorder replaces the item list with the order produced by a
// drag-reorder collaborator. The input is copied defensively; the
// collaborator mutates its array before emitting, so its reference
// cannot be trusted to stay stable.
func (m *Manager) OnImageReorder(newOrder []ImageItem) {
	copied := make([]ImageItem, len(newOrder))
	copy(copied, newOrder)
	m.items = copied
	m.notifyChanged()
}

// InitializeWithExisting seeds the gallery from already-uploaded
// images. Entries without a usable URL or failing the safety check are
// skipped with a log warning; excess beyond MaxImages is truncated.
func (m *Manager) InitializeWithExisting(existing []ExistingImage) {
	m.failed = nil
	m.pending.drain(m.previews.Revoke)

	limited := existing
	if len(existing) > m.opts.MaxImages {
		log.Warnf("[Gallery] got %d existing images, limiting to %d", len(existing), m.opts.MaxImages)
		limited = existing[:m.opts.MaxImages]
	}

	items := make([]ImageItem, 0, len(limited))
	for _, img := range limited {
		preview := img.URL
		if preview == "" {
			preview = img.Thumbnail
		}
		if preview == "" {
			log.Warnf("[Gallery] skipping existing image with no URL (id=%s)", img.ID)
			continue
		}
		if !isSafeImageURL(preview, m.opts.AllowedHosts) {
			log.Warnf("[Gallery] skipping existing image with unsafe URL: %s", preview)
			continue
		}
		id := newImageID()
		if img.ID != "" {
			id = "existing_" + img.ID
		}
		items = append(items, ImageItem{
			ID:         id,
			Preview:    preview,
			URL:        img.URL,
			IsExisting: true,
			MediaID:    img.ID,
		})
	}
	m.items = items
}

// ClearAll empties the gallery and releases every locally minted
// preview immediately, including those parked for deferred revocation.
func (m *Manager) ClearAll() {
	var toRevoke []string
	for _, item := range m.items {
		if !item.IsExisting && strings.HasPrefix(item.Preview, PreviewPrefix) {
			toRevoke = append(toRevoke, item.Preview)
		}
	}

	m.items = nil
	m.failed = nil
	m.notifyChanged()

	for _, ref := range toRevoke {
		m.previews.Revoke(ref)
	}
	m.pending.drain(m.previews.Revoke)
}

// Dispose permanently tears the manager down: every still-held local
// preview is released exactly once and all later ingestion no-ops.
func (m *Manager) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	for _, item := range m.items {
		if !item.IsExisting && strings.HasPrefix(item.Preview, PreviewPrefix) {
			m.previews.Revoke(item.Preview)
		}
	}
	m.pending.drain(m.previews.Revoke)
}

// DragEnter marks the dragging state when an external-file drag hovers
// the drop zone. Internal reorder drags must pass external=false and
// leave the state untouched.
func (m *Manager) DragEnter(external bool) {
	if !external || m.disposed {
		return
	}
	m.dragging = true
}

func (m *Manager) DragLeave(external bool) {
	if !external {
		return
	}
	m.dragging = false
}

// Drop ends an external drag and ingests the dropped files.
func (m *Manager) Drop(external bool, files []File) {
	if !external {
		return
	}
	m.dragging = false
	if len(files) > 0 {
		m.ProcessFiles(files)
	}
}

func (m *Manager) notifyChanged() {
	if m.opts.OnChange != nil {
		m.opts.OnChange()
	}
}

// Items returns a snapshot of the current gallery.
func (m *Manager) Items() []ImageItem {
	out := make([]ImageItem, len(m.items))
	copy(out, m.items)
	return out
}

// FailedFiles returns the rejects of the most recent batch.
func (m *Manager) FailedFiles() []FailedFile {
	out := make([]FailedFile, len(m.failed))
	copy(out, m.failed)
	return out
}

// NewFiles returns the raw files of non-existing items, in gallery
// order, for form submission.
func (m *Manager) NewFiles() []File {
	var out []File
	for _, item := range m.items {
		if !item.IsExisting && item.File != nil {
			out = append(out, *item.File)
		}
	}
	return out
}

func (m *Manager) CanAddMore() bool {
	return len(m.items) < m.opts.MaxImages
}

func (m *Manager) RemainingSlots() int {
	if remaining := m.opts.MaxImages - len(m.items); remaining > 0 {
		return remaining
	}
	return 0
}

func (m *Manager) IsProcessing() bool {
	return m.processing
}

func (m *Manager) IsDragging() bool {
	return m.dragging
}

func (m *Manager) IsDisposed() bool {
	return m.disposed
}

// PendingRevocations reports how many references await deferred
// release.
func (m *Manager) PendingRevocations() int {
	return m.pending.len()
}
