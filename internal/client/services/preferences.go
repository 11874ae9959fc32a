package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/records"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

// MaxPhotoBytes caps the profile photo read by PhotoFromFile.
const MaxPhotoBytes = 2 << 20

type Preferences struct {
	mu    sync.Mutex
	store kv.Store
	log   logging.Logger
}

func NewPreferences(store kv.Store, log logging.Logger) *Preferences {
	return &Preferences{store: store, log: log}
}

// Theme returns the stored theme; light when unset or unreadable.
func (p *Preferences) Theme(ctx context.Context) models.Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme(ctx)
}

func (p *Preferences) theme(ctx context.Context) models.Theme {
	return load(ctx, p.store, p.log, records.KeyTheme, records.DecodeTheme, models.ThemeLight)
}

// ToggleTheme flips between light and dark and persists the result.
func (p *Preferences) ToggleTheme(ctx context.Context) (models.Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cur, err := loadForUpdate(ctx, p.store, p.log, records.KeyTheme, records.DecodeTheme, models.ThemeLight)
	if err != nil {
		return cur, err
	}
	next := models.ThemeDark
	if cur == models.ThemeDark {
		next = models.ThemeLight
	}
	if err := p.store.Set(ctx, records.KeyTheme, records.EncodeTheme(next)); err != nil {
		return cur, fmt.Errorf("save theme: %w", err)
	}
	return next, nil
}

// Photo returns the profile photo data URL, if any.
func (p *Preferences) Photo(ctx context.Context) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok, err := p.store.Get(ctx, records.KeyUserPhoto)
	if err != nil {
		p.log.Warn(ctx, "store read failed", "key", records.KeyUserPhoto, "error", err)
		return "", false
	}
	return v, ok && v != ""
}

// SetPhoto stores a data URL. Anything else is a validation error.
func (p *Preferences) SetPhoto(ctx context.Context, dataURL string) error {
	if !strings.HasPrefix(dataURL, "data:") {
		return fmt.Errorf("%w: photo must be a data URL", common.ErrValidation)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Set(ctx, records.KeyUserPhoto, dataURL); err != nil {
		return fmt.Errorf("save photo: %w", err)
	}
	return nil
}

// PhotoFromFile reads an image file and stores it as a base64 data URL.
func (p *Preferences) PhotoFromFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read photo: %w", err)
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil && fi.Size() > MaxPhotoBytes {
		return fmt.Errorf("%w: photo is larger than %d bytes", common.ErrValidation, MaxPhotoBytes)
	}
	// the stat check misses files that grow or report no size
	b, err := io.ReadAll(io.LimitReader(f, MaxPhotoBytes+1))
	if err != nil {
		return fmt.Errorf("read photo: %w", err)
	}
	if len(b) > MaxPhotoBytes {
		return fmt.Errorf("%w: photo is larger than %d bytes", common.ErrValidation, MaxPhotoBytes)
	}

	mime := http.DetectContentType(b)
	if !strings.HasPrefix(mime, "image/") {
		return fmt.Errorf("%w: %s is not an image (%s)", common.ErrValidation, path, mime)
	}
	return p.SetPhoto(ctx, "data:"+mime+";base64,"+base64.StdEncoding.EncodeToString(b))
}

func (p *Preferences) RemovePhoto(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Remove(ctx, records.KeyUserPhoto); err != nil {
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}

func (p *Preferences) SearchCount(ctx context.Context) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.searchCount(ctx)
}

func (p *Preferences) searchCount(ctx context.Context) int {
	return load(ctx, p.store, p.log, records.KeySearchCount, records.DecodeSearchCount, 0)
}

// IncrementSearchCount adds one to the persisted counter and returns it.
func (p *Preferences) IncrementSearchCount(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cur, err := loadForUpdate(ctx, p.store, p.log, records.KeySearchCount, records.DecodeSearchCount, 0)
	if err != nil {
		return cur, err
	}
	n := cur + 1
	if err := p.store.Set(ctx, records.KeySearchCount, records.EncodeSearchCount(n)); err != nil {
		return n - 1, fmt.Errorf("save search count: %w", err)
	}
	return n, nil
}
