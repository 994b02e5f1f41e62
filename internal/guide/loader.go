package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/parsa1021/tripguide/internal/storage"
)

// Loader acquires the guide document, network-first with a storage fallback.
// A successful fetch is persisted so a later offline start still has data.
type Loader struct {
	// Source is either an http(s) URL or a local file path.
	Source string
	Client *http.Client
	Store  *storage.Store
}

// NewLoader creates a loader for the given source.
func NewLoader(source string, store *storage.Store) *Loader {
	return &Loader{
		Source: source,
		Client: &http.Client{Timeout: 15 * time.Second},
		Store:  store,
	}
}

// Load returns the guide data. It tries the configured source first and, on
// failure, falls back to the last successfully loaded document in storage.
// fromCache reports whether the fallback was used. An error is returned only
// when both sources come up empty.
func (l *Loader) Load(ctx context.Context) (data *Data, fromCache bool, err error) {
	data, fetchErr := l.fetch(ctx)
	if fetchErr == nil {
		if err := data.Validate(); err != nil {
			return nil, false, fmt.Errorf("invalid guide data from %s: %w", l.Source, err)
		}
		if l.Store != nil {
			if err := l.Store.PutJSON(ctx, storage.KeyAppData, data); err != nil {
				log.Printf("warning: could not persist guide data: %v", err)
			}
		}
		return data, false, nil
	}

	log.Printf("warning: loading %s failed, trying stored copy: %v", l.Source, fetchErr)

	var cached Data
	if l.Store != nil && l.Store.GetJSON(ctx, storage.KeyAppData, &cached) {
		return &cached, true, nil
	}

	return nil, false, fmt.Errorf("loading guide data: %w (and no stored copy available)", fetchErr)
}

// fetch reads the document from the configured URL or file path.
func (l *Loader) fetch(ctx context.Context) (*Data, error) {
	var raw []byte

	if strings.HasPrefix(l.Source, "http://") || strings.HasPrefix(l.Source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := l.Client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: status %d", l.Source, resp.StatusCode)
		}
		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		raw, err = os.ReadFile(l.Source)
		if err != nil {
			return nil, err
		}
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing guide data: %w", err)
	}
	return &data, nil
}

// Validate checks that the document carries the required top-level sections.
func (d *Data) Validate() error {
	if len(d.Itinerary) == 0 {
		return fmt.Errorf("itinerary is required")
	}
	if len(d.Checklists) == 0 {
		return fmt.Errorf("checklists are required")
	}
	if d.Dates.Departure == "" && d.Dates.Meeting == "" {
		return fmt.Errorf("dates are required")
	}
	for i, day := range d.Itinerary {
		if day.Title == "" {
			return fmt.Errorf("itinerary[%d]: title is required", i)
		}
		if day.Memo != nil && day.Memo.Type != MemoTip && day.Memo.Type != MemoCaution {
			return fmt.Errorf("itinerary[%d]: invalid memo type %q", i, day.Memo.Type)
		}
	}
	return nil
}
