// Package store persists each record collection as one JSON document.
// A collection is always read and written whole.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/observability"
)

// Gateway reads and writes named JSON documents. Load returns (nil, nil)
// when the document does not exist yet.
type Gateway interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, doc []byte) error
}

var validName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func checkName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("invalid collection name %q", name)
	}
	return nil
}

// LoadCollection decodes the named document. found is false when the
// document is absent, in which case the result is an empty slice. Any read
// or decode failure comes back as an *apperr.PersistenceError.
func LoadCollection[T any](ctx context.Context, gw Gateway, name string) (items []T, found bool, err error) {
	defer func() { observability.RecordPersistence("load", name, err) }()

	data, err := gw.Load(ctx, name)
	if err != nil {
		return []T{}, false, apperr.Persistence("load", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, data != nil, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, true, apperr.Persistence("decode", name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

// SaveCollection replaces the named document with items, two-space indented.
func SaveCollection[T any](ctx context.Context, gw Gateway, name string, items []T) (err error) {
	defer func() { observability.RecordPersistence("save", name, err) }()

	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return apperr.Persistence("encode", name, err)
	}
	if err := gw.Save(ctx, name, data); err != nil {
		return apperr.Persistence("save", name, err)
	}
	return nil
}
