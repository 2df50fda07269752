package imageio

import (
	"fmt"
	"strings"
	"sync"
)

// Format describes a registered image format plugin.
type Format struct {
	// Name is the canonical format name (e.g. "webp").
	Name string

	// Extensions lists file extensions handled by the format,
	// without the leading dot.
	Extensions []string

	// Detect reports whether the data prefix matches the format's
	// magic. It is called with at most the first 64 bytes of a file.
	Detect func(prefix []byte) bool

	// Open opens an in-memory encoded image as an Input.
	Open func(data []byte) (Input, error)
}

// sniffLen is the number of leading bytes handed to Detect.
const sniffLen = 64

// Registry manages the available format plugins.
type Registry struct {
	mu      sync.RWMutex
	formats []Format
}

var defaultRegistry = &Registry{}

// Register adds a format to the default registry.
func Register(f Format) {
	defaultRegistry.Register(f)
}

// Lookup retrieves a format by name or extension from the default registry.
func Lookup(nameOrExt string) (Format, error) {
	return defaultRegistry.Lookup(nameOrExt)
}

// Formats returns all formats registered in the default registry.
func Formats() []Format {
	return defaultRegistry.Formats()
}

// Open detects the format of in-memory encoded data and opens it
// using the default registry.
func Open(data []byte) (Input, error) {
	return defaultRegistry.Open(data)
}

// Register adds a format. Registering a name twice replaces the
// earlier entry.
func (r *Registry) Register(f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.formats {
		if r.formats[i].Name == f.Name {
			r.formats[i] = f
			return
		}
	}
	r.formats = append(r.formats, f)
}

// Lookup retrieves a format by name or extension.
func (r *Registry) Lookup(nameOrExt string) (Format, error) {
	key := strings.ToLower(strings.TrimPrefix(nameOrExt, "."))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.formats {
		if f.Name == key {
			return f, nil
		}
		for _, ext := range f.Extensions {
			if ext == key {
				return f, nil
			}
		}
	}
	return Format{}, fmt.Errorf("%w: %q", ErrFormatNotFound, nameOrExt)
}

// Formats returns all registered formats.
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, len(r.formats))
	copy(out, r.formats)
	return out
}

// Detect returns the format whose magic matches the data prefix.
func (r *Registry) Detect(data []byte) (Format, error) {
	prefix := data
	if len(prefix) > sniffLen {
		prefix = prefix[:sniffLen]
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.formats {
		if f.Detect != nil && f.Detect(prefix) {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("%w: unrecognized magic", ErrFormatNotFound)
}

// Open detects the format of in-memory encoded data and opens it.
func (r *Registry) Open(data []byte) (Input, error) {
	f, err := r.Detect(data)
	if err != nil {
		return nil, err
	}
	return f.Open(data)
}
