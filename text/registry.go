package text

import (
	"fmt"
	"strings"
	"sync"

	gotextfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Built-in family names.
const (
	// FamilyAhem selects FixedFace.
	FamilyAhem = "ahem"
	// FamilyGo selects the Go Regular font through x/image/font/opentype.
	FamilyGo = "go"
	// FamilyGoShaped selects the Go Regular font shaped with go-text/typesetting.
	FamilyGoShaped = "go-shaped"
)

// FaceFactory creates a face of a family at a pixel size.
type FaceFactory func(size float64) (Face, error)

type faceKey struct {
	family string
	size   float64
}

// Registry maps family names to face factories and caches created faces.
// Family lookup is case-insensitive. Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FaceFactory
	faces     map[faceKey]Face
	fallback  string
}

// NewRegistry creates an empty registry with no fallback family.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FaceFactory),
		faces:     make(map[faceKey]Face),
	}
}

// Register adds or replaces the factory for a family.
func (r *Registry) Register(family string, f FaceFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[strings.ToLower(family)] = f
	for k := range r.faces {
		if k.family == strings.ToLower(family) {
			delete(r.faces, k)
		}
	}
}

// SetFallback sets the family used when none of the requested families is
// registered.
func (r *Registry) SetFallback(family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = strings.ToLower(family)
}

// Face returns a face for the first registered family in families, falling
// back to the registry fallback.
func (r *Registry) Face(families []string, size float64) (Face, error) {
	if !validSize(size) {
		return nil, ErrInvalidSize
	}
	r.mu.RLock()
	name := ""
	for _, fam := range families {
		fam = strings.ToLower(strings.Trim(strings.TrimSpace(fam), `"'`))
		if _, ok := r.factories[fam]; ok {
			name = fam
			break
		}
	}
	if name == "" {
		name = r.fallback
	}
	factory, ok := r.factories[name]
	face, cached := r.faces[faceKey{name, size}]
	r.mu.RUnlock()

	if cached {
		return face, nil
	}
	if !ok {
		return nil, &UnknownFamilyError{Family: strings.Join(families, ",")}
	}
	face, err := factory(size)
	if err != nil {
		return nil, fmt.Errorf("text: create %s face: %w", name, err)
	}

	r.mu.Lock()
	r.faces[faceKey{name, size}] = face
	r.mu.Unlock()
	return face, nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry with the built-in families:
// "ahem", "go" (also "sans-serif", "serif", "monospace") and "go-shaped".
// The fallback family is "go".
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newBuiltinRegistry()
	})
	return defaultRegistry
}

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register(FamilyAhem, func(size float64) (Face, error) {
		return NewFixedFace(size)
	})

	var (
		otOnce sync.Once
		otFont *opentype.Font
		otErr  error
	)
	goFace := func(size float64) (Face, error) {
		otOnce.Do(func() { otFont, otErr = ParseOpenType(goregular.TTF) })
		if otErr != nil {
			return nil, otErr
		}
		return NewOpenTypeFace(FamilyGo, otFont, size)
	}
	for _, fam := range []string{FamilyGo, "sans-serif", "serif", "monospace"} {
		r.Register(fam, goFace)
	}

	var (
		shOnce sync.Once
		shFont *gotextfont.Font
		shErr  error
	)
	r.Register(FamilyGoShaped, func(size float64) (Face, error) {
		shOnce.Do(func() { shFont, shErr = ParseShaped(goregular.TTF) })
		if shErr != nil {
			return nil, shErr
		}
		return NewShapedFace(FamilyGoShaped, shFont, size)
	})

	r.SetFallback(FamilyGo)
	return r
}
