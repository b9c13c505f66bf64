package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/atomic"

	"github.com/LeonardoGraham/tink/interfaces"
)

var (
	// ErrKeyManagerConflict indicates an attempt to register a different key
	// manager for a type URL that is already taken.
	ErrKeyManagerConflict = errors.New("registry: conflicting key manager")

	// ErrSealed indicates an attempt to modify the catalogues of a sealed
	// registry.
	ErrSealed = errors.New("registry: sealed registry")

	// ErrNoKeyManager indicates a lookup for a type URL with no registered
	// key manager.
	ErrNoKeyManager = errors.New("registry: no key manager registered")
)

// Constructor builds a key manager. Catalogue entries hold constructors
// rather than instances so a family's managers are only instantiated when
// the family is actually registered.
type Constructor func() interfaces.KeyManager

// Registry stores key managers by type URL and tracks which primitive
// families have their wrapper installed. It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	catalogues  map[interfaces.PrimitiveFamily][]Constructor
	keyManagers map[string]interfaces.KeyManager
	wrappers    map[interfaces.PrimitiveFamily]bool
	sealed      atomic.Bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		catalogues:  make(map[interfaces.PrimitiveFamily][]Constructor),
		keyManagers: make(map[string]interfaces.KeyManager),
		wrappers:    make(map[interfaces.PrimitiveFamily]bool),
	}
}

var global = New()

// Global returns the process-wide registry instance.
func Global() *Registry {
	return global
}

// Seal freezes the catalogues: further AddCatalogueEntry calls fail with
// ErrSealed. Idempotent. Key manager and wrapper registration remain
// available so registration batches can still be retried.
func (r *Registry) Seal() {
	r.sealed.Store(true)
}

// Sealed reports whether the catalogues are frozen.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// AddCatalogueEntry appends a key manager constructor to family's
// catalogue. Primitive implementations call this during their setup, before
// the registry is sealed.
func (r *Registry) AddCatalogueEntry(family interfaces.PrimitiveFamily, c Constructor) error {
	if r.Sealed() {
		return ErrSealed
	}
	if !family.Known() {
		return fmt.Errorf("%w: %q", interfaces.ErrUnknownPrimitive, string(family))
	}
	if c == nil {
		return errors.New("registry: nil key manager constructor")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalogues[family] = append(r.catalogues[family], c)
	return nil
}

// MustAddCatalogueEntry panics on error. Useful from init() blocks.
func (r *Registry) MustAddCatalogueEntry(family interfaces.PrimitiveFamily, c Constructor) {
	if err := r.AddCatalogueEntry(family, c); err != nil {
		panic(err)
	}
}

// RegisterKeyManager stores km under its type URL. Registering a manager of
// the same type for an occupied type URL is a no-op; a manager of a
// different type fails with ErrKeyManagerConflict.
func (r *Registry) RegisterKeyManager(km interfaces.KeyManager) error {
	if km == nil {
		return errors.New("registry: nil key manager")
	}
	typeURL := km.TypeURL()
	if typeURL == "" {
		return errors.New("registry: key manager has empty type URL")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.keyManagers[typeURL]; ok {
		if reflect.TypeOf(existing) == reflect.TypeOf(km) {
			return nil
		}
		return fmt.Errorf("%w: type URL %s already held by %T", ErrKeyManagerConflict, typeURL, existing)
	}
	r.keyManagers[typeURL] = km
	return nil
}

// RegisterKeyManagers instantiates and registers every key manager
// catalogued for family. Implements interfaces.PrimitiveRegistry.
func (r *Registry) RegisterKeyManagers(family interfaces.PrimitiveFamily) error {
	if !family.Known() {
		return fmt.Errorf("%w: %q", interfaces.ErrUnknownPrimitive, string(family))
	}

	r.mu.RLock()
	constructors := make([]Constructor, len(r.catalogues[family]))
	copy(constructors, r.catalogues[family])
	r.mu.RUnlock()

	for _, c := range constructors {
		if err := r.RegisterKeyManager(c()); err != nil {
			return fmt.Errorf("registering %s key managers: %w", family, err)
		}
	}
	return nil
}

// RegisterWrapper marks family's primitive wrapper as installed.
// Idempotent. Implements interfaces.PrimitiveRegistry.
func (r *Registry) RegisterWrapper(family interfaces.PrimitiveFamily) error {
	if !family.Known() {
		return fmt.Errorf("%w: %q", interfaces.ErrUnknownPrimitive, string(family))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.wrappers[family] = true
	return nil
}

// WrapperRegistered reports whether family's wrapper is installed.
func (r *Registry) WrapperRegistered(family interfaces.PrimitiveFamily) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.wrappers[family]
}

// KeyManagerFor returns the key manager registered under typeURL.
func (r *Registry) KeyManagerFor(typeURL string) (interfaces.KeyManager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	km, ok := r.keyManagers[typeURL]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoKeyManager, typeURL)
	}
	return km, nil
}

// TypeURLs returns the type URLs of all registered key managers, in no
// particular order.
func (r *Registry) TypeURLs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	urls := make([]string, 0, len(r.keyManagers))
	for u := range r.keyManagers {
		urls = append(urls, u)
	}
	return urls
}
