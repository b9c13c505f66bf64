package config

import (
	"fmt"
	"log/slog"

	"github.com/LeonardoGraham/tink/interfaces"
	"github.com/LeonardoGraham/tink/registry"
)

// TypeURLPrefix is the namespace under which every key proto type URL
// lives.
const TypeURLPrefix = "type.googleapis.com/google.crypto.tink."

// Config dispatches registration configurations to a primitive registry.
type Config struct {
	log      *slog.Logger
	registry interfaces.PrimitiveRegistry
}

// New creates a dispatcher bound to the given primitive registry. A nil
// logger falls back to slog.Default().
func New(reg interfaces.PrimitiveRegistry, log *slog.Logger) *Config {
	if log == nil {
		log = slog.Default()
	}
	return &Config{log: log, registry: reg}
}

// Validate checks that entry carries the fields required for registration.
// Checks run in a fixed order and the first missing field wins: type_url,
// then primitive_name, then catalogue_name, each reported with its own
// sentinel error.
//
// Validate does not check that the primitive name is known; that happens at
// registration time.
func Validate(entry *interfaces.KeyTypeEntry) error {
	if entry.TypeURL == "" {
		return interfaces.ErrMissingTypeURL
	}
	if entry.PrimitiveName == "" {
		return interfaces.ErrMissingPrimitiveName
	}
	if entry.CatalogueName == "" {
		return interfaces.ErrMissingCatalogueName
	}
	return nil
}

// BuildKeyTypeEntry builds a key type entry whose type URL is derived by
// appending keyProtoName to the tink namespace prefix. The result passes
// Validate as long as the name arguments are non-empty.
func BuildKeyTypeEntry(catalogueName, primitiveName, keyProtoName string, keyManagerVersion uint32, newKeyAllowed bool) interfaces.KeyTypeEntry {
	return interfaces.KeyTypeEntry{
		CatalogueName:     catalogueName,
		PrimitiveName:     primitiveName,
		TypeURL:           TypeURLPrefix + keyProtoName,
		KeyManagerVersion: keyManagerVersion,
		NewKeyAllowed:     newKeyAllowed,
	}
}

// Register processes cfg's entries in order. For each entry it resolves the
// primitive name to its family, registers the family's key managers, and
// then registers the family's primitive wrapper. The first failure aborts
// the batch and is returned wrapped with the entry's index and name;
// earlier entries stay registered.
//
// Entries are not re-validated here; callers assembling entries
// programmatically should run Validate first. Entries naming a primitive
// outside the fixed family set fail rather than being skipped: non-standard
// primitives must be registered directly through the registry's key manager
// and wrapper APIs.
func (c *Config) Register(cfg *interfaces.RegistryConfig) error {
	for i, entry := range cfg.Entries {
		family, err := interfaces.ParsePrimitiveFamily(entry.PrimitiveName)
		if err != nil {
			return fmt.Errorf("entry %d: %w; register non-standard primitives directly via the registry's key manager API", i, err)
		}
		if err := c.registry.RegisterKeyManagers(family); err != nil {
			return fmt.Errorf("entry %d (%s): key manager registration: %w", i, entry.PrimitiveName, err)
		}
		if err := c.registry.RegisterWrapper(family); err != nil {
			return fmt.Errorf("entry %d (%s): wrapper registration: %w", i, entry.PrimitiveName, err)
		}
		c.log.Debug("Registered primitive",
			slog.String("primitive", entry.PrimitiveName),
			slog.String("family", family.String()),
			slog.String("typeURL", entry.TypeURL))
	}
	return nil
}

// RegisterWrapper registers only the primitive wrapper for the named
// primitive, for callers that manage key manager registration themselves.
// The name is matched case-insensitively against the fixed family set.
func (c *Config) RegisterWrapper(primitiveName string) error {
	family, err := interfaces.ParsePrimitiveFamily(primitiveName)
	if err != nil {
		return fmt.Errorf("cannot register primitive wrapper: %w; register wrappers for non-standard primitives directly via the registry's wrapper API", err)
	}
	return c.registry.RegisterWrapper(family)
}

// Register registers cfg against the process-wide registry.
func Register(cfg *interfaces.RegistryConfig) error {
	return New(registry.Global(), nil).Register(cfg)
}

// RegisterWrapper registers the named primitive's wrapper in the
// process-wide registry.
func RegisterWrapper(primitiveName string) error {
	return New(registry.Global(), nil).RegisterWrapper(primitiveName)
}
