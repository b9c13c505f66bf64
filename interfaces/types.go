package interfaces

import "errors"

var (
	// ErrMissingTypeURL indicates a key type entry with an empty type URL.
	ErrMissingTypeURL = errors.New("missing type_url")

	// ErrMissingPrimitiveName indicates a key type entry with an empty
	// primitive name.
	ErrMissingPrimitiveName = errors.New("missing primitive_name")

	// ErrMissingCatalogueName indicates a key type entry with an empty
	// catalogue name.
	ErrMissingCatalogueName = errors.New("missing catalogue_name")

	// ErrUnknownPrimitive indicates a primitive name outside the fixed set
	// of families this system can register.
	ErrUnknownPrimitive = errors.New("unknown primitive")
)

// KeyTypeEntry describes a single registrable key type: which catalogue it
// belongs to, which primitive it implements, the type URL identifying its
// key proto, the minimal key manager version, and whether new keys of this
// type may still be generated.
//
// Entries are constructed by callers, validated on demand, and consumed
// read-only; they are never mutated after construction. JSON field names
// match the wire names of the registration configuration message.
type KeyTypeEntry struct {
	CatalogueName     string `json:"catalogue_name"`
	PrimitiveName     string `json:"primitive_name"`
	TypeURL           string `json:"type_url"`
	KeyManagerVersion uint32 `json:"key_manager_version"`
	NewKeyAllowed     bool   `json:"new_key_allowed"`
}

// RegistryConfig is an ordered list of key type entries representing
// everything to register in one call. The caller owns it; consumers never
// retain it past the call.
type RegistryConfig struct {
	Entries []KeyTypeEntry `json:"entry"`
}
