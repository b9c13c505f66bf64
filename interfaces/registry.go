package interfaces

// KeyManager understands keys of a specific key type: it can produce
// primitives for supported keys. A key type is identified by the global
// name of the protocol buffer holding the key material, given by the type
// URL. Implementations must be safe for concurrent use.
type KeyManager interface {
	// Primitive constructs a primitive instance for the key given in
	// serializedKey, which must be a serialized key proto handled by this
	// manager.
	Primitive(serializedKey []byte) (any, error)

	// DoesSupport reports whether this manager handles the key type
	// identified by typeURL.
	DoesSupport(typeURL string) bool

	// TypeURL returns the type URL of the key type this manager handles.
	TypeURL() string
}

// PrimitiveRegistry owns the process-wide registration state for primitive
// families. Implementations must be safe for concurrent use and idempotent:
// repeating a registration that already succeeded must neither fail nor
// corrupt state, so a caller may safely retry a whole registration batch
// after fixing a bad entry.
type PrimitiveRegistry interface {
	// RegisterKeyManagers registers every key manager catalogued for the
	// family.
	RegisterKeyManagers(family PrimitiveFamily) error

	// RegisterWrapper registers the primitive wrapper for the family,
	// letting a keyset of that family be used as a single primitive
	// instance.
	RegisterWrapper(family PrimitiveFamily) error
}
