// Package registry provides the process-wide primitive registry: the store
// of key managers keyed by type URL, the per-family catalogues feeding it,
// and the per-family primitive wrapper state.
//
// The registry implements the interfaces.PrimitiveRegistry contract consumed
// by the config package. Primitive implementations contribute key manager
// constructors to a family's catalogue, typically from init():
//
//	func init() {
//	    registry.Global().MustAddCatalogueEntry(interfaces.FamilyAEAD, newAESGCMKeyManager)
//	}
//
// Registering a family then instantiates and installs every catalogued
// manager for it and, separately, marks the family's wrapper as installed.
//
// # Idempotency
//
// All registration operations are idempotent. Re-registering a key manager
// of a type already held for its type URL is a no-op; registering a
// different manager for an occupied type URL fails with
// ErrKeyManagerConflict. Wrapper registration is a set-once flag. This lets
// callers retry a whole registration batch after fixing a failing entry
// without corrupting earlier, already-registered entries.
//
// # Sealing
//
// Once the process is fully configured, Seal() freezes the catalogues so no
// further constructors can be added. Key manager and wrapper registration
// stay available after sealing, since batch retries must keep working.
//
// All operations are safe for concurrent use.
package registry
