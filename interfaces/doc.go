// Package interfaces defines the core types and contracts for the primitive
// registration system, separating interface definitions from implementations.
//
// The package provides the contracts between the components of the system
// without including implementation details, allowing for:
//
//   - Clear separation of concerns
//   - Multiple implementations of the same interface
//   - Better testability through mock implementations
//   - Reduced coupling between components
//
// # Registration Types
//
//   - KeyTypeEntry: Describes one registrable key type (catalogue, primitive
//     name, type URL, key manager version, new-key policy)
//   - RegistryConfig: An ordered list of key type entries to register in one
//     call
//   - PrimitiveFamily: One of the fixed primitive kinds the system knows how
//     to register, with a case-insensitive parse function and an explicit
//     alias table
//
// # Registry Interfaces
//
//   - KeyManager: Understands keys of one key type, identified by type URL,
//     and produces primitive instances from them
//   - PrimitiveRegistry: The process-wide collaborator that performs the
//     actual key manager and primitive wrapper registrations per family
//
// # Errors
//
// The package declares the sentinel errors shared across components. Callers
// match them with errors.Is; implementations wrap them with context via
// fmt.Errorf and %w.
package interfaces
