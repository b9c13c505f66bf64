// Package config maps declarative registration configurations onto concrete
// key manager and primitive wrapper registrations in a primitive registry.
//
// A registration configuration is an ordered list of key type entries, each
// naming the primitive it implements. Register resolves every entry's
// primitive name, case-insensitively, to one of the fixed primitive
// families and invokes that family's key manager registration followed by
// its wrapper registration. The two steps are deliberately separate: "key
// managers exist" and "primitive usable via the registry" are individually
// retryable at the registry layer.
//
// Registration is not transactional. The first failing entry aborts the
// batch and is returned to the caller; entries registered before it stay
// registered. Because registry registrations are idempotent, the expected
// recovery is to fix the offending entry and re-run the whole batch.
//
// The registry is an injected dependency so tests can substitute a fake and
// verify call sequencing without cryptographic side effects:
//
//	c := config.New(registry.Global(), logger)
//	err := c.Register(&interfaces.RegistryConfig{Entries: entries})
//
// Package-level Register and RegisterWrapper bind to the process-wide
// registry for callers that want the global behavior.
package config
