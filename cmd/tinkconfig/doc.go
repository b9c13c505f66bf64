// Package main (cmd/tinkconfig) is a command-line tool for working with
// primitive registration configurations.
//
// A registration configuration is a JSON document listing key type entries:
//
//	{
//	  "entry": [
//	    {
//	      "catalogue_name": "TinkAead",
//	      "primitive_name": "Aead",
//	      "type_url": "type.googleapis.com/google.crypto.tink.AesGcmKey",
//	      "key_manager_version": 0,
//	      "new_key_allowed": true
//	    }
//	  ]
//	}
//
// The tool supports three commands:
//
//   - validate: Check every entry of a configuration file for missing
//     required fields and unresolvable primitive names, without touching the
//     registry.
//
//   - apply: Validate a configuration file and register all of its entries
//     against the process-wide registry. A mid-batch failure leaves earlier
//     entries registered; re-running apply after fixing the file is safe
//     because registrations are idempotent.
//
//   - register-wrapper: Register only the primitive wrapper for a single
//     named primitive.
//
// Logging is configured through command-line flags (JSON output, debug
// level, per-run UID, service tag).
package main
