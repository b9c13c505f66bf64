package interfaces

import (
	"fmt"
	"sort"
	"strings"
)

// PrimitiveFamily identifies one of the fixed primitive kinds this system
// can register. The set is closed deliberately: names outside it are
// rejected rather than silently accepted.
type PrimitiveFamily string

const (
	FamilyMAC               PrimitiveFamily = "mac"
	FamilyAEAD              PrimitiveFamily = "aead"
	FamilyDeterministicAEAD PrimitiveFamily = "daead"
	FamilyHybrid            PrimitiveFamily = "hybrid"
	FamilySignature         PrimitiveFamily = "signature"
	FamilyStreamingAEAD     PrimitiveFamily = "streamingaead"
)

// primitiveFamilies maps lowercase primitive names to their family. Hybrid
// encryption and decryption register as one family, as do signing and
// verification.
var primitiveFamilies = map[string]PrimitiveFamily{
	"mac":               FamilyMAC,
	"aead":              FamilyAEAD,
	"deterministicaead": FamilyDeterministicAEAD,
	"hybridencrypt":     FamilyHybrid,
	"hybriddecrypt":     FamilyHybrid,
	"publickeysign":     FamilySignature,
	"publickeyverify":   FamilySignature,
	"streamingaead":     FamilyStreamingAEAD,
}

var knownFamilies = map[PrimitiveFamily]bool{
	FamilyMAC:               true,
	FamilyAEAD:              true,
	FamilyDeterministicAEAD: true,
	FamilyHybrid:            true,
	FamilySignature:         true,
	FamilyStreamingAEAD:     true,
}

// ParsePrimitiveFamily resolves a primitive name to its family. Matching is
// case-insensitive. Names outside the fixed set return ErrUnknownPrimitive.
func ParsePrimitiveFamily(name string) (PrimitiveFamily, error) {
	family, ok := primitiveFamilies[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPrimitive, name)
	}
	return family, nil
}

// Known reports whether f is one of the fixed primitive families.
func (f PrimitiveFamily) Known() bool {
	return knownFamilies[f]
}

// String returns the canonical lowercase family name.
func (f PrimitiveFamily) String() string {
	return string(f)
}

// PrimitiveNames returns every accepted primitive name in lexicographic
// order, aliases included. Useful for diagnostics and usage text.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitiveFamilies))
	for name := range primitiveFamilies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
