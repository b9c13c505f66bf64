package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LeonardoGraham/tink/interfaces"
	"github.com/LeonardoGraham/tink/registry"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		entry   interfaces.KeyTypeEntry
		wantErr error
	}{
		{
			name:  "valid entry",
			entry: BuildKeyTypeEntry("TinkAead", "Aead", "AesGcmKey", 0, true),
		},
		{
			name:    "missing type_url",
			entry:   interfaces.KeyTypeEntry{PrimitiveName: "Aead", CatalogueName: "TinkAead"},
			wantErr: interfaces.ErrMissingTypeURL,
		},
		{
			name:    "missing primitive_name",
			entry:   interfaces.KeyTypeEntry{TypeURL: TypeURLPrefix + "AesGcmKey", CatalogueName: "TinkAead"},
			wantErr: interfaces.ErrMissingPrimitiveName,
		},
		{
			name:    "missing catalogue_name",
			entry:   interfaces.KeyTypeEntry{TypeURL: TypeURLPrefix + "AesGcmKey", PrimitiveName: "Aead"},
			wantErr: interfaces.ErrMissingCatalogueName,
		},
		{
			// All three missing: the type_url check runs first.
			name:    "empty entry reports type_url",
			entry:   interfaces.KeyTypeEntry{},
			wantErr: interfaces.ErrMissingTypeURL,
		},
		{
			// type_url present, other two missing: primitive_name wins.
			name:    "primitive_name before catalogue_name",
			entry:   interfaces.KeyTypeEntry{TypeURL: TypeURLPrefix + "AesGcmKey"},
			wantErr: interfaces.ErrMissingPrimitiveName,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&tc.entry)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestBuildKeyTypeEntry(t *testing.T) {
	entry := BuildKeyTypeEntry("SomeCatalogue", "Aead", "AesGcmKey", 0, true)

	assert.Equal(t, "type.googleapis.com/google.crypto.tink.AesGcmKey", entry.TypeURL)
	assert.Equal(t, "SomeCatalogue", entry.CatalogueName)
	assert.Equal(t, "Aead", entry.PrimitiveName)
	assert.Equal(t, uint32(0), entry.KeyManagerVersion)
	assert.True(t, entry.NewKeyAllowed)
	assert.NoError(t, Validate(&entry), "Built entries should pass validation")
}

func TestRegister_InvokesFamilyRegistration(t *testing.T) {
	cases := []struct {
		primitive string
		family    interfaces.PrimitiveFamily
	}{
		{"Mac", interfaces.FamilyMAC},
		{"Aead", interfaces.FamilyAEAD},
		{"DeterministicAead", interfaces.FamilyDeterministicAEAD},
		{"HybridEncrypt", interfaces.FamilyHybrid},
		{"HybridDecrypt", interfaces.FamilyHybrid},
		{"PublicKeySign", interfaces.FamilySignature},
		{"PublicKeyVerify", interfaces.FamilySignature},
		{"StreamingAead", interfaces.FamilyStreamingAEAD},
	}

	for _, tc := range cases {
		t.Run(tc.primitive, func(t *testing.T) {
			reg := new(registry.MockPrimitiveRegistry)
			reg.On("RegisterKeyManagers", tc.family).Return(nil).Once()
			reg.On("RegisterWrapper", tc.family).Return(nil).Once()

			c := New(reg, nil)
			entry := BuildKeyTypeEntry("SomeCatalogue", tc.primitive, "SomeKey", 0, true)
			err := c.Register(&interfaces.RegistryConfig{Entries: []interfaces.KeyTypeEntry{entry}})

			require.NoError(t, err)
			reg.AssertExpectations(t)
		})
	}
}

func TestRegister_AliasesShareFamily(t *testing.T) {
	for _, name := range []string{"HybridEncrypt", "hybriddecrypt"} {
		reg := new(registry.MockPrimitiveRegistry)
		reg.On("RegisterKeyManagers", interfaces.FamilyHybrid).Return(nil).Once()
		reg.On("RegisterWrapper", interfaces.FamilyHybrid).Return(nil).Once()

		entry := BuildKeyTypeEntry("TinkHybrid", name, "EciesAeadHkdfPrivateKey", 0, true)
		err := New(reg, nil).Register(&interfaces.RegistryConfig{Entries: []interfaces.KeyTypeEntry{entry}})

		require.NoError(t, err, "Registering %q should succeed", name)
		reg.AssertExpectations(t)
	}
}

func TestRegister_UnknownPrimitive(t *testing.T) {
	reg := new(registry.MockPrimitiveRegistry)

	entry := BuildKeyTypeEntry("CustomCatalogue", "CustomMac", "CustomMacKey", 0, true)
	err := New(reg, nil).Register(&interfaces.RegistryConfig{Entries: []interfaces.KeyTypeEntry{entry}})

	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrUnknownPrimitive)
	assert.Contains(t, err.Error(), "CustomMac")
	assert.Contains(t, err.Error(), "directly", "Error should point at the direct registration API")
	reg.AssertNotCalled(t, "RegisterKeyManagers", mock.Anything)
	reg.AssertNotCalled(t, "RegisterWrapper", mock.Anything)
}

func TestRegister_AbortsOnDelegateFailure(t *testing.T) {
	cause := errors.New("catalogue corrupted")

	reg := new(registry.MockPrimitiveRegistry)
	reg.On("RegisterKeyManagers", interfaces.FamilyMAC).Return(nil).Once()
	reg.On("RegisterWrapper", interfaces.FamilyMAC).Return(nil).Once()
	reg.On("RegisterKeyManagers", interfaces.FamilyAEAD).Return(cause).Once()

	cfg := &interfaces.RegistryConfig{Entries: []interfaces.KeyTypeEntry{
		BuildKeyTypeEntry("TinkMac", "Mac", "HmacKey", 0, true),
		BuildKeyTypeEntry("TinkAead", "Aead", "AesGcmKey", 0, true),
		BuildKeyTypeEntry("TinkStreamingAead", "StreamingAead", "AesGcmHkdfStreamingKey", 0, true),
	}}
	err := New(reg, nil).Register(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause, "Delegate failure should be propagated unchanged")
	assert.Contains(t, err.Error(), "entry 1", "Error should name the failing entry")

	// The failing entry's wrapper step and the third entry never run.
	reg.AssertNotCalled(t, "RegisterWrapper", interfaces.FamilyAEAD)
	reg.AssertNotCalled(t, "RegisterKeyManagers", interfaces.FamilyStreamingAEAD)
	reg.AssertExpectations(t)
}

func TestRegister_AbortsOnWrapperFailure(t *testing.T) {
	cause := errors.New("wrapper store unavailable")

	reg := new(registry.MockPrimitiveRegistry)
	reg.On("RegisterKeyManagers", interfaces.FamilySignature).Return(nil).Once()
	reg.On("RegisterWrapper", interfaces.FamilySignature).Return(cause).Once()

	cfg := &interfaces.RegistryConfig{Entries: []interfaces.KeyTypeEntry{
		BuildKeyTypeEntry("TinkSignature", "PublicKeySign", "EcdsaPrivateKey", 0, true),
		BuildKeyTypeEntry("TinkMac", "Mac", "HmacKey", 0, true),
	}}
	err := New(reg, nil).Register(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "wrapper registration")
	reg.AssertNotCalled(t, "RegisterKeyManagers", interfaces.FamilyMAC)
	reg.AssertExpectations(t)
}

func TestRegister_EmptyConfig(t *testing.T) {
	reg := new(registry.MockPrimitiveRegistry)
	assert.NoError(t, New(reg, nil).Register(&interfaces.RegistryConfig{}))
	reg.AssertNotCalled(t, "RegisterKeyManagers", mock.Anything)
}

func TestRegisterWrapper_Direct(t *testing.T) {
	reg := registry.New()
	c := New(reg, nil)

	// Works without any prior Register call or descriptor construction.
	err := c.RegisterWrapper("aead")
	require.NoError(t, err)
	assert.True(t, reg.WrapperRegistered(interfaces.FamilyAEAD))
	assert.False(t, reg.WrapperRegistered(interfaces.FamilyMAC))

	err = c.RegisterWrapper("PublicKeyVerify")
	require.NoError(t, err, "Matching should be case-insensitive")
	assert.True(t, reg.WrapperRegistered(interfaces.FamilySignature))

	err = c.RegisterWrapper("CustomMac")
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrUnknownPrimitive)
}

// TestRegister_BatchRetry pins the recovery path: a batch that fails midway
// leaves its prefix registered, and re-running the fixed batch succeeds.
func TestRegister_BatchRetry(t *testing.T) {
	reg := registry.New()
	c := New(reg, nil)

	bad := &interfaces.RegistryConfig{Entries: []interfaces.KeyTypeEntry{
		BuildKeyTypeEntry("TinkMac", "Mac", "HmacKey", 0, true),
		BuildKeyTypeEntry("CustomCatalogue", "CustomMac", "CustomMacKey", 0, true),
	}}
	err := c.Register(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrUnknownPrimitive)
	assert.True(t, reg.WrapperRegistered(interfaces.FamilyMAC), "First entry should have taken effect")

	fixed := &interfaces.RegistryConfig{Entries: []interfaces.KeyTypeEntry{
		BuildKeyTypeEntry("TinkMac", "Mac", "HmacKey", 0, true),
		BuildKeyTypeEntry("TinkAead", "Aead", "AesGcmKey", 0, true),
	}}
	err = c.Register(fixed)
	require.NoError(t, err, "Re-running the whole fixed batch should succeed")
	assert.True(t, reg.WrapperRegistered(interfaces.FamilyMAC))
	assert.True(t, reg.WrapperRegistered(interfaces.FamilyAEAD))
}

func TestRegister_GlobalConvenience(t *testing.T) {
	err := RegisterWrapper("mac")
	require.NoError(t, err)
	assert.True(t, registry.Global().WrapperRegistered(interfaces.FamilyMAC))

	err = Register(&interfaces.RegistryConfig{Entries: []interfaces.KeyTypeEntry{
		BuildKeyTypeEntry("TinkDeterministicAead", "DeterministicAead", "AesSivKey", 0, true),
	}})
	require.NoError(t, err)
	assert.True(t, registry.Global().WrapperRegistered(interfaces.FamilyDeterministicAEAD))
}
