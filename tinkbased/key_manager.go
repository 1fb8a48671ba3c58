// Package tinkbased provides Tink integration for numeral tokenization.
// This file contains the KeyManager implementation that registers FF1 keys with Tink's registry.
package tinkbased

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/core/registry"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"
	"github.com/vdparikh/based"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// KeyTypeURL is the type URL for FF1 numeral tokenization keys in Tink's registry.
	KeyTypeURL = "type.googleapis.com/based.Ff1Key"

	defaultKeySize = 32
)

// KeyManager implements registry.KeyManager for FF1 keys.
//
// Keys are serialized as a google.protobuf.BytesValue holding the raw AES key.
// Key templates are serialized as a google.protobuf.UInt32Value holding the key size;
// an empty template value means AES-256.
type KeyManager struct {
	typeURL string
}

// NewKeyManager creates a new key manager.
func NewKeyManager() *KeyManager {
	return &KeyManager{
		typeURL: KeyTypeURL,
	}
}

// Primitive creates a *Primitive from the given serialized key.
func (km *KeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	key := new(wrapperspb.BytesValue)
	if err := proto.Unmarshal(serializedKey, key); err != nil {
		return nil, fmt.Errorf("failed to parse key: %w", err)
	}
	if err := validateKeySize(len(key.GetValue())); err != nil {
		return nil, err
	}

	based.Logger().Debug("created FF1 primitive", zap.Int("key_bytes", len(key.GetValue())))

	return &Primitive{key: key.GetValue()}, nil
}

// DoesSupport returns true if this KeyManager supports the given key type URL.
func (km *KeyManager) DoesSupport(typeURL string) bool {
	return typeURL == km.typeURL
}

// TypeURL returns the type URL of the keys managed by this KeyManager.
func (km *KeyManager) TypeURL() string {
	return km.typeURL
}

// NewKey generates a new random key according to the given key template.
func (km *KeyManager) NewKey(serializedKeyTemplate []byte) (proto.Message, error) {
	keySize, err := parseTemplate(serializedKeyTemplate)
	if err != nil {
		return nil, err
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}

	return wrapperspb.Bytes(key), nil
}

// NewKeyData creates a new KeyData from the given key template.
func (km *KeyManager) NewKeyData(serializedKeyTemplate []byte) (*tinkpb.KeyData, error) {
	key, err := km.NewKey(serializedKeyTemplate)
	if err != nil {
		return nil, err
	}

	value, err := proto.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize key: %w", err)
	}

	return &tinkpb.KeyData{
		TypeUrl:         km.typeURL,
		Value:           value,
		KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
	}, nil
}

var _ registry.KeyManager = (*KeyManager)(nil)

func parseTemplate(serialized []byte) (int, error) {
	format := new(wrapperspb.UInt32Value)
	if err := proto.Unmarshal(serialized, format); err != nil {
		return 0, fmt.Errorf("failed to parse key template: %w", err)
	}

	keySize := int(format.GetValue())
	if keySize == 0 {
		return defaultKeySize, nil
	}
	if err := validateKeySize(keySize); err != nil {
		return 0, fmt.Errorf("invalid key template: %w", err)
	}
	return keySize, nil
}

func validateKeySize(n int) error {
	if n != 16 && n != 24 && n != 32 {
		return fmt.Errorf("invalid key size: %d bytes (must be 16, 24, or 32)", n)
	}
	return nil
}

// KeyTemplate creates a key template for FF1 keys:
//
//	handle, err := keyset.NewHandle(tinkbased.KeyTemplate())
//
// The template generates AES-256 keys.
func KeyTemplate() *tinkpb.KeyTemplate {
	return KeyTemplateAES256()
}

// KeyTemplateAES128 creates a key template for FF1 with AES-128 (16 bytes).
func KeyTemplateAES128() *tinkpb.KeyTemplate {
	return keyTemplate(16)
}

// KeyTemplateAES192 creates a key template for FF1 with AES-192 (24 bytes).
func KeyTemplateAES192() *tinkpb.KeyTemplate {
	return keyTemplate(24)
}

// KeyTemplateAES256 creates a key template for FF1 with AES-256 (32 bytes).
func KeyTemplateAES256() *tinkpb.KeyTemplate {
	return keyTemplate(32)
}

func keyTemplate(keySize uint32) *tinkpb.KeyTemplate {
	value, err := proto.Marshal(wrapperspb.UInt32(keySize))
	if err != nil {
		panic(fmt.Sprintf("tinkbased: marshal key template: %v", err))
	}
	return &tinkpb.KeyTemplate{
		TypeUrl:          KeyTypeURL,
		Value:            value,
		OutputPrefixType: tinkpb.OutputPrefixType_RAW,
	}
}

// NewKeysetHandleFromKey creates a keyset handle from a raw key (e.g., from an HSM).
// The key must be 16, 24, or 32 bytes.
//
// Note: This creates an unencrypted keyset. In production, encrypt the keyset
// before storing it using keyset.Handle.Write with an AEAD.
func NewKeysetHandleFromKey(key []byte) (*keyset.Handle, error) {
	if err := validateKeySize(len(key)); err != nil {
		return nil, err
	}

	keyID, err := newKeyID()
	if err != nil {
		return nil, err
	}

	value, err := proto.Marshal(wrapperspb.Bytes(key))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize key: %w", err)
	}

	ks := &tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         KeyTypeURL,
				Value:           value,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			KeyId:            keyID,
			Status:           tinkpb.KeyStatusType_ENABLED,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}

	return insecurecleartextkeyset.Read(&keyset.MemReaderWriter{Keyset: ks})
}

// newKeyID returns a random non-zero key ID.
func newKeyID() (uint32, error) {
	buf := make([]byte, 4)
	for {
		if _, err := rand.Read(buf); err != nil {
			return 0, fmt.Errorf("failed to generate key ID: %w", err)
		}
		if id := binary.BigEndian.Uint32(buf); id != 0 {
			return id, nil
		}
	}
}
