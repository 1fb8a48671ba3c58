package tinkbased

import (
	"fmt"

	"github.com/google/tink/go/keyset"
	"github.com/vdparikh/based"
)

// Primitive is the primitive produced by KeyManager. It holds key material and
// becomes a tokenizer once bound to a numeral system and tweak.
type Primitive struct {
	key []byte
}

// Tokenizer binds the key to a numeral system and tweak.
func (p *Primitive) Tokenizer(ns *based.NumeralSystem, tweak []byte) (*based.FF1Tokenizer, error) {
	return based.NewFF1Tokenizer(ns, p.key, tweak)
}

// New creates a tokenizer for ns from the primary key of a Tink keyset handle.
// The KeyManager must be registered (see Register).
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkbased.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	tok, err := tinkbased.New(handle, based.Base62System, []byte("tenant-1234|order.id"))
//	if err != nil {
//	    return err
//	}
//	token, err := tok.Tokenize("4fTz09Ab")
func New(handle *keyset.Handle, ns *based.NumeralSystem, tweak []byte) (based.Tokenizer, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}
	if ns == nil {
		return nil, fmt.Errorf("numeral system cannot be nil")
	}

	primitives, err := handle.Primitives()
	if err != nil {
		return nil, fmt.Errorf("failed to get primitives from handle: %w", err)
	}

	primary := primitives.Primary
	if primary == nil {
		return nil, fmt.Errorf("no primary key found in keyset")
	}

	p, ok := primary.Primitive.(*Primitive)
	if !ok {
		return nil, fmt.Errorf("primary key %d is not an FF1 key (got %T)", primary.KeyID, primary.Primitive)
	}

	tok, err := p.Tokenizer(ns, tweak)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}
	return tok, nil
}
