package tinkbased

import (
	"sync"

	"github.com/google/tink/go/core/registry"
	"github.com/vdparikh/based"
	"go.uber.org/zap"
)

var registerMu sync.Mutex

// Register registers the KeyManager with Tink's registry.
// It is safe to call multiple times and from multiple goroutines.
func Register() error {
	registerMu.Lock()
	defer registerMu.Unlock()

	// Already registered.
	if _, err := registry.GetKeyManager(KeyTypeURL); err == nil {
		return nil
	}

	if err := registry.RegisterKeyManager(NewKeyManager()); err != nil {
		return err
	}

	based.Logger().Debug("registered key manager", zap.String("type_url", KeyTypeURL))
	return nil
}
