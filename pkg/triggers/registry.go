package triggers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/types"
)

var (
	factoriesMu sync.RWMutex
	factories   = map[string]types.TriggerFactory{}
)

// RegisterTriggerFactory registers a factory function for creating triggers
func RegisterTriggerFactory(name string, factory types.TriggerFactory) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "trigger name cannot be empty")
	}

	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	if _, exists := factories[name]; exists {
		return errors.Newf(errors.ErrInvalidInput, "trigger '%s' is already registered", name)
	}
	factories[name] = factory
	return nil
}

// NewTrigger creates a trigger by its registered name
func NewTrigger(name string, options map[string]interface{}) (types.Trigger, error) {
	factoriesMu.RLock()
	factory, ok := factories[name]
	factoriesMu.RUnlock()

	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "trigger factory not found: %s", name)
	}

	trigger, err := factory(options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to create %s trigger", name)
	}
	return trigger, nil
}

// RegisteredTriggers returns the registered trigger names in sorted order
func RegisteredTriggers() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustRegister(name string, factory types.TriggerFactory) {
	if err := RegisterTriggerFactory(name, factory); err != nil {
		panic(fmt.Sprintf("failed to register %s trigger: %v", name, err))
	}
}

func init() {
	mustRegister(DirectoryTriggerName, func(options map[string]interface{}) (types.Trigger, error) {
		return NewDirectoryTrigger(options)
	})
	mustRegister(FileNameTriggerName, func(options map[string]interface{}) (types.Trigger, error) {
		return newFileNameTrigger(options)
	})
	mustRegister(ExtensionTriggerName, func(options map[string]interface{}) (types.Trigger, error) {
		return NewExtensionTrigger(options)
	})
}
