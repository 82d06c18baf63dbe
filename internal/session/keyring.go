package session

import (
	"errors"
	"sync"

	"github.com/zalando/go-keyring"
)

// ErrKeyNotFound is returned by Keyring implementations when a slot is empty
var ErrKeyNotFound = errors.New("keyring: key not found")

// Keyring is the minimal key-value surface the credential store needs.
// Production uses the OS keychain/credential manager; tests use the
// in-memory implementation.
type Keyring interface {
	Set(service, key, value string) error
	Get(service, key string) (string, error)
	Delete(service, key string) error
}

type systemKeyring struct{}

// SystemKeyring returns a Keyring backed by the OS keychain/credential manager
func SystemKeyring() Keyring {
	return systemKeyring{}
}

func (systemKeyring) Set(service, key, value string) error {
	return keyring.Set(service, key, value)
}

func (systemKeyring) Get(service, key string) (string, error) {
	value, err := keyring.Get(service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

func (systemKeyring) Delete(service, key string) error {
	if err := keyring.Delete(service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrKeyNotFound
		}
		return err
	}
	return nil
}

// MemoryKeyring is an in-memory Keyring for tests
type MemoryKeyring struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewMemoryKeyring creates an empty in-memory keyring
func NewMemoryKeyring() *MemoryKeyring {
	return &MemoryKeyring{entries: make(map[string]string)}
}

func (m *MemoryKeyring) Set(service, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[service+"/"+key] = value
	return nil
}

func (m *MemoryKeyring) Get(service, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[service+"/"+key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryKeyring) Delete(service, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[service+"/"+key]; !ok {
		return ErrKeyNotFound
	}
	delete(m.entries, service+"/"+key)
	return nil
}

// Len returns the number of stored entries (test helper)
func (m *MemoryKeyring) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
