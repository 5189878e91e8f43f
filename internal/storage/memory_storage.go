package storage

import (
	"errors"
	"fmt"
	"sync"
)

var ErrObjectNotFound = errors.New("object not found")

type Metadata struct {
	Filename string
	MimeType string
	Size     int64
}

type Object struct {
	Data []byte
	Metadata
}

// MemoryStorage keeps uploaded content in process memory, keyed by file ID.
// Nothing is evicted and nothing survives a restart.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]*Object
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string]*Object)}
}

// Save stores a private copy of data under id, replacing any previous object.
func (ms *MemoryStorage) Save(id string, data []byte, meta Metadata) error {
	if id == "" {
		return errors.New("storage: empty object id")
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.objects[id] = &Object{Data: buf, Metadata: meta}
	return nil
}

func (ms *MemoryStorage) Get(id string) (*Object, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	obj, ok := ms.objects[id]
	if !ok {
		return nil, fmt.Errorf("object with id %s: %w", id, ErrObjectNotFound)
	}

	data := make([]byte, len(obj.Data))
	copy(data, obj.Data)
	return &Object{Data: data, Metadata: obj.Metadata}, nil
}

// Delete reports whether an object was removed.
func (ms *MemoryStorage) Delete(id string) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.objects[id]; !ok {
		return false
	}
	delete(ms.objects, id)
	return true
}

func (ms *MemoryStorage) Exists(id string) bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	_, ok := ms.objects[id]
	return ok
}

// Stats returns the number of objects and their combined size in bytes.
func (ms *MemoryStorage) Stats() (count int, bytes int64) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	for _, obj := range ms.objects {
		bytes += int64(len(obj.Data))
	}
	return len(ms.objects), bytes
}
