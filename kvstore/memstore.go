package kvstore

import (
	"bytes"
	"sort"
	"sync"
)

// MemStore is an in-memory, sorted-slice backed KVStore. It is single-writer
// multi-reader safe via an RWMutex, mirroring the ownership model spec §5
// describes for the real engine ("single writer, multi-reader between
// epochs"). Not a product storage engine — see package doc.
type MemStore struct {
	mu   sync.RWMutex
	keys [][]byte
	vals map[string][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{vals: make(map[string][]byte)}
}

func (m *MemStore) InsertEntry(key, value []byte) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, found := m.vals[string(key)]
	m.put(key, value)
	return prev, found, nil
}

func (m *MemStore) GetValue(key []byte) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vals[string(key)]
	return v, ok, nil
}

func (m *MemStore) FindByPrefix(prefix []byte) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := sort.Search(len(m.keys), func(i int) bool {
		return bytes.Compare(m.keys[i], prefix) >= 0
	})

	var out []Entry
	for i := start; i < len(m.keys); i++ {
		k := m.keys[i]
		if !bytes.HasPrefix(k, prefix) {
			break
		}
		out = append(out, Entry{Key: k, Value: m.vals[string(k)]})
	}
	return out, nil
}

// ApplyBatch applies every staged operation atomically: since MemStore holds
// a single exclusive lock for the whole call, a failure can only come from a
// programming error, never a partial write.
func (m *MemStore) ApplyBatch(b *Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, op := range b.ops {
		switch op.kind {
		case opPut:
			m.put(op.key, op.value)
		case opDelete:
			m.delete(op.key)
		}
	}
	return nil
}

// put assumes the caller holds m.mu.
func (m *MemStore) put(key, value []byte) {
	keyCopy := append([]byte(nil), key...)
	if _, exists := m.vals[string(key)]; !exists {
		i := sort.Search(len(m.keys), func(i int) bool {
			return bytes.Compare(m.keys[i], key) >= 0
		})
		m.keys = append(m.keys, nil)
		copy(m.keys[i+1:], m.keys[i:])
		m.keys[i] = keyCopy
	}
	m.vals[string(key)] = append([]byte(nil), value...)
}

// delete assumes the caller holds m.mu.
func (m *MemStore) delete(key []byte) {
	if _, exists := m.vals[string(key)]; !exists {
		return
	}
	delete(m.vals, string(key))
	i := sort.Search(len(m.keys), func(i int) bool {
		return bytes.Compare(m.keys[i], key) >= 0
	})
	if i < len(m.keys) && bytes.Equal(m.keys[i], key) {
		m.keys = append(m.keys[:i], m.keys[i+1:]...)
	}
}
