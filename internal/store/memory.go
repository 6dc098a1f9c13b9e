package store

import "context"

// MemoryStore is a map-backed RecordStore used as a test double and for
// throwaway sessions. It intentionally mirrors SQLiteStore semantics:
// absent keys read as (nil, nil) and Set replaces wholesale.
type MemoryStore struct {
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.records[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	delete(s.records, key)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) (map[string][]byte, error) {
	result := make(map[string][]byte, len(s.records))
	for k, v := range s.records {
		result[k] = append([]byte(nil), v...)
	}
	return result, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.records = make(map[string][]byte)
	return nil
}
