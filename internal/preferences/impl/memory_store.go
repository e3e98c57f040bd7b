package impl

import "sync"

type MemoryStore struct {
	sync.RWMutex
	dict map[string]string
}

func (ms *MemoryStore) Get(key string) (string, bool, error) {
	ms.RLock()
	defer ms.RUnlock()
	value, found := ms.dict[key]
	return value, found, nil
}

func (ms *MemoryStore) Set(key, value string) error {
	ms.Lock()
	ms.dict[key] = value
	ms.Unlock()
	return nil
}
