// Package cache хранит результат запроса главной ленты под одним ключом.
// Записи живут фиксированное время от момента вставки; создание или удаление
// поста кеш не сбрасывает — только истечение срока или явный Clear.
package cache

import (
	"sync"
	"time"
)

// IndexKey — единственный ключ, под которым лежит главная лента.
const IndexKey = "index_page"

type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Clear()
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Memory — кеш в памяти процесса. Часы подменяемы, чтобы тесты не ждали
// реального истечения срока.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewMemoryWithClock создаёт кеш с подменными часами.
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     now,
	}
}

func (m *Memory) Get(key string) (interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}

	if m.now().After(e.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}

	return e.value, true
}

func (m *Memory) Set(key string, value interface{}, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]entry)
}
