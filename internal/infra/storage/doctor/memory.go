package doctor

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
)

// MemoryStore in-memory справочник врачей
type MemoryStore struct {
	mu      sync.RWMutex
	doctors map[string]*domain.Doctor
}

// NewMemoryStore создает пустой in-memory справочник
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		doctors: make(map[string]*domain.Doctor),
	}
}

// Put добавляет или обновляет врача в справочнике
func (s *MemoryStore) Put(_ context.Context, doc *domain.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *doc
	s.doctors[doc.ID] = &c
	return nil
}

// GetByID получает врача по ID
func (s *MemoryStore) GetByID(_ context.Context, id string) (*domain.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.doctors[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}

	c := *doc
	return &c, nil
}

// List получает врачей с фильтрацией, отсортированных по имени
func (s *MemoryStore) List(_ context.Context, filter domain.DoctorsFilter) ([]*domain.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Doctor, 0, len(s.doctors))
	for _, doc := range s.doctors {
		if filter.Specialization != nil &&
			!strings.EqualFold(doc.Specialization, *filter.Specialization) {
			continue
		}
		if filter.Query != nil && !matchesQuery(doc, *filter.Query) {
			continue
		}

		c := *doc
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// matchesQuery проверяет совпадение поисковой строки с именем или
// специализацией врача (case-insensitive подстрока)
func matchesQuery(doc *domain.Doctor, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(doc.Name), q) ||
		strings.Contains(strings.ToLower(doc.Specialization), q)
}
