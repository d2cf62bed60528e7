package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
)

// MemoryStore in-memory хранилище расписаний врачей
type MemoryStore struct {
	mu        sync.RWMutex
	schedules map[string]*domain.DoctorSchedule
	nextID    int64
}

// NewMemoryStore создает пустое in-memory хранилище расписаний
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		schedules: make(map[string]*domain.DoctorSchedule),
		nextID:    1,
	}
}

// GetByDoctorID получает расписание врача
// Возвращает ErrScheduleNotFound, если расписание не настроено
func (s *MemoryStore) GetByDoctorID(_ context.Context, doctorID string) (*domain.DoctorSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sched, ok := s.schedules[doctorID]
	if !ok {
		return nil, ErrScheduleNotFound
	}

	return copySchedule(sched), nil
}

// Upsert создает или заменяет расписание врача
func (s *MemoryStore) Upsert(_ context.Context, sched *domain.DoctorSchedule) (*domain.DoctorSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	existing, ok := s.schedules[sched.DoctorID]
	if ok {
		sched.ID = existing.ID
		sched.CreatedAt = existing.CreatedAt
	} else {
		sched.ID = s.nextID
		s.nextID++
		sched.CreatedAt = now
	}
	sched.UpdatedAt = now

	s.schedules[sched.DoctorID] = copySchedule(sched)
	return copySchedule(sched), nil
}

func copySchedule(sched *domain.DoctorSchedule) *domain.DoctorSchedule {
	c := *sched
	c.SlotTimes = append([]string(nil), sched.SlotTimes...)
	return &c
}
