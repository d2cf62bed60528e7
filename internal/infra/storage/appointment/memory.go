package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
)

// MemoryStore in-memory хранилище записей на прием
// Единственный источник правды при driver = "memory": упорядоченный по
// вставке слайс, живущий до рестарта процесса. Все операции выполняются
// под одним мьютексом, поэтому check-then-insert в CreateChecked атомарен
// без внешнего менеджера транзакций.
type MemoryStore struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
}

// NewMemoryStore создает пустое in-memory хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		appointments: make([]*domain.Appointment, 0),
	}
}

// Create сохраняет новую запись без проверки слота
func (s *MemoryStore) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.append(appt)
	return copyAppointment(appt), nil
}

// CreateChecked атомарно проверяет слот и сохраняет запись
// Возвращает ErrSlotTaken, если слот занят не отмененной записью
func (s *MemoryStore) CreateChecked(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := domain.Slot{DoctorID: appt.DoctorID, Date: appt.Date, Time: appt.Time}
	if s.findActiveBySlot(slot) != nil {
		return nil, ErrSlotTaken
	}

	s.append(appt)
	return copyAppointment(appt), nil
}

// GetByID получает запись по ID
func (s *MemoryStore) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt := s.findByID(id)
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	return copyAppointment(appt), nil
}

// FindActiveBySlot ищет не отмененную запись, занимающую указанный слот
// Линейный проход в порядке вставки, возвращается первое совпадение
func (s *MemoryStore) FindActiveBySlot(_ context.Context, slot domain.Slot) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt := s.findActiveBySlot(slot)
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	return copyAppointment(appt), nil
}

// List получает записи с фильтрацией, в порядке вставки
func (s *MemoryStore) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range s.appointments {
		if filter.PatientID != nil && appt.PatientID != *filter.PatientID {
			continue
		}
		if filter.DoctorID != nil && appt.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		if filter.Date != nil && appt.Date != *filter.Date {
			continue
		}
		result = append(result, copyAppointment(appt))
	}

	return result, nil
}

// UpdateStatus обновляет статус записи
func (s *MemoryStore) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt := s.findByID(id)
	if appt == nil {
		return ErrAppointmentNotFound
	}

	appt.Status = status
	appt.UpdatedAt = at
	return nil
}

// Cancel отменяет запись с указанием причины
func (s *MemoryStore) Cancel(_ context.Context, id string, reason string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt := s.findByID(id)
	if appt == nil {
		return ErrAppointmentNotFound
	}

	appt.Status = domain.StatusCancelled
	appt.CancellationReason = &reason
	cancelledAt := at
	appt.CancelledAt = &cancelledAt
	appt.UpdatedAt = at
	return nil
}

// Reschedule переносит запись на новый слот
// Проверка конфликта выполняется вызывающей стороной до переноса
func (s *MemoryStore) Reschedule(_ context.Context, id string, date, timeToken string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt := s.findByID(id)
	if appt == nil {
		return ErrAppointmentNotFound
	}

	appt.Date = date
	appt.Time = timeToken
	appt.UpdatedAt = at
	return nil
}

func (s *MemoryStore) append(appt *domain.Appointment) {
	s.appointments = append(s.appointments, copyAppointment(appt))
}

func (s *MemoryStore) findByID(id string) *domain.Appointment {
	for _, appt := range s.appointments {
		if appt.ID == id {
			return appt
		}
	}
	return nil
}

func (s *MemoryStore) findActiveBySlot(slot domain.Slot) *domain.Appointment {
	for _, appt := range s.appointments {
		if appt.OccupiesSlot(slot) {
			return appt
		}
	}
	return nil
}

// copyAppointment возвращает копию записи, чтобы вызывающие не могли
// мутировать хранилище в обход его методов
func copyAppointment(appt *domain.Appointment) *domain.Appointment {
	c := *appt
	if appt.CancellationReason != nil {
		reason := *appt.CancellationReason
		c.CancellationReason = &reason
	}
	if appt.CancelledAt != nil {
		at := *appt.CancelledAt
		c.CancelledAt = &at
	}
	return &c
}
