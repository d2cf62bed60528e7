package book_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	apptRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/appointment"
	"github.com/medipoint/MP-AppointmentService/pkg/ptr"
	"github.com/medipoint/MP-AppointmentService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase() (*UseCase, *apptRepo.MemoryStore) {
	store := apptRepo.NewMemoryStore()
	uc := NewUseCase(store, txmanager.NewNop(), nopLogger{})
	return uc, store
}

func validRequest() *Request {
	return &Request{
		PatientID:            "user123",
		DoctorID:             "2",
		DoctorName:           "Dr. Michael Chen",
		DoctorSpecialization: "Cardiology",
		Date:                 "2025-08-20",
		Time:                 "2:30 PM",
		ConsultationFee:      ptr.Ptr(800.0),
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "user123", resp.PatientID)
	assert.Equal(t, "2", resp.DoctorID)
	assert.Equal(t, "2025-08-20", resp.Date)
	assert.Equal(t, "2:30 PM", resp.Time)
	assert.Equal(t, 800.0, resp.ConsultationFee)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.False(t, resp.UpdatedAt.IsZero())
}

func TestUseCase_Execute_Defaults(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.ConsultationInPerson), resp.ConsultationType)
	assert.Equal(t, "Regular consultation", resp.Reason)
	assert.Equal(t, "", resp.Notes)
}

func TestUseCase_Execute_ExplicitValuesKept(t *testing.T) {
	uc, _ := newTestUseCase()

	req := validRequest()
	req.ConsultationType = "video"
	req.Reason = "Follow-up visit"
	req.Notes = "bring previous reports"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "video", resp.ConsultationType)
	assert.Equal(t, "Follow-up visit", resp.Reason)
	assert.Equal(t, "bring previous reports", resp.Notes)
}

func TestUseCase_Execute_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		missing []string
	}{
		{
			name:    "missing patientId",
			mutate:  func(r *Request) { r.PatientID = "" },
			missing: []string{"patientId"},
		},
		{
			name:    "missing doctorId",
			mutate:  func(r *Request) { r.DoctorID = "" },
			missing: []string{"doctorId"},
		},
		{
			name:    "missing doctorName",
			mutate:  func(r *Request) { r.DoctorName = "" },
			missing: []string{"doctorName"},
		},
		{
			name:    "missing doctorSpecialization",
			mutate:  func(r *Request) { r.DoctorSpecialization = "" },
			missing: []string{"doctorSpecialization"},
		},
		{
			name:    "missing date",
			mutate:  func(r *Request) { r.Date = "" },
			missing: []string{"date"},
		},
		{
			name:    "missing time",
			mutate:  func(r *Request) { r.Time = "" },
			missing: []string{"time"},
		},
		{
			name:    "missing consultationFee",
			mutate:  func(r *Request) { r.ConsultationFee = nil },
			missing: []string{"consultationFee"},
		},
		{
			name: "all fields missing reported in order",
			mutate: func(r *Request) {
				*r = Request{}
			},
			missing: []string{
				"patientId", "doctorId", "doctorName",
				"doctorSpecialization", "date", "time", "consultationFee",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase()

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)

			vErr, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.missing, vErr.MissingFields)
		})
	}
}

func TestUseCase_Execute_ZeroFeeAllowed(t *testing.T) {
	uc, _ := newTestUseCase()

	req := validRequest()
	req.ConsultationFee = ptr.Ptr(0.0)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.ConsultationFee)
}

func TestUseCase_Execute_NegativeFeeRejected(t *testing.T) {
	uc, _ := newTestUseCase()

	req := validRequest()
	req.ConsultationFee = ptr.Ptr(-100.0)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_UnknownConsultationTypeRejected(t *testing.T) {
	uc, _ := newTestUseCase()

	req := validRequest()
	req.ConsultationType = "telepathy"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_SlotConflict(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestUseCase_Execute_CancelledSlotRebookable(t *testing.T) {
	uc, store := newTestUseCase()
	ctx := context.Background()

	first, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, store.Cancel(ctx, first.ID, "patient request", first.CreatedAt))

	second, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUseCase_Execute_UniqueIDs(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i, timeToken := range []string{"9:00 AM", "9:30 AM", "10:00 AM"} {
		req := validRequest()
		req.Time = timeToken

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err, "booking %d", i)
		assert.False(t, seen[resp.ID], "duplicate id %s", resp.ID)
		seen[resp.ID] = true
	}
}
