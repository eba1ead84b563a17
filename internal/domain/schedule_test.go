package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffing/internal/domain"
)

func TestAvailabilityQueryValidate(t *testing.T) {
	valid := domain.AvailabilityQuery{
		StartDate:  domain.NewDate(2024, time.January, 1),
		EndDate:    domain.NewDate(2024, time.January, 3),
		StartTime:  domain.NewTimeOfDay(9, 0),
		EndTime:    domain.NewTimeOfDay(12, 0),
		Profession: "Enfermera",
		Region:     "Centro",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(q *domain.AvailabilityQuery)
		msg    string
	}{
		{"end date before start", func(q *domain.AvailabilityQuery) { q.EndDate = domain.NewDate(2023, time.December, 31) }, "end_date must be greater than or equal to start_date"},
		{"end time equals start", func(q *domain.AvailabilityQuery) { q.EndTime = q.StartTime }, "end_time must be greater than start_time"},
		{"end time before start", func(q *domain.AvailabilityQuery) { q.EndTime = domain.NewTimeOfDay(8, 0) }, "end_time must be greater than start_time"},
		{"missing start date", func(q *domain.AvailabilityQuery) { q.StartDate = domain.Date{} }, "start_date is required"},
		{"missing end time", func(q *domain.AvailabilityQuery) { q.EndTime = domain.TimeOfDay{} }, "end_time is required"},
		{"missing profession", func(q *domain.AvailabilityQuery) { q.Profession = "" }, "profession is required"},
		{"blank region", func(q *domain.AvailabilityQuery) { q.Region = "   " }, "region is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.mutate(&q)
			err := q.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Equal(t, tt.msg, err.Error())
		})
	}

	t.Run("same day range is valid", func(t *testing.T) {
		q := valid
		q.EndDate = q.StartDate
		assert.NoError(t, q.Validate())
	})

	t.Run("labels may contain digits", func(t *testing.T) {
		q := valid
		q.Region = "Zona 1"
		q.Profession = "Auxiliar 2"
		assert.NoError(t, q.Validate())
	})
}

func TestScheduleRequestQuery(t *testing.T) {
	professionalID := int64(5)
	req := domain.ScheduleRequest{
		OrderID:        1,
		StartDate:      domain.NewDate(2024, time.January, 1),
		EndDate:        domain.NewDate(2024, time.January, 5),
		StartTime:      domain.NewTimeOfDay(8, 0),
		EndTime:        domain.NewTimeOfDay(9, 0),
		Profession:     "Enfermera",
		Region:         "Centro",
		Weekdays:       domain.WeekdaySet{domain.Monday},
		ProfessionalID: &professionalID,
	}
	require.NoError(t, req.Validate())

	q := req.Query()
	assert.Equal(t, req.StartDate, q.StartDate)
	assert.Equal(t, req.EndDate, q.EndDate)
	assert.Equal(t, req.StartTime, q.StartTime)
	assert.Equal(t, req.EndTime, q.EndTime)
	assert.Equal(t, "Enfermera", q.Profession)
	assert.Equal(t, "Centro", q.Region)
}

func TestProfessionalMatches(t *testing.T) {
	p := domain.Professional{ID: 1, FullName: "Ana Gómez", Profession: "Enfermera", Region: "Centro"}

	assert.True(t, p.Matches("enfermera", "centro"))
	assert.True(t, p.Matches("ENFERMERA", "Centro"))
	assert.False(t, p.Matches("Fisioterapeuta", "Centro"))
	assert.False(t, p.Matches("Enfermera", "Norte"))
}

func TestError(t *testing.T) {
	err := domain.NewError(domain.ErrNotFound, "order %d not found", 42)
	assert.Equal(t, "order 42 not found", err.Error())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, errors.Is(err, domain.ErrConflict))
}
