package domain

import (
	"time"

	"staffing/pkg/validator"
)

type ScheduleSlot struct {
	ID             int64     `json:"id"`
	OrderID        int64     `json:"order_id"`
	ProfessionalID int64     `json:"professional_id"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
}

func (s ScheduleSlot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

type AvailabilityQuery struct {
	StartDate  Date      `json:"start_date"`
	EndDate    Date      `json:"end_date"`
	StartTime  TimeOfDay `json:"start_time"`
	EndTime    TimeOfDay `json:"end_time"`
	Profession string    `json:"profession" binding:"required"`
	Region     string    `json:"region" binding:"required"`
}

func (q AvailabilityQuery) Validate() error {
	if err := validateWindow(q.StartDate, q.EndDate, q.StartTime, q.EndTime); err != nil {
		return err
	}
	return validateLabels(q.Profession, q.Region)
}

type ScheduleRequest struct {
	OrderID    int64      `json:"order_id" binding:"required"`
	StartDate  Date       `json:"start_date"`
	EndDate    Date       `json:"end_date"`
	StartTime  TimeOfDay  `json:"start_time"`
	EndTime    TimeOfDay  `json:"end_time"`
	Profession string     `json:"profession" binding:"required"`
	Region     string     `json:"region" binding:"required"`
	Weekdays   WeekdaySet `json:"weekdays,omitempty"`
	// ProfessionalID pins the assignment; nil or 0 picks the first available professional.
	ProfessionalID *int64 `json:"professional_id,omitempty"`
}

func (r ScheduleRequest) Validate() error {
	if r.OrderID <= 0 {
		return NewError(ErrValidation, "order_id is required")
	}
	if err := validateWindow(r.StartDate, r.EndDate, r.StartTime, r.EndTime); err != nil {
		return err
	}
	return validateLabels(r.Profession, r.Region)
}

// Query returns the availability query covering the request's window.
func (r ScheduleRequest) Query() AvailabilityQuery {
	return AvailabilityQuery{
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Profession: r.Profession,
		Region:     r.Region,
	}
}

type ScheduleResponse struct {
	CreatedSlots []ScheduleSlot `json:"created_slots"`
	Professional Professional   `json:"professional"`
	Order        Order          `json:"order"`
}

type ScheduleFilter struct {
	ProfessionalID *int64 `json:"professional_id"`
}

func validateWindow(startDate, endDate Date, startTime, endTime TimeOfDay) error {
	switch {
	case startDate.IsZero():
		return NewError(ErrValidation, "start_date is required")
	case endDate.IsZero():
		return NewError(ErrValidation, "end_date is required")
	case startTime.IsZero():
		return NewError(ErrValidation, "start_time is required")
	case endTime.IsZero():
		return NewError(ErrValidation, "end_time is required")
	case endDate.Before(startDate):
		return NewError(ErrValidation, "end_date must be greater than or equal to start_date")
	case !startTime.Before(endTime):
		return NewError(ErrValidation, "end_time must be greater than start_time")
	}
	return nil
}

func validateLabels(profession, region string) error {
	if !validator.ValidateLabel(profession) {
		return NewError(ErrValidation, "profession is required")
	}
	if !validator.ValidateLabel(region) {
		return NewError(ErrValidation, "region is required")
	}
	return nil
}
