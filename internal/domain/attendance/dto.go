package attendance

import (
	"strings"

	"github.com/staffhub-id/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeEmail *string `json:"employee_email,omitempty"`
	Date          string  `json:"date"`
	ClockIn       *string `json:"clock_in"`
	ClockOut      *string `json:"clock_out"`
	Status        string  `json:"status"`
	TotalHours    *string `json:"total_hours"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// UpdateAttendanceRequest is the admin correction payload. Omitted or
// empty fields keep the stored value; supplied fields overwrite it. No
// cross-field ordering is enforced, so a clock_out before clock_in is
// accepted as-is.
type UpdateAttendanceRequest struct {
	ID         string  `json:"-"`
	Status     *string `json:"status,omitempty"`
	ClockIn    *string `json:"clock_in,omitempty"`    // HH:MM or HH:MM:SS
	ClockOut   *string `json:"clock_out,omitempty"`   // HH:MM or HH:MM:SS
	TotalHours *string `json:"total_hours,omitempty"` // free-form, e.g. "8h 30m"
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != nil && *r.Status != "" {
		if !validator.IsInSlice(strings.ToLower(*r.Status), ValidStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: on_time, late, absent, permit, sick_leave",
			})
		}
	}

	if r.ClockIn != nil && *r.ClockIn != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.ClockIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be in HH:MM format",
			})
		}
	}

	if r.ClockOut != nil && *r.ClockOut != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.ClockOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	// Search & Filter
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, employee_name, clock_in, clock_out, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validatePagination(&f.Page, &f.Limit)...)

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, ValidStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: on_time, late, absent, permit, sick_leave",
			})
		}
	}

	errs = append(errs, validateDateFields(map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	})...)

	if f.SortBy != "" {
		validSortFields := []string{"date", "employee_name", "clock_in", "clock_out", "status"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, employee_name, clock_in, clock_out, status",
			})
		}
	} else {
		f.SortBy = "date"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyAttendanceFilter struct {
	// Search & Filter (no employee filters)
	Date      *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, clock_in, clock_out, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validatePagination(&f.Page, &f.Limit)...)

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, ValidStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: on_time, late, absent, permit, sick_leave",
			})
		}
	}

	errs = append(errs, validateDateFields(map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	})...)

	if f.SortBy != "" {
		validSortFields := []string{"date", "clock_in", "clock_out", "status"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, clock_in, clock_out, status",
			})
		}
	} else {
		f.SortBy = "date"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validatePagination(page, limit *int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if *page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if *page == 0 {
		*page = 1
	}

	if *limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if *limit == 0 {
		*limit = 20
	}
	if *limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	return errs
}

func validateDateFields(fields map[string]*string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for field, value := range fields {
		if value == nil || *value == "" {
			continue
		}
		if _, valid := validator.IsValidDate(*value); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}
	return errs
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
