package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in / clock-out errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedInYet   = errors.New("you have not clocked in today")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
