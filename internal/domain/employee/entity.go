package employee

import "time"

// Employee is the externally-owned master-data entity. This backend only
// reads it: headcount for daily stats and name/email joined into admin
// attendance views. Management of the records lives elsewhere.
type Employee struct {
	ID        string
	FullName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
