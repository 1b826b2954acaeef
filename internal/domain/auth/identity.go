package auth

// Identity is the verified caller handed to the core by the HTTP
// boundary. The core never digs into tokens or claims itself; every
// employee-scoped operation receives an Identity built by the boundary.
type Identity struct {
	EmployeeID string
	IsAdmin    bool
}
