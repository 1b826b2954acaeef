package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/auth"
)

// identityFromRequest builds the verified caller identity from the JWT
// claims the Verifier middleware placed on the context. Services receive
// this explicitly and never read claims themselves.
func identityFromRequest(r *http.Request) (auth.Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	employeeID, _ := claims["employee_id"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return auth.Identity{
		EmployeeID: employeeID,
		IsAdmin:    isAdmin,
	}, nil
}
