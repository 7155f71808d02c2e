package handlers

import (
	"net/http"

	"github.com/upb/authgate/app"
	"github.com/upb/authgate/middleware"
	"github.com/upb/authgate/utils"
)

// CurrentUserResponse echoes the identity attached by the gate
type CurrentUserResponse struct {
	User middleware.Identity `json:"user"`
}

// GetCurrentUserHandler returns the decoded identity of the authenticated caller.
// It must be mounted behind RequireAuth.
func GetCurrentUserHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			_ = utils.WriteMessage(w, http.StatusUnauthorized, middleware.MessageNoToken)
			return
		}
		_ = utils.WriteOK(w, CurrentUserResponse{User: user})
	}
}
