package handlers

import (
	"net/http"

	"github.com/upb/authgate/app"
	"github.com/upb/authgate/utils"
	"go.uber.org/zap"
)

// Version is reported by the status endpoint
const Version = "0.1.0"

// HealthCheck returns a simple health check handler
func HealthCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ReadinessCheck reports ready only when the gate can accept tokens
func ReadinessCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]interface{}{}
		ready := true

		if deps.Verifier == nil || !deps.Verifier.HasSecret() {
			ready = false
			checks["jwt_secret"] = "missing"
		} else {
			checks["jwt_secret"] = "configured"
		}

		if deps.AuthMiddleware == nil {
			ready = false
			checks["auth_middleware"] = "not_initialized"
		} else {
			checks["auth_middleware"] = "initialized"
		}

		if !ready {
			deps.Logger.Warn("readiness check failed", zap.Any("checks", checks))
			_ = utils.WriteServiceUnavailable(w, "", checks)
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ready",
			"checks": checks,
		})
	}
}

// StatusHandler returns application status information
func StatusHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"version":     Version,
			"environment": deps.Config.Environment,
		})
	}
}
