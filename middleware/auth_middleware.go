package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/upb/authgate/auth"
	"github.com/upb/authgate/internal/observability"
	"github.com/upb/authgate/utils"
	"go.uber.org/zap"
)

// TokenVerifier defines the interface for verifying bearer tokens
type TokenVerifier interface {
	// Verify checks the token and returns its decoded payload
	Verify(ctx context.Context, token string) (jwt.MapClaims, error)
}

// AuthMiddleware provides authentication middleware functionality
type AuthMiddleware struct {
	verifier TokenVerifier
	logger   *zap.Logger
	metrics  *observability.AuthMetrics
}

// NewAuthMiddleware creates a new AuthMiddleware. metrics may be nil.
func NewAuthMiddleware(verifier TokenVerifier, logger *zap.Logger, metrics *observability.AuthMetrics) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// Authenticate decides whether r carries a valid bearer token. The verifier
// is called at most once and only when a credential was extracted.
func (m *AuthMiddleware) Authenticate(ctx context.Context, r *http.Request) Decision {
	requestID := GetRequestIDFromContext(ctx)

	token := extractBearerToken(r)
	if token == "" {
		m.logger.Warn("missing token",
			zap.String("request_id", requestID))
		m.metrics.RecordDecision(observability.OutcomeMissingCredential)
		return missingCredential()
	}

	claims, err := m.verifier.Verify(ctx, token)
	if err != nil {
		m.logger.Warn("token validation failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		m.metrics.RecordDecision(observability.OutcomeInvalidCredential)
		return invalidCredential()
	}

	m.logger.Debug("authentication successful",
		zap.String("request_id", requestID))
	m.metrics.RecordDecision(observability.OutcomeAccepted)

	return Proceed(auth.User(claims))
}

// RequireAuth is a middleware that requires a valid bearer token. Accepted
// requests reach next with the identity in context; rejected ones get a 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		decision := m.Authenticate(ctx, r)
		if !decision.Allowed() {
			_ = utils.WriteMessage(w, decision.Status(), decision.Message())
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(ctx, decision.Identity())))
	})
}

// extractBearerToken returns the second space-separated segment of the
// Authorization header. The scheme word is not checked.
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}
