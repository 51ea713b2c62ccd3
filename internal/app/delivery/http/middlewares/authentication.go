package middlewares

import (
	"errors"
	"net/http"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

var errBearerTokenMissing = errors.New("authorization header carries no bearer token")

// Authenticate resolves the Bearer token into the owner identity used by every
// authenticated route. The token subject is the identity.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestIDFromContext(r.Context())

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			m.Log.Info("Middlewares.Authenticate bearer token missing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errBearerTokenMissing))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errBearerTokenMissing))
			return
		}

		owner, err := utils.ParseIdentityJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate token rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := utils.SetOwnerIdentityToContext(r.Context(), owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
