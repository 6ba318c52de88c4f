package tenant

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

const (
	HeaderOrganizationID = "X-Organization-ID"
	HeaderUserID         = "X-User-ID"
)

type ctxKey struct{}

// Identity - организация и пользователь, от имени которых выполняется запрос.
type Identity struct {
	OrganizationID int64
	UserID         *int64
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// Middleware требует X-Organization-ID у каждого запроса; X-User-ID необязателен.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(HeaderOrganizationID)), 10, 64)
		if err != nil || orgID <= 0 {
			reject(w, "X-Organization-ID header is required")
			return
		}

		id := Identity{OrganizationID: orgID}

		if raw := strings.TrimSpace(r.Header.Get(HeaderUserID)); raw != "" {
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				reject(w, "X-User-ID header is invalid")
				return
			}
			id.UserID = &userID
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

func reject(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write([]byte(`{"type":"error","kind":"VALIDATION","message":"` + message + `"}`))
}
