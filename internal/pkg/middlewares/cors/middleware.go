package cors

import (
	"net/http"

	"github.com/go-chi/cors"
	"tms/internal/pkg/middlewares/tenant"
)

// Middleware разрешает браузерные запросы с перечисленных origin; пустой список - с любых.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", tenant.HeaderOrganizationID, tenant.HeaderUserID},
		ExposedHeaders: []string{"Content-Disposition", "Retry-After"},
		MaxAge:         300,
	})
}
