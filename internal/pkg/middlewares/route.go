package middlewares

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouteTemplate возвращает шаблон маршрута mux ("/order-groups/{id}") или путь, если маршрут не найден.
func RouteTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
