package http

import (
	"log/slog"
	"net/http"

	"cattags/internal/delivery/http/controllers"
	"cattags/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(tagController *controllers.TagController) *http.ServeMux {
	mux := http.NewServeMux()

	// Saved tags
	mux.HandleFunc("GET /tags/tags", tagController.ListTags)
	mux.HandleFunc("GET /tags/available", tagController.ListAvailableTags)
	mux.HandleFunc("GET /tags", tagController.GetPicture)
	mux.HandleFunc("POST /tags", tagController.SaveTag)
	mux.HandleFunc("PUT /tags", tagController.UpdateTag)
	mux.HandleFunc("DELETE /tags", tagController.DeleteTag)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with CORS and request logging.
func NewHandler(logger *slog.Logger, allowedOrigins []string, tagController *controllers.TagController) http.Handler {
	return middleware.CORS(allowedOrigins, middleware.LoggingMiddleware(logger, NewRouter(tagController)))
}
