package routes

import (
	"net/http"

	"blogly/handlers"
	"blogly/monitoring"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(userHandler *handlers.UserHandler, postHandler *handlers.PostHandler, tagHandler *handlers.TagHandler) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", userHandler.Home).Methods("GET")

	// User routes. The digit constraint makes non-numeric ids fall through
	// to the router's 404.
	router.HandleFunc("/users", userHandler.List).Methods("GET")
	router.HandleFunc("/users/new", userHandler.NewForm).Methods("GET")
	router.HandleFunc("/users/new", userHandler.Create).Methods("POST")
	router.HandleFunc("/users/{id:[0-9]+}", userHandler.Detail).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/edit", userHandler.EditForm).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/edit", userHandler.Update).Methods("POST")
	router.HandleFunc("/users/{id:[0-9]+}/delete", userHandler.Delete).Methods("POST")

	// Post routes
	router.HandleFunc("/users/{id:[0-9]+}/posts/new", postHandler.NewForm).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/posts/new", postHandler.Create).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}", postHandler.Detail).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}/edit", postHandler.EditForm).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}/edit", postHandler.Update).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/delete", postHandler.Delete).Methods("POST")

	// Tag routes
	router.HandleFunc("/tags", tagHandler.List).Methods("GET")
	router.HandleFunc("/tags/new", tagHandler.NewForm).Methods("GET")
	router.HandleFunc("/tags/new", tagHandler.Create).Methods("POST")
	router.HandleFunc("/tags/{id:[0-9]+}", tagHandler.Detail).Methods("GET")
	router.HandleFunc("/tags/{id:[0-9]+}/edit", tagHandler.EditForm).Methods("GET")
	router.HandleFunc("/tags/{id:[0-9]+}/edit", tagHandler.Update).Methods("POST")
	router.HandleFunc("/tags/{id:[0-9]+}/delete", tagHandler.Delete).Methods("POST")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return monitoring.InstrumentHandler(router)
}
