// Package routes wires the application's HTTP surface together.
package routes

import (
	"net/http"
	"time"

	"bramble/app/controllers"
	"bramble/app/middleware"
	"bramble/app/repositories"
	"bramble/app/services"
	"bramble/app/views"

	"github.com/alexedwards/scs/badgerstore"
	"github.com/alexedwards/scs/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Setup builds the router, session manager, and all handlers over the
// given Badger DB. Sessions are persisted in the same DB as the content.
func Setup(db *badger.DB, logger *zap.Logger) (*mux.Router, error) {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, commentRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo)

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	sessionManager := scs.New()
	sessionManager.Store = badgerstore.New(db)
	sessionManager.Lifetime = 7 * 24 * time.Hour

	authController := controllers.NewAuthController(userService, sessionManager, renderer, logger)
	postController := controllers.NewPostController(postService, commentService, sessionManager, renderer, logger)
	pageController := controllers.NewPageController(sessionManager, renderer, logger)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(sessionManager.LoadAndSave)
	router.Use(middleware.LoadUser(sessionManager, userService))

	// Serve static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Public routes
	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/register", authController.RegisterForm).Methods("GET")
	router.HandleFunc("/register", authController.Register).Methods("POST")
	router.HandleFunc("/login", authController.LoginForm).Methods("GET")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", postController.CreateComment).Methods("POST")
	router.HandleFunc("/about", pageController.About).Methods("GET")
	router.HandleFunc("/contact", pageController.Contact).Methods("GET")

	// Admin-only routes
	admin := router.NewRoute().Subrouter()
	admin.Use(middleware.RequireAdmin(logger))
	admin.HandleFunc("/new-post", postController.NewForm).Methods("GET")
	admin.HandleFunc("/new-post", postController.Create).Methods("POST")
	admin.HandleFunc("/edit-post/{id:[0-9]+}", postController.EditForm).Methods("GET")
	admin.HandleFunc("/edit-post/{id:[0-9]+}", postController.Update).Methods("POST")
	admin.HandleFunc("/delete/{id:[0-9]+}", postController.Delete).Methods("GET")

	return router, nil
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
