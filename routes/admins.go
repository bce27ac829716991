package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"taskbazaar/controllers/admins"
	"taskbazaar/middleware"
)

func SetAdminRoutes(api *mux.Router, deps Deps) {
	// Admin login: 5 attempts per IP per minute.
	adminLoginLimiter := middleware.NewIPRateLimiter(5, time.Minute)

	// Public admin routes
	api.Handle("/admin/login", adminLoginLimiter.Middleware(admins.Login(deps.Store))).Methods(http.MethodPost)

	// Protected admin routes
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuth(deps.Store))

	// Dashboard stats
	adminRouter.Handle("/dashboard", admins.Dashboard(deps.Store)).Methods(http.MethodGet)

	// User management
	adminRouter.Handle("/users", admins.ListUsers(deps.Store)).Methods(http.MethodGet)
	adminRouter.Handle("/users/{id}/status", admins.SetUserStatus(deps.Store)).Methods(http.MethodPatch)
	adminRouter.Handle("/users/{id}", admins.DeleteUser(deps.Store)).Methods(http.MethodDelete)

	// Task moderation
	adminRouter.Handle("/tasks", admins.ListTasks(deps.Store)).Methods(http.MethodGet)
	adminRouter.Handle("/tasks/{id}", admins.DeleteTask(deps.Store)).Methods(http.MethodDelete)

	// Submission moderation
	adminRouter.Handle("/submissions", admins.ListSubmissions(deps.Store)).Methods(http.MethodGet)
	adminRouter.Handle("/submissions/{id}/approve", admins.ApproveSubmission(deps.Store)).Methods(http.MethodPost)
	adminRouter.Handle("/submissions/{id}/reject", admins.RejectSubmission(deps.Store)).Methods(http.MethodPost)
}
