package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"taskbazaar/controllers/users"
	"taskbazaar/middleware"
)

// UsersRoutes registers the worker/owner surface on the given subrouter.
func UsersRoutes(api *mux.Router, deps Deps) {
	// Connect doubles as registration, keep it on the tight auth budget.
	connectLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// 120 reads, 60 writes per user per minute.
	userLimiter := middleware.NewUserRateLimiter(120, 60, 60)

	auth := middleware.AuthMiddleware

	// Wallet connect & session
	api.Handle("/connect", connectLimiter.Middleware(users.ConnectHandler(deps.Store, deps.Provider))).Methods(http.MethodPost)
	api.Handle("/logout", userLimiter.Middleware(auth(users.LogoutHandler()))).Methods(http.MethodPost)

	// Account
	api.Handle("/users/info", userLimiter.Middleware(auth(users.InfoHandler(deps.Store)))).Methods(http.MethodGet)

	// Task board
	api.Handle("/users/tasks", userLimiter.Middleware(auth(users.AvailableTasksHandler(deps.Store)))).Methods(http.MethodGet)
	api.Handle("/users/tasks", userLimiter.Middleware(auth(users.CreateTaskHandler(deps.Store)))).Methods(http.MethodPost)
	api.Handle("/users/tasks/mine", userLimiter.Middleware(auth(users.MyTasksHandler(deps.Store)))).Methods(http.MethodGet)
	api.Handle("/users/tasks/{id}", userLimiter.Middleware(auth(users.TaskDetailHandler(deps.Store)))).Methods(http.MethodGet)

	// Submissions
	api.Handle("/users/submissions", userLimiter.Middleware(auth(users.SubmitHandler(deps.Store, deps.Assistant)))).Methods(http.MethodPost)
	api.Handle("/users/submissions", userLimiter.Middleware(auth(users.MySubmissionsHandler(deps.Store)))).Methods(http.MethodGet)

	// Owner review queue
	api.Handle("/users/reviews", userLimiter.Middleware(auth(users.ReviewQueueHandler(deps.Store)))).Methods(http.MethodGet)
	api.Handle("/users/reviews/{id}/approve", userLimiter.Middleware(auth(users.ApproveSubmissionHandler(deps.Store)))).Methods(http.MethodPost)
	api.Handle("/users/reviews/{id}/reject", userLimiter.Middleware(auth(users.RejectSubmissionHandler(deps.Store)))).Methods(http.MethodPost)

	// Simulated wallet transfers
	api.Handle("/users/deposit", userLimiter.Middleware(auth(users.DepositHandler(deps.Store, deps.SettleDelay)))).Methods(http.MethodPost)
	api.Handle("/users/withdraw", userLimiter.Middleware(auth(users.WithdrawHandler(deps.Store, deps.SettleDelay)))).Methods(http.MethodPost)
	api.Handle("/users/transactions", userLimiter.Middleware(auth(users.TransactionsHandler(deps.Store)))).Methods(http.MethodGet)

	// Proof image upload
	api.Handle("/users/uploads/proof", userLimiter.Middleware(auth(users.UploadProofHandler()))).Methods(http.MethodPost)

	// AI task ideas
	api.Handle("/tasks/ideas", userLimiter.Middleware(auth(users.TaskIdeasHandler(deps.Assistant)))).Methods(http.MethodPost)
}
