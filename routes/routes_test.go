package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"taskbazaar/ai"
	"taskbazaar/ledger"
	"taskbazaar/middleware"
	"taskbazaar/models"
	"taskbazaar/wallet"
)

const (
	testWalletA = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testWalletB = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

// fakeAssistant returns canned results so handler tests never call out.
type fakeAssistant struct {
	verdict bool
	err     error
	ideas   []models.TaskIdea
}

func (f *fakeAssistant) GenerateTaskIdeas(ctx context.Context, goal string) ([]models.TaskIdea, error) {
	return f.ideas, f.err
}

func (f *fakeAssistant) VerifySubmission(ctx context.Context, task models.Task, proof models.Proof) (bool, error) {
	return f.verdict, f.err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, assistant ai.Assistant) *mux.Router {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	seed, err := models.Seed("admin@example.com", "admin-pass")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := ledger.NewStore(seed)
	provider := wallet.NewSimulatedWith([]string{testWalletA, testWalletB}, "0xaa36a7")

	return InitRouter(Deps{
		Store:     store,
		Assistant: assistant,
		Provider:  provider,
		// Zero delay settles transfers synchronously.
		SettleDelay: 0,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope from %s %s (%d): %v\nbody: %s", method, path, rec.Code, err, rec.Body.String())
		}
	}
	return rec, env
}

func connect(t *testing.T, router http.Handler, address string) string {
	t.Helper()
	rec, env := doJSON(t, router, http.MethodPost, "/v1/connect", "", map[string]string{"address": address})
	if rec.Code != http.StatusOK {
		t.Fatalf("connect = %d: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("no token in connect response: %s", env.Data)
	}
	return data.Token
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
}

func TestNetworkInfo(t *testing.T) {
	router := newTestRouter(t, nil)
	rec, env := doJSON(t, router, http.MethodGet, "/v1/network", "", nil)
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("network = %d: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Network   string `json:"network"`
		Supported bool   `json:"supported"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Network != "Sepolia Testnet" || !data.Supported {
		t.Fatalf("network data = %+v", data)
	}
}

func TestConnectRegistersAndAuthenticates(t *testing.T) {
	router := newTestRouter(t, nil)
	token := connect(t, router, "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")

	rec, env := doJSON(t, router, http.MethodGet, "/v1/users/info", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("info = %d: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		User models.User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.User.Balance != 0 || data.User.Status != models.UserActive {
		t.Fatalf("fresh user = %+v", data.User)
	}
}

func TestConnectRejectsBadAddress(t *testing.T) {
	router := newTestRouter(t, nil)
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/connect", "", map[string]string{"address": "not-a-wallet"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad address = %d", rec.Code)
	}
}

func TestUserEndpointsRequireAuth(t *testing.T) {
	router := newTestRouter(t, nil)
	for _, path := range []string{"/v1/users/info", "/v1/users/tasks", "/v1/users/transactions"} {
		rec, _ := doJSON(t, router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token = %d", path, rec.Code)
		}
	}
}

func TestDepositSettlesAndFundsTaskCreation(t *testing.T) {
	router := newTestRouter(t, nil)
	token := connect(t, router, testWalletB)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/users/deposit", token, map[string]float64{"amount": 200})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("deposit = %d: %s", rec.Code, rec.Body.String())
	}

	// Zero settle delay means funds are usable immediately.
	spec := map[string]interface{}{
		"title":              "Review our pricing page",
		"description":        "Tell us what is unclear about the pricing tiers.",
		"reward":             10.0,
		"type":               "Feedback & Ideas",
		"completions_needed": 20,
		"proof_type":         "text",
		"proof_question":     "What confused you most?",
	}
	rec, env := doJSON(t, router, http.MethodPost, "/v1/users/tasks", token, spec)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create task = %d: %s", rec.Code, rec.Body.String())
	}
	var task models.Task
	if err := json.Unmarshal(env.Data, &task); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if task.CreatorID != testWalletB || task.Reward != 10.0 {
		t.Fatalf("task = %+v", task)
	}

	// 50 seeded + 200 deposited - 200 budget = 50.
	_, env = doJSON(t, router, http.MethodGet, "/v1/users/info", token, nil)
	var data struct {
		User models.User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.User.DepositedBalance != 50 {
		t.Fatalf("deposited balance = %.2f, want 50.00", data.User.DepositedBalance)
	}
}

func TestCreateTaskInsufficientFunds(t *testing.T) {
	router := newTestRouter(t, nil)
	token := connect(t, router, testWalletB)

	spec := map[string]interface{}{
		"title":              "Overfunded task",
		"description":        "x",
		"reward":             100.0,
		"type":               "Survey",
		"completions_needed": 100,
		"proof_type":         "text",
		"proof_question":     "?",
	}
	rec, env := doJSON(t, router, http.MethodPost, "/v1/users/tasks", token, spec)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create = %d: %s", rec.Code, rec.Body.String())
	}
	if env.Message != "Insufficient funds" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestAutoApproveSubmission(t *testing.T) {
	router := newTestRouter(t, &fakeAssistant{verdict: true})
	token := connect(t, router, testWalletB)

	body := map[string]interface{}{
		"task_id": "task-003",
		"proof":   map[string]string{"kind": "link", "link": "https://x.com/bob/status/42"},
	}
	rec, env := doJSON(t, router, http.MethodPost, "/v1/users/submissions", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit = %d: %s", rec.Code, rec.Body.String())
	}
	var sub models.Submission
	if err := json.Unmarshal(env.Data, &sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.Status != models.SubmissionApproved {
		t.Fatalf("status = %s, want approved", sub.Status)
	}
	if sub.ReviewerFeedback != "Approved by AI" {
		t.Fatalf("feedback = %q", sub.ReviewerFeedback)
	}
}

func TestNegativeVerdictFallsBackToManualReview(t *testing.T) {
	router := newTestRouter(t, &fakeAssistant{verdict: false})
	token := connect(t, router, testWalletB)

	body := map[string]interface{}{
		"task_id": "task-003",
		"proof":   map[string]string{"kind": "link", "link": "https://example.com/nothing"},
	}
	rec, env := doJSON(t, router, http.MethodPost, "/v1/users/submissions", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit = %d: %s", rec.Code, rec.Body.String())
	}
	var sub models.Submission
	if err := json.Unmarshal(env.Data, &sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.Status != models.SubmissionPending {
		t.Fatalf("status = %s, want pending", sub.Status)
	}
	if sub.ReviewerFeedback != "" {
		t.Fatalf("feedback should stay empty until a reviewer acts, got %q", sub.ReviewerFeedback)
	}
}

func TestVerificationErrorLeavesSubmissionPending(t *testing.T) {
	router := newTestRouter(t, &fakeAssistant{err: fmt.Errorf("model unavailable")})
	token := connect(t, router, testWalletB)

	body := map[string]interface{}{
		"task_id": "task-003",
		"proof":   map[string]string{"kind": "link", "link": "https://x.com/bob/status/43"},
	}
	rec, env := doJSON(t, router, http.MethodPost, "/v1/users/submissions", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit = %d: %s", rec.Code, rec.Body.String())
	}
	var sub models.Submission
	if err := json.Unmarshal(env.Data, &sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.Status != models.SubmissionPending {
		t.Fatalf("status = %s, want pending", sub.Status)
	}
}

func TestOwnerReviewFlow(t *testing.T) {
	router := newTestRouter(t, nil)
	ownerToken := connect(t, router, testWalletA) // owns task-003 with pending sub-001
	otherToken := connect(t, router, testWalletB)

	// Another user cannot review someone else's submissions.
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/users/reviews/sub-001/approve", otherToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign approve = %d", rec.Code)
	}

	// Rejecting without a reason fails validation.
	rec, _ = doJSON(t, router, http.MethodPost, "/v1/users/reviews/sub-001/reject", ownerToken, map[string]string{"reason": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty reason = %d", rec.Code)
	}

	rec, env := doJSON(t, router, http.MethodPost, "/v1/users/reviews/sub-001/approve", ownerToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve = %d: %s", rec.Code, rec.Body.String())
	}
	var sub models.Submission
	if err := json.Unmarshal(env.Data, &sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.ReviewerFeedback != "Approved by OWNER" {
		t.Fatalf("feedback = %q", sub.ReviewerFeedback)
	}
}

func TestTaskIdeas(t *testing.T) {
	ideas := []models.TaskIdea{{
		Title:         "Share our beta announcement",
		Description:   "Post about the beta with #BetaLaunch",
		Type:          models.TaskSocialMediaShare,
		ProofType:     models.ProofLink,
		ProofQuestion: "Link to your post?",
	}}
	router := newTestRouter(t, &fakeAssistant{ideas: ideas})
	token := connect(t, router, testWalletB)

	rec, env := doJSON(t, router, http.MethodPost, "/v1/tasks/ideas", token, map[string]string{"goal": "grow beta signups"})
	if rec.Code != http.StatusOK {
		t.Fatalf("ideas = %d: %s", rec.Code, rec.Body.String())
	}
	var got []models.TaskIdea
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Title != ideas[0].Title {
		t.Fatalf("ideas = %+v", got)
	}
}

func TestTaskIdeasWithoutAssistant(t *testing.T) {
	router := newTestRouter(t, nil)
	token := connect(t, router, testWalletB)
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/tasks/ideas", token, map[string]string{"goal": "anything"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("ideas without assistant = %d", rec.Code)
	}
}

func adminLogin(t *testing.T, router http.Handler) string {
	t.Helper()
	t.Cleanup(func() { middleware.ResetFailedLogin("user-admin-01") })
	rec, env := doJSON(t, router, http.MethodPost, "/v1/admin/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "admin-pass",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login = %d: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("no admin token: %s", env.Data)
	}
	return data.Token
}

func TestAdminLoginAndDashboard(t *testing.T) {
	router := newTestRouter(t, nil)
	token := adminLogin(t, router)

	rec, env := doJSON(t, router, http.MethodGet, "/v1/admin/dashboard", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard = %d: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Stats ledger.Stats `json:"stats"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Stats.TotalUsers != 3 || data.Stats.TotalTasks != 6 {
		t.Fatalf("stats = %+v", data.Stats)
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t, nil)
	t.Cleanup(func() { middleware.ResetFailedLogin("user-admin-01") })

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/admin/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password = %d", rec.Code)
	}
}

func TestAdminTokenBlockedFromUserSurface(t *testing.T) {
	router := newTestRouter(t, nil)
	token := adminLogin(t, router)

	rec, _ := doJSON(t, router, http.MethodGet, "/v1/users/info", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("admin on user endpoint = %d", rec.Code)
	}
}

func TestUserTokenBlockedFromAdminSurface(t *testing.T) {
	router := newTestRouter(t, nil)
	token := connect(t, router, testWalletB)

	rec, _ := doJSON(t, router, http.MethodGet, "/v1/admin/users", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("user on admin endpoint = %d", rec.Code)
	}
}

func TestAdminModeration(t *testing.T) {
	router := newTestRouter(t, nil)
	token := adminLogin(t, router)
	userToken := connect(t, router, testWalletA)

	// Suspend wallet A.
	rec, _ := doJSON(t, router, http.MethodPatch, "/v1/admin/users/"+testWalletA+"/status", token, map[string]string{"status": "suspended"})
	if rec.Code != http.StatusOK {
		t.Fatalf("suspend = %d: %s", rec.Code, rec.Body.String())
	}

	// Suspended user can no longer move funds.
	rec, _ = doJSON(t, router, http.MethodPost, "/v1/users/deposit", userToken, map[string]float64{"amount": 10})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("suspended deposit = %d", rec.Code)
	}

	// Delete a task and confirm its submission disappears from moderation.
	rec, _ = doJSON(t, router, http.MethodDelete, "/v1/admin/tasks/task-003", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete task = %d", rec.Code)
	}
	_, env := doJSON(t, router, http.MethodGet, "/v1/admin/submissions", token, nil)
	var subs []models.Submission
	if err := json.Unmarshal(env.Data, &subs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, sub := range subs {
		if sub.TaskID == "task-003" {
			t.Fatalf("submission for deleted task still listed")
		}
	}
}
