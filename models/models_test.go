package models

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestProofValid(t *testing.T) {
	cases := []struct {
		name  string
		proof Proof
		want  bool
	}{
		{"text", Proof{Kind: ProofText, Text: "done"}, true},
		{"link", Proof{Kind: ProofLink, Link: "https://x.com/p/1"}, true},
		{"image", Proof{Kind: ProofImage, ImageURL: "https://cdn/img.png"}, true},
		{"empty payload", Proof{Kind: ProofText}, false},
		{"two payloads", Proof{Kind: ProofText, Text: "a", Link: "b"}, false},
		{"payload in wrong field", Proof{Kind: ProofLink, Text: "a"}, false},
		{"unknown kind", Proof{Kind: "video", Text: "a"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.proof.Valid(); got != tc.want {
				t.Fatalf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProofValue(t *testing.T) {
	if v := (Proof{Kind: ProofLink, Link: "https://x.com"}).Value(); v != "https://x.com" {
		t.Fatalf("Value() = %q", v)
	}
	if v := (Proof{Kind: "video", Text: "x"}).Value(); v != "" {
		t.Fatalf("unknown kind Value() = %q", v)
	}
}

func TestTaskIdeaValid(t *testing.T) {
	idea := TaskIdea{
		Title:         "Share launch post",
		Description:   "Post with #Launch",
		Type:          TaskSocialMediaShare,
		ProofType:     ProofLink,
		ProofQuestion: "Link to the post?",
	}
	if !idea.Valid() {
		t.Fatalf("complete idea should be valid")
	}

	bad := idea
	bad.Type = "Gardening"
	if bad.Valid() {
		t.Fatalf("unknown type should be invalid")
	}
	bad = idea
	bad.Title = ""
	if bad.Valid() {
		t.Fatalf("empty title should be invalid")
	}
}

func TestUserTaskSets(t *testing.T) {
	u := User{
		CompletedTaskIDs: []string{"task-001"},
		SubmittedTaskIDs: []string{"task-003"},
	}
	if !u.HasCompleted("task-001") || u.HasCompleted("task-003") {
		t.Fatalf("completed set wrong")
	}
	if !u.HasSubmitted("task-003") || u.HasSubmitted("task-001") {
		t.Fatalf("submitted set wrong")
	}
	u.RemoveTaskRef("task-001")
	u.RemoveTaskRef("task-003")
	if u.HasCompleted("task-001") || u.HasSubmitted("task-003") {
		t.Fatalf("RemoveTaskRef left references behind")
	}
}

func TestSeedHashesAdminPassword(t *testing.T) {
	seed, err := Seed("admin@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var admin *User
	for i := range seed.Users {
		if seed.Users[i].Role == RoleAdmin {
			admin = &seed.Users[i]
		}
	}
	if admin == nil {
		t.Fatalf("no admin in seed")
	}
	if admin.Password == "hunter2" {
		t.Fatalf("admin password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("hunter2")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestSeedConsistency(t *testing.T) {
	seed, err := Seed("admin@example.com", "x")
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	users := make(map[string]User, len(seed.Users))
	for _, u := range seed.Users {
		users[u.ID] = u
	}
	tasks := make(map[string]bool, len(seed.Tasks))
	for _, task := range seed.Tasks {
		tasks[task.ID] = true
		if _, ok := users[task.CreatorID]; !ok {
			t.Fatalf("task %s creator %s not seeded", task.ID, task.CreatorID)
		}
	}
	for _, sub := range seed.Submissions {
		if !tasks[sub.TaskID] {
			t.Fatalf("submission %s targets unknown task %s", sub.ID, sub.TaskID)
		}
		worker, ok := users[sub.WorkerID]
		if !ok {
			t.Fatalf("submission %s worker %s not seeded", sub.ID, sub.WorkerID)
		}
		switch sub.Status {
		case SubmissionPending:
			if !worker.HasSubmitted(sub.TaskID) {
				t.Fatalf("pending submission %s missing from worker's submitted set", sub.ID)
			}
		case SubmissionApproved:
			if !worker.HasCompleted(sub.TaskID) {
				t.Fatalf("approved submission %s missing from worker's completed set", sub.ID)
			}
		}
	}
}
