package models

import "time"

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Reviewer identifies who decided a submission's fate.
type Reviewer string

const (
	ReviewerOwner Reviewer = "OWNER"
	ReviewerAdmin Reviewer = "ADMIN"
	ReviewerAI    Reviewer = "AI"
)

// Proof is the evidence attached to a submission. It is a tagged union keyed
// by Kind: exactly one of Text, Link or ImageURL is set, matching the task's
// proof type.
type Proof struct {
	Kind     ProofType `json:"kind"`
	Text     string    `json:"text,omitempty"`
	Link     string    `json:"link,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
}

// Value returns the payload of whichever variant is set.
func (p Proof) Value() string {
	switch p.Kind {
	case ProofText:
		return p.Text
	case ProofLink:
		return p.Link
	case ProofImage:
		return p.ImageURL
	}
	return ""
}

// Valid reports whether the proof carries a payload in the field its kind
// selects and nothing in the others.
func (p Proof) Valid() bool {
	switch p.Kind {
	case ProofText:
		return p.Text != "" && p.Link == "" && p.ImageURL == ""
	case ProofLink:
		return p.Link != "" && p.Text == "" && p.ImageURL == ""
	case ProofImage:
		return p.ImageURL != "" && p.Text == "" && p.Link == ""
	}
	return false
}

// Submission is a worker's attempt to complete a task. Lifecycle:
// pending -> approved or pending -> rejected, with rejected -> approved as
// the single permitted re-transition (admin overturn).
type Submission struct {
	ID               string           `json:"id"`
	TaskID           string           `json:"task_id"`
	WorkerID         string           `json:"worker_id"`
	Status           SubmissionStatus `json:"status"`
	Proof            Proof            `json:"proof"`
	ReviewerFeedback string           `json:"reviewer_feedback,omitempty"`
	SubmittedAt      time.Time        `json:"submitted_at"`
}
