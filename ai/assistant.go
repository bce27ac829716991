package ai

import (
	"context"

	"taskbazaar/models"
)

// Assistant is the boundary to the generative-AI service. Both calls are
// fallible and latency-bearing; callers must treat any error as "no verdict"
// and fall back to the manual path.
type Assistant interface {
	// GenerateTaskIdeas turns a project goal into a handful of task
	// suggestions. Items failing enum validation are dropped before return.
	GenerateTaskIdeas(ctx context.Context, goal string) ([]models.TaskIdea, error)

	// VerifySubmission judges whether a proof plausibly fulfils the task.
	// Only Social Media Share tasks with link proof are eligible; everything
	// else returns false without an API call.
	VerifySubmission(ctx context.Context, task models.Task, proof models.Proof) (bool, error)
}

// Verifiable reports whether a submission is eligible for automated
// verification at all. Callers use this to decide between the AI path and
// leaving the submission pending for manual review.
func Verifiable(task models.Task, proof models.Proof) bool {
	return task.Type == models.TaskSocialMediaShare &&
		proof.Kind == models.ProofLink && proof.Link != ""
}
