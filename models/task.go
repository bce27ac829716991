package models

import "time"

type TaskType string

const (
	TaskSurvey           TaskType = "Survey"
	TaskDataEntry        TaskType = "Data Entry"
	TaskSocialMediaShare TaskType = "Social Media Share"
	TaskAppTesting       TaskType = "App Testing"
	TaskContentCreation  TaskType = "Content Creation"
	TaskFeedback         TaskType = "Feedback & Ideas"
)

// TaskTypes lists every valid task category.
var TaskTypes = []TaskType{
	TaskSurvey,
	TaskDataEntry,
	TaskSocialMediaShare,
	TaskAppTesting,
	TaskContentCreation,
	TaskFeedback,
}

func (t TaskType) Valid() bool {
	for _, v := range TaskTypes {
		if t == v {
			return true
		}
	}
	return false
}

type ProofType string

const (
	ProofText  ProofType = "text"
	ProofLink  ProofType = "link"
	ProofImage ProofType = "image"
)

var ProofTypes = []ProofType{ProofText, ProofLink, ProofImage}

func (p ProofType) Valid() bool {
	for _, v := range ProofTypes {
		if p == v {
			return true
		}
	}
	return false
}

// Task is a unit of paid work. The total funds reserved for a task
// (Reward * CompletionsNeeded) are deducted from the creator's deposited
// balance when the task is created.
type Task struct {
	ID                string    `json:"id"`
	CreatorID         string    `json:"creator_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Reward            float64   `json:"reward"`
	Type              TaskType  `json:"type"`
	ProjectName       string    `json:"project_name"`
	CompletionsNeeded int       `json:"completions_needed"`
	CompletionsDone   int       `json:"completions_done"`
	ProofType         ProofType `json:"proof_type"`
	ProofQuestion     string    `json:"proof_question"`
	AutoApprove       bool      `json:"auto_approve"`
	CreatedAt         time.Time `json:"created_at"`
}

// TaskIdea is a task suggestion produced by the AI assistant.
type TaskIdea struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          TaskType  `json:"type"`
	ProofType     ProofType `json:"proof_type"`
	ProofQuestion string    `json:"proof_question"`
}

// Valid reports whether the idea's enumerated fields carry known values.
// Ideas failing this check are dropped before being shown to the owner.
func (i TaskIdea) Valid() bool {
	return i.Title != "" && i.Description != "" && i.ProofQuestion != "" &&
		i.Type.Valid() && i.ProofType.Valid()
}
