package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SeedData is the demo dataset the service boots with. It mirrors a small
// marketplace mid-flight: two funded wallet users, the platform admin and a
// couple of submissions in different states.
type SeedData struct {
	Users        []User
	Tasks        []Task
	Submissions  []Submission
	Transactions []Transaction
}

const (
	seedWalletA = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	seedWalletB = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	seedAdminID = "user-admin-01"
)

// Seed builds the demo dataset. adminPassword is hashed with bcrypt before
// being stored on the admin user.
func Seed(adminEmail, adminPassword string) (SeedData, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return SeedData{}, err
	}
	now := time.Now()

	users := []User{
		{
			ID:               seedWalletA,
			Role:             RoleUser,
			Status:           UserActive,
			Balance:          127.50,
			DepositedBalance: 250.00,
			CompletedTaskIDs: []string{"task-001"},
			SubmittedTaskIDs: []string{"task-003"},
			CreatedAt:        now,
		},
		{
			ID:               seedWalletB,
			Role:             RoleUser,
			Status:           UserActive,
			Balance:          22.00,
			DepositedBalance: 50.00,
			CompletedTaskIDs: []string{},
			SubmittedTaskIDs: []string{},
			CreatedAt:        now,
		},
		{
			ID:        seedAdminID,
			Name:      "Admin User",
			Email:     adminEmail,
			Password:  string(hash),
			Role:      RoleAdmin,
			Status:    UserActive,
			CreatedAt: now,
		},
	}

	tasks := []Task{
		{
			ID:                "task-001",
			CreatorID:         seedWalletB,
			Title:             "Feedback on New App Icon",
			Description:       "We are looking for feedback on three new app icon designs. View the icons and answer a short 5-question survey.",
			Reward:            5.00,
			Type:              TaskFeedback,
			ProjectName:       "User 0x709...c79C8",
			CompletionsNeeded: 100,
			CompletionsDone:   88,
			ProofType:         ProofText,
			ProofQuestion:     "Which icon did you prefer and why? Please be detailed.",
			CreatedAt:         now,
		},
		{
			ID:                "task-002",
			CreatorID:         seedWalletB,
			Title:             "Transcribe Short Audio Clips",
			Description:       "Listen to 10 short audio clips (15-30 seconds each) and accurately transcribe the speech into text.",
			Reward:            12.50,
			Type:              TaskDataEntry,
			ProjectName:       "User 0x709...c79C8",
			CompletionsNeeded: 50,
			CompletionsDone:   12,
			ProofType:         ProofText,
			ProofQuestion:     "Please paste the full transcription here.",
			CreatedAt:         now,
		},
		{
			ID:                "task-003",
			CreatorID:         seedWalletA,
			Title:             "Share our Launch Post on X",
			Description:       "Help us spread the word! Share our official launch post on your X (Twitter) account with the hashtag #NewProductLaunch. The post must be public.",
			Reward:            2.50,
			Type:              TaskSocialMediaShare,
			ProjectName:       "User 0xf39...92266",
			CompletionsNeeded: 500,
			CompletionsDone:   451,
			ProofType:         ProofLink,
			ProofQuestion:     "Please provide the direct link to your post on X.",
			AutoApprove:       true,
			CreatedAt:         now,
		},
		{
			ID:                "task-010",
			CreatorID:         seedWalletA,
			Title:             "Test Checkout on E-commerce Site",
			Description:       "Add any item to your cart and proceed through the entire checkout process using the provided test credit card info. Report any bugs or issues.",
			Reward:            15.00,
			Type:              TaskAppTesting,
			ProjectName:       "User 0xf39...92266",
			CompletionsNeeded: 25,
			CompletionsDone:   19,
			ProofType:         ProofText,
			ProofQuestion:     "Describe your experience. Did you encounter any errors or confusing steps? Be specific.",
			CreatedAt:         now,
		},
		{
			ID:                "task-013",
			CreatorID:         seedWalletB,
			Title:             "Create a Meme About Our Brand",
			Description:       "Create a funny and relatable meme related to the problems our software solves. Be creative! The top 10 memes will be awarded.",
			Reward:            12.00,
			Type:              TaskContentCreation,
			ProjectName:       "User 0x709...c79C8",
			CompletionsNeeded: 10,
			CompletionsDone:   1,
			ProofType:         ProofImage,
			ProofQuestion:     "Upload your meme image here.",
			CreatedAt:         now,
		},
		{
			ID:                "task-004",
			CreatorID:         seedWalletA,
			Title:             "Short Survey on Online Shopping Habits",
			Description:       "Answer a 10-question multiple-choice survey about your online shopping preferences. It should take less than 5 minutes.",
			Reward:            3.00,
			Type:              TaskSurvey,
			ProjectName:       "User 0xf39...92266",
			CompletionsNeeded: 250,
			CompletionsDone:   112,
			ProofType:         ProofText,
			ProofQuestion:     "Please provide a summary of your key preference at the end of the survey.",
			CreatedAt:         now,
		},
	}

	submissions := []Submission{
		{
			ID:          "sub-001",
			TaskID:      "task-003",
			WorkerID:    seedWalletA,
			Status:      SubmissionPending,
			SubmittedAt: now.Add(-24 * time.Hour),
			Proof:       Proof{Kind: ProofLink, Link: "https://twitter.com/alexdoe/status/123456789"},
		},
		{
			ID:               "sub-002",
			TaskID:           "task-001",
			WorkerID:         seedWalletA,
			Status:           SubmissionApproved,
			SubmittedAt:      now.Add(-48 * time.Hour),
			Proof:            Proof{Kind: ProofText, Text: "I preferred icon B. It was cleaner and more modern."},
			ReviewerFeedback: "Approved by OWNER",
		},
	}

	return SeedData{Users: users, Tasks: tasks, Submissions: submissions}, nil
}
