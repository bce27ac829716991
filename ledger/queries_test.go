package ledger

import (
	"testing"

	"taskbazaar/models"
)

func TestAvailableTasksExcludesOwnHistory(t *testing.T) {
	s := newTestStore(t)

	for _, task := range s.AvailableTasks(walletA, "") {
		if task.ID == "task-001" {
			t.Fatalf("completed task listed as available")
		}
		if task.ID == "task-003" {
			t.Fatalf("task with in-flight submission listed as available")
		}
	}

	// wallet B has no history; everything shows.
	if got, want := len(s.AvailableTasks(walletB, "")), len(s.Tasks()); got != want {
		t.Fatalf("available = %d, want %d", got, want)
	}
}

func TestAvailableTasksTypeFilter(t *testing.T) {
	s := newTestStore(t)
	got := s.AvailableTasks(walletB, models.TaskDataEntry)
	if len(got) != 1 || got[0].ID != "task-002" {
		t.Fatalf("filtered tasks = %+v", got)
	}
}

func TestSubmissionsForOwner(t *testing.T) {
	s := newTestStore(t)

	// wallet A owns task-003; its only submission is sub-001.
	subs := s.SubmissionsForOwner(walletA)
	if len(subs) != 1 || subs[0].ID != "sub-001" {
		t.Fatalf("owner queue = %+v", subs)
	}
	if n := s.PendingReviewCount(walletA); n != 1 {
		t.Fatalf("pending count = %d, want 1", n)
	}

	// Approving clears the pending count but keeps the queue entry.
	if _, err := s.Approve("sub-001", models.ReviewerOwner); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if n := s.PendingReviewCount(walletA); n != 0 {
		t.Fatalf("pending count after approve = %d", n)
	}
	if subs := s.SubmissionsForOwner(walletA); len(subs) != 1 {
		t.Fatalf("queue after approve = %+v", subs)
	}
}

func TestTransactionsByUserNewestFirst(t *testing.T) {
	s := newTestStore(t)

	tx1, _ := s.BeginDeposit(walletA, 10)
	tx2, _ := s.BeginDeposit(walletA, 20)

	txs := s.TransactionsByUser(walletA)
	if len(txs) != 2 {
		t.Fatalf("journal length = %d", len(txs))
	}
	if txs[0].ID != tx2.ID || txs[1].ID != tx1.ID {
		t.Fatalf("journal not newest first: %s, %s", txs[0].ID, txs[1].ID)
	}
}

func TestComputeStats(t *testing.T) {
	s := newTestStore(t)

	st := s.ComputeStats()
	if st.TotalUsers != 3 || st.TotalTasks != 6 || st.TotalSubmissions != 2 {
		t.Fatalf("stats = %+v", st)
	}
	if st.PendingSubmissions != 1 {
		t.Fatalf("pending = %d, want 1", st.PendingSubmissions)
	}
	// sub-002 approved against task-001 (reward 5.00).
	if st.TotalPaidOut != 5.00 {
		t.Fatalf("paid out = %.2f, want 5.00", st.TotalPaidOut)
	}

	// Approving the pending link share moves 2.50 into paid out.
	if _, err := s.Approve("sub-001", models.ReviewerAdmin); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	st = s.ComputeStats()
	if st.PendingSubmissions != 0 || st.TotalPaidOut != 7.50 {
		t.Fatalf("stats after approve = %+v", st)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newTestStore(t)

	snap := s.Snapshot()
	snap.Users[0].Balance = 999999
	snap.Users[0].CompletedTaskIDs = append(snap.Users[0].CompletedTaskIDs, "task-xxx")
	snap.Tasks[0].Reward = -1

	u := mustGetUser(t, s, snap.Users[0].ID)
	if u.Balance == 999999 || u.HasCompleted("task-xxx") {
		t.Fatalf("snapshot mutation leaked into store")
	}
	fresh := s.Snapshot()
	if fresh.Tasks[0].Reward == -1 {
		t.Fatalf("task mutation leaked into store")
	}
}
