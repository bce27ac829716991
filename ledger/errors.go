package ledger

import "errors"

// Operation errors. Every failed operation leaves the ledger untouched;
// controllers map these onto the API envelope.
var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidTask         = errors.New("invalid task")
	ErrInvalidStatus       = errors.New("invalid user status")
	ErrReasonRequired      = errors.New("a reason is required to reject a submission")
	ErrDuplicateSubmission = errors.New("task already submitted or completed")
	ErrProofMismatch       = errors.New("proof does not match the task's proof type")
	ErrInvalidTransition   = errors.New("invalid submission state transition")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrSuspended           = errors.New("account suspended")
)
