package model

import "errors"

var (
	// ErrInvalidProposalShape reports a field combination that does not match the proposal type.
	ErrInvalidProposalShape = errors.New("invalid proposal shape")
	// ErrInsufficientSignatures reports a raw transaction requested before the quorum is met.
	ErrInsufficientSignatures = errors.New("insufficient signatures")
	// ErrSignatureMatchFailure reports a signature that verifies against no remaining public key.
	ErrSignatureMatchFailure = errors.New("signature does not match any public key")
	// ErrInvalidOutputOrder reports an output order that is not a permutation of the outputs.
	ErrInvalidOutputOrder = errors.New("invalid output order")
	// ErrDuplicateVote reports a second action from a copayer that already voted.
	ErrDuplicateVote = errors.New("copayer already voted")
	// ErrInvalidAction reports a malformed accept or reject action.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInsufficientFunds reports inputs that do not cover outputs plus fee.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidState reports a status transition that is not allowed.
	ErrInvalidState = errors.New("invalid proposal state")
	// ErrNotFound reports a proposal missing from storage.
	ErrNotFound = errors.New("proposal not found")
)
