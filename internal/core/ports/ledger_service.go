package ports

import "context"

// SubscribeInput identifies a subscription request.
type SubscribeInput struct {
	StudentID string
	ChannelID string
	// IdempotencyKey is optional; a replayed key skips the ledger.
	IdempotencyKey string
}

// WalletResult is the student's wallet after a ledger operation.
type WalletResult struct {
	StudentID     string
	WalletBalance int64
	ChannelID     string
	// AlreadyProcessed is true when the idempotency key was seen before.
	AlreadyProcessed bool
}

// LedgerService runs the wallet and subscription rules against the live state.
type LedgerService interface {
	Subscribe(ctx context.Context, input SubscribeInput) (*WalletResult, error)
	Recharge(ctx context.Context, studentID string) (*WalletResult, error)
	Wallet(ctx context.Context, studentID string) (*WalletResult, error)
}
