package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/way-campus/way/internal/api/metrics"
	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type ledgerService struct {
	state          *StateHolder
	dedup          DedupChecker
	rechargeAmount int64
	log            zerolog.Logger
}

// NewLedgerService returns a LedgerService. dedup may be nil, in which case
// idempotency keys are ignored and only the already-subscribed guard applies.
func NewLedgerService(state *StateHolder, dedup DedupChecker, rechargeAmount int64, log zerolog.Logger) ports.LedgerService {
	if rechargeAmount <= 0 {
		rechargeAmount = domain.DefaultRechargeAmount
	}
	return &ledgerService{
		state:          state,
		dedup:          dedup,
		rechargeAmount: rechargeAmount,
		log:            log,
	}
}

// Subscribe charges the student and joins them to the channel.
func (s *ledgerService) Subscribe(ctx context.Context, in ports.SubscribeInput) (*ports.WalletResult, error) {
	dedupKey := ""
	if s.dedup != nil && in.IdempotencyKey != "" {
		dedupKey = fmt.Sprintf("subscribe:%s:%s:%s", in.StudentID, in.ChannelID, in.IdempotencyKey)
		isDup, err := s.dedup.IsDuplicate(ctx, dedupKey)
		if err != nil {
			s.log.Warn().Err(err).Str("student_id", in.StudentID).Msg("dedup check failed, processing anyway")
		} else if isDup {
			s.log.Debug().Str("student_id", in.StudentID).Str("channel_id", in.ChannelID).Msg("duplicate subscribe skipped")
			res, err := s.Wallet(ctx, in.StudentID)
			if err != nil {
				return nil, err
			}
			res.ChannelID = in.ChannelID
			res.AlreadyProcessed = true
			metrics.SubscriptionsTotal.WithLabelValues("replayed").Inc()
			return res, nil
		}
	}

	next, err := s.state.Mutate(ctx, func(next *domain.State) error {
		snap, err := domain.Subscribe(next.Snapshot, in.StudentID, in.ChannelID)
		if err != nil {
			return err
		}
		next.Snapshot = snap
		return nil
	})
	if err != nil {
		result := "error"
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			result = "insufficient_funds"
		case errors.Is(err, domain.ErrAlreadySubscribed):
			result = "already_subscribed"
		}
		metrics.SubscriptionsTotal.WithLabelValues(result).Inc()
		s.log.Info().Err(err).Str("student_id", in.StudentID).Str("channel_id", in.ChannelID).Msg("subscribe rejected")
		return nil, err
	}
	metrics.SubscriptionsTotal.WithLabelValues("ok").Inc()

	if dedupKey != "" {
		if markErr := s.dedup.Mark(ctx, dedupKey); markErr != nil {
			s.log.Warn().Err(markErr).Str("student_id", in.StudentID).Msg("failed to set dedup key")
		}
	}

	student, _, _ := next.Snapshot.FindUser(in.StudentID)
	s.log.Info().
		Str("student_id", in.StudentID).
		Str("channel_id", in.ChannelID).
		Int64("balance", student.WalletBalance).
		Msg("subscription completed")

	return &ports.WalletResult{
		StudentID:     student.ID,
		WalletBalance: student.WalletBalance,
		ChannelID:     in.ChannelID,
	}, nil
}

// Recharge credits the configured fixed amount.
func (s *ledgerService) Recharge(ctx context.Context, studentID string) (*ports.WalletResult, error) {
	next, err := s.state.Mutate(ctx, func(next *domain.State) error {
		snap, err := domain.Recharge(next.Snapshot, studentID, s.rechargeAmount)
		if err != nil {
			return err
		}
		next.Snapshot = snap
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RechargesTotal.Inc()
	student, _, _ := next.Snapshot.FindUser(studentID)
	s.log.Info().Str("student_id", studentID).Int64("amount", s.rechargeAmount).Msg("wallet recharged")
	return &ports.WalletResult{StudentID: student.ID, WalletBalance: student.WalletBalance}, nil
}

func (s *ledgerService) Wallet(_ context.Context, studentID string) (*ports.WalletResult, error) {
	u, _, ok := s.state.View().Snapshot.FindUser(studentID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &ports.WalletResult{StudentID: u.ID, WalletBalance: u.WalletBalance}, nil
}
