package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/way-campus/way/internal/api/metrics"
	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

const (
	// AssistantPreamble is sent ahead of every question.
	AssistantPreamble = "You are WAY Assistant, the study helper of the WAY university platform. " +
		"Answer students and professors briefly and politely, in the language of the question."

	// AssistantApology replaces any answer the gateway could not produce.
	AssistantApology = "Sorry, I can't answer right now. Please try again in a moment."

	defaultAssistantTimeout = 20 * time.Second
)

type assistantService struct {
	gateway ports.AssistantGateway
	timeout time.Duration
	log     zerolog.Logger
}

// NewAssistantService wraps gateway with the persona preamble, a timeout and
// the apology fallback.
func NewAssistantService(gateway ports.AssistantGateway, timeout time.Duration, log zerolog.Logger) ports.AssistantService {
	if timeout <= 0 {
		timeout = defaultAssistantTimeout
	}
	return &assistantService{gateway: gateway, timeout: timeout, log: log}
}

// Ask returns the model's answer, or AssistantApology when the gateway fails
// or times out. Only an empty question is an error.
func (s *assistantService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("ask: empty question: %w", domain.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	answer, err := s.gateway.Complete(ctx, AssistantPreamble, question)
	metrics.AssistantDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Warn().Err(err).Msg("assistant gateway failed, answering with apology")
		metrics.AssistantRequestsTotal.WithLabelValues("apology").Inc()
		return AssistantApology, nil
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		s.log.Warn().Msg("assistant gateway returned empty answer")
		metrics.AssistantRequestsTotal.WithLabelValues("apology").Inc()
		return AssistantApology, nil
	}
	metrics.AssistantRequestsTotal.WithLabelValues("answered").Inc()
	return answer, nil
}
