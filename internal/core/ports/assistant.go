package ports

import "context"

// AssistantGateway performs one round trip to the remote text model.
type AssistantGateway interface {
	Complete(ctx context.Context, preamble, question string) (string, error)
}

// AssistantService answers user questions in the platform persona. Gateway
// failures never surface as errors.
type AssistantService interface {
	Ask(ctx context.Context, question string) (string, error)
}
