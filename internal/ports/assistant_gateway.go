package ports

import (
	"context"

	"github.com/bnema/insight-cli/internal/domain"
)

// AssistantGateway is the narrow surface the session needs from the remote
// conversational service. Concrete transports implement it; retry and polling
// logic never sees HTTP.
type AssistantGateway interface {
	CreateThread(ctx context.Context) (domain.ThreadID, error)
	AddUserMessage(ctx context.Context, thread domain.ThreadID, text string) error
	StartRun(ctx context.Context, thread domain.ThreadID) (domain.Run, error)
	GetRun(ctx context.Context, thread domain.ThreadID, run domain.RunID) (domain.Run, error)
	ListMessages(ctx context.Context, thread domain.ThreadID) ([]domain.Message, error)
}
