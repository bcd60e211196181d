package domain

type ThreadID string

type RunID string

// RunStatus is the remote service's run lifecycle: queued -> in_progress ->
// one of the terminal states. Only "completed" is a successful terminal.
type RunStatus string

const (
	RunStatusQueued     RunStatus = "queued"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
	RunStatusCancelled  RunStatus = "cancelled"
	RunStatusExpired    RunStatus = "expired"
)

func (s RunStatus) Terminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled, RunStatusExpired:
		return true
	}

	return false
}

func (s RunStatus) Succeeded() bool {
	return s == RunStatusCompleted
}

// Run is one execution of the assistant against a thread. It only lives for
// the duration of a single exchange and is never persisted.
type Run struct {
	ID     RunID
	Status RunStatus
}

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one entry in a thread, newest first when listed.
type Message struct {
	Role MessageRole
	Text string
}
