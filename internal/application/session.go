package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/insight-cli/internal/domain"
	"github.com/bnema/insight-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	maxAttempts    = 3
	baseRetryDelay = time.Second
	pollInterval   = time.Second
	maxPolls       = 30
)

// Session owns one conversation thread with the remote assistant. The thread
// is created lazily on first use and dropped whenever the service reports it
// unusable, so the next exchange starts fresh.
//
// A mutex serializes exchanges: the thread id is a single-writer field and
// interleaved runs on one thread would corrupt each other.
type Session struct {
	gateway ports.AssistantGateway
	clock   ports.Clock
	logger  *zap.Logger

	mu     sync.Mutex
	thread domain.ThreadID
}

func NewSession(gateway ports.AssistantGateway, clock ports.Clock, logger *zap.Logger) *Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		gateway: gateway,
		clock:   clock,
		logger:  logger,
	}
}

// EnsureThread returns the current thread id, creating a thread if the
// session does not hold one yet.
func (s *Session) EnsureThread(ctx context.Context) (domain.ThreadID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureThreadLocked(ctx); err != nil {
		s.logger.Warn("thread init failed", zap.Error(err))
		s.invalidateOn(err)
		return "", normalizeError(err)
	}

	return s.thread, nil
}

// SendMessage exchanges one user utterance for one assistant reply. Transient
// remote failures are retried internally; everything that surfaces is one of
// the domain sentinel errors.
func (s *Session) SendMessage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reply, err := s.exchange(ctx, text)
	if err != nil {
		s.logger.Warn("assistant exchange failed", zap.Error(err))
		s.invalidateOn(err)
		return "", normalizeError(err)
	}

	return reply, nil
}

func (s *Session) exchange(ctx context.Context, text string) (string, error) {
	if err := s.ensureThreadLocked(ctx); err != nil {
		return "", err
	}
	thread := s.thread

	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.gateway.AddUserMessage(ctx, thread, text)
	})
	if err != nil {
		return "", fmt.Errorf("append user message: %w", err)
	}

	var run domain.Run
	err = s.withRetry(ctx, func(ctx context.Context) error {
		var startErr error
		run, startErr = s.gateway.StartRun(ctx, thread)
		return startErr
	})
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}

	if err := s.awaitRun(ctx, thread, run.ID); err != nil {
		return "", err
	}

	var messages []domain.Message
	err = s.withRetry(ctx, func(ctx context.Context) error {
		var listErr error
		messages, listErr = s.gateway.ListMessages(ctx, thread)
		return listErr
	})
	if err != nil {
		return "", fmt.Errorf("list thread messages: %w", err)
	}

	return latestAssistantReply(messages)
}

// awaitRun polls run status once per interval until the run reaches a
// terminal state or the poll budget is spent. The budget is a hard bound:
// after maxPolls status retrievals the run is declared timed out and no
// further poll is issued.
func (s *Session) awaitRun(ctx context.Context, thread domain.ThreadID, runID domain.RunID) error {
	for poll := 1; ; poll++ {
		var current domain.Run
		err := s.withRetry(ctx, func(ctx context.Context) error {
			var getErr error
			current, getErr = s.gateway.GetRun(ctx, thread, runID)
			return getErr
		})
		if err != nil {
			return fmt.Errorf("retrieve run status: %w", err)
		}

		if current.Status.Succeeded() {
			return nil
		}
		if current.Status.Terminal() {
			return fmt.Errorf("%w: run %s", domain.ErrRunTerminated, current.Status)
		}

		if poll >= maxPolls {
			return domain.ErrTimeout
		}

		if err := s.clock.Sleep(ctx, pollInterval); err != nil {
			return err
		}
	}
}

func (s *Session) ensureThreadLocked(ctx context.Context) error {
	if s.thread != "" {
		return nil
	}

	thread, err := s.gateway.CreateThread(ctx)
	if err != nil {
		return fmt.Errorf("create thread: %w", err)
	}

	s.thread = thread
	return nil
}

// withRetry re-invokes op up to maxAttempts times with exponential backoff
// between attempts. Permanent failures (401/404 class) and context
// cancellation propagate immediately.
func (s *Session) withRetry(ctx context.Context, op func(context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt+1 >= maxAttempts {
			return err
		}

		if sleepErr := s.clock.Sleep(ctx, baseRetryDelay<<attempt); sleepErr != nil {
			return sleepErr
		}
	}
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		return !statusErr.Permanent()
	}

	return true
}

// invalidateOn clears the thread id when the failure means the thread (or
// our access to it) is gone, so the next call starts a fresh one.
func (s *Session) invalidateOn(err error) {
	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) && statusErr.Permanent() {
		s.thread = ""
		return
	}

	if strings.Contains(strings.ToLower(err.Error()), "thread not found") {
		s.thread = ""
	}
}

func latestAssistantReply(messages []domain.Message) (string, error) {
	for _, message := range messages {
		if message.Role != domain.RoleAssistant {
			continue
		}
		if strings.TrimSpace(message.Text) == "" {
			return "", domain.ErrEmptyResponse
		}
		return message.Text, nil
	}

	return "", domain.ErrEmptyResponse
}

// normalizeError maps whatever went wrong onto the fixed set of user-facing
// sentinels. Anything already expressed as a sentinel passes through.
func normalizeError(err error) error {
	for _, sentinel := range []error{
		domain.ErrConfiguration,
		domain.ErrInvalidInput,
		domain.ErrRunTerminated,
		domain.ErrTimeout,
		domain.ErrEmptyResponse,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.Status == 401:
			return domain.ErrAuthentication
		case statusErr.Status == 404:
			return domain.ErrNotFound
		case statusErr.Status == 429:
			return domain.ErrRateLimited
		case statusErr.Status >= 500:
			return domain.ErrServiceUnavailable
		}
	}

	return domain.ErrRequestFailed
}
