// Package openai talks to the OpenAI Assistants v2 HTTP API (threads,
// messages, runs) and exposes it through the AssistantGateway port.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/insight-cli/internal/domain"
	"github.com/bnema/insight-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

const betaHeaderValue = "assistants=v2"

type Adapter struct {
	BaseURL        string
	APIKey         string
	AssistantID    string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.AssistantGateway = Adapter{}

type threadResponse struct {
	ID string `json:"id"`
}

type runResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type messageListResponse struct {
	Data []messageEntry `json:"data"`
}

type messageEntry struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string     `json:"type"`
	Text *textBlock `json:"text"`
}

type textBlock struct {
	Value string `json:"value"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (a Adapter) CreateThread(ctx context.Context) (domain.ThreadID, error) {
	var payload threadResponse
	if err := a.doJSON(ctx, http.MethodPost, "threads", struct{}{}, &payload); err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	if payload.ID == "" {
		return "", errors.New("thread response missing id")
	}

	return domain.ThreadID(payload.ID), nil
}

func (a Adapter) AddUserMessage(ctx context.Context, thread domain.ThreadID, text string) error {
	body := map[string]string{
		"role":    string(domain.RoleUser),
		"content": text,
	}
	if err := a.doJSON(ctx, http.MethodPost, fmt.Sprintf("threads/%s/messages", thread), body, nil); err != nil {
		return fmt.Errorf("add user message: %w", err)
	}

	return nil
}

func (a Adapter) StartRun(ctx context.Context, thread domain.ThreadID) (domain.Run, error) {
	body := map[string]string{"assistant_id": a.AssistantID}

	var payload runResponse
	if err := a.doJSON(ctx, http.MethodPost, fmt.Sprintf("threads/%s/runs", thread), body, &payload); err != nil {
		return domain.Run{}, fmt.Errorf("start run: %w", err)
	}
	if payload.ID == "" {
		return domain.Run{}, errors.New("run response missing id")
	}

	return domain.Run{ID: domain.RunID(payload.ID), Status: domain.RunStatus(payload.Status)}, nil
}

func (a Adapter) GetRun(ctx context.Context, thread domain.ThreadID, run domain.RunID) (domain.Run, error) {
	var payload runResponse
	if err := a.doJSON(ctx, http.MethodGet, fmt.Sprintf("threads/%s/runs/%s", thread, run), nil, &payload); err != nil {
		return domain.Run{}, fmt.Errorf("retrieve run: %w", err)
	}

	return domain.Run{ID: domain.RunID(payload.ID), Status: domain.RunStatus(payload.Status)}, nil
}

func (a Adapter) ListMessages(ctx context.Context, thread domain.ThreadID) ([]domain.Message, error) {
	var payload messageListResponse
	if err := a.doJSON(ctx, http.MethodGet, fmt.Sprintf("threads/%s/messages", thread), nil, &payload); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]domain.Message, 0, len(payload.Data))
	for _, entry := range payload.Data {
		messages = append(messages, domain.Message{
			Role: domain.MessageRole(entry.Role),
			Text: firstTextValue(entry),
		})
	}

	return messages, nil
}

func firstTextValue(entry messageEntry) string {
	for _, block := range entry.Content {
		if block.Type == "text" && block.Text != nil {
			return block.Text.Value
		}
	}

	return ""
}

func (a Adapter) doJSON(ctx context.Context, method, path string, body any, out any) error {
	endpoint, err := buildAPIURL(a.BaseURL, path)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.APIKey)
	req.Header.Set("OpenAI-Beta", betaHeaderValue)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("call assistant service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	var payload apiErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return &domain.StatusError{Status: resp.StatusCode}
	}

	return &domain.StatusError{Status: resp.StatusCode, Detail: payload.Error.Message}
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + "/" + strings.TrimLeft(path, "/"), nil
}

func (a Adapter) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}

	return http.DefaultClient
}

func (a Adapter) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := a.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}
