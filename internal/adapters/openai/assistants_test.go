package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/insight-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(server *httptest.Server) Adapter {
	return Adapter{
		BaseURL:     server.URL + "/v1",
		APIKey:      "sk-test-123",
		AssistantID: "asst_abc",
		HTTPClient:  server.Client(),
	}
}

func assertCommonHeaders(t *testing.T, r *http.Request) {
	t.Helper()

	assert.Equal(t, "Bearer sk-test-123", r.Header.Get("Authorization"))
	assert.Equal(t, "assistants=v2", r.Header.Get("OpenAI-Beta"))
}

func TestCreateThreadParsesID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/threads", r.URL.Path)
		assertCommonHeaders(t, r)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"thread_123","object":"thread"}`))
	}))
	t.Cleanup(server.Close)

	thread, err := newTestAdapter(server).CreateThread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThreadID("thread_123"), thread)
}

func TestCreateThreadRejectsMissingID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"thread"}`))
	}))
	t.Cleanup(server.Close)

	_, err := newTestAdapter(server).CreateThread(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestAddUserMessageSendsRoleAndContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/threads/thread_123/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assertCommonHeaders(t, r)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user", body["role"])
		assert.Equal(t, "How are sales?", body["content"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	}))
	t.Cleanup(server.Close)

	err := newTestAdapter(server).AddUserMessage(context.Background(), "thread_123", "How are sales?")
	require.NoError(t, err)
}

func TestStartRunSendsAssistantID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/threads/thread_123/runs", r.URL.Path)
		assertCommonHeaders(t, r)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asst_abc", body["assistant_id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"run_1","status":"queued"}`))
	}))
	t.Cleanup(server.Close)

	run, err := newTestAdapter(server).StartRun(context.Background(), "thread_123")
	require.NoError(t, err)
	assert.Equal(t, domain.RunID("run_1"), run.ID)
	assert.Equal(t, domain.RunStatusQueued, run.Status)
}

func TestGetRunParsesStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/threads/thread_123/runs/run_1", r.URL.Path)
		assertCommonHeaders(t, r)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"run_1","status":"in_progress"}`))
	}))
	t.Cleanup(server.Close)

	run, err := newTestAdapter(server).GetRun(context.Background(), "thread_123", "run_1")
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusInProgress, run.Status)
}

func TestListMessagesExtractsTextBlocks(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/threads/thread_123/messages", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"role":"assistant","content":[{"type":"text","text":{"value":"Sales Report\nQ1 was strong"}}]},
			{"role":"user","content":[{"type":"text","text":{"value":"How are sales?"}}]},
			{"role":"assistant","content":[{"type":"image_file"}]}
		]}`))
	}))
	t.Cleanup(server.Close)

	messages, err := newTestAdapter(server).ListMessages(context.Background(), "thread_123")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, domain.RoleAssistant, messages[0].Role)
	assert.Equal(t, "Sales Report\nQ1 was strong", messages[0].Text)
	assert.Equal(t, domain.RoleUser, messages[1].Role)
	assert.Empty(t, messages[2].Text, "non-text content yields empty text")
}

func TestErrorResponsesBecomeStatusErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		body   string
		detail string
	}{
		{401, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`, "Incorrect API key provided"},
		{404, `{"error":{"message":"No assistant found","type":"invalid_request_error"}}`, "No assistant found"},
		{429, `{"error":{"message":"Rate limit reached","type":"rate_limit_error"}}`, "Rate limit reached"},
		{500, `not json at all`, ""},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		}))

		_, err := newTestAdapter(server).CreateThread(context.Background())
		require.Error(t, err)

		var statusErr *domain.StatusError
		require.True(t, errors.As(err, &statusErr), "status %d", tc.status)
		assert.Equal(t, tc.status, statusErr.Status)
		assert.Equal(t, tc.detail, statusErr.Detail)

		server.Close()
	}
}

func TestRequestTimeoutAppliesWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"thread_123"}`))
	}))
	t.Cleanup(server.Close)

	adapter := newTestAdapter(server)
	adapter.RequestTimeout = 20 * time.Millisecond

	_, err := adapter.CreateThread(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create thread")
}

func TestBuildAPIURLValidation(t *testing.T) {
	t.Parallel()

	_, err := buildAPIURL("", "threads")
	require.Error(t, err)

	_, err = buildAPIURL("ftp://api.example.com", "threads")
	require.Error(t, err)

	endpoint, err := buildAPIURL("https://api.openai.com/v1/", "/threads")
	require.NoError(t, err)
	assert.Equal(t, "https://api.openai.com/v1/threads", endpoint)
}
