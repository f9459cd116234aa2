package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobquest/internal/catalog"
	"jobquest/internal/model"
	"jobquest/internal/questions"
	"jobquest/internal/service"
)

// DefaultTimeout bounds every request when Config.Timeout is zero
const DefaultTimeout = 30 * time.Second

// Config configures a Client
type Config struct {
	BaseURL string
	Mock    bool // serve the built-in questionnaire and locally derived results, no network
	Timeout time.Duration
}

// Client is a thin wrapper over the jobquest HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mock       *mockBackend
}

// New creates a client from cfg
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	if cfg.Mock {
		c.mock = newMockBackend()
	}
	return c
}

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// GetQuestionnaire returns the questions in display order
func (c *Client) GetQuestionnaire(ctx context.Context) ([]model.Question, error) {
	if c.mock != nil {
		return c.mock.bank.List(), nil
	}

	var resp struct {
		Questions []model.Question `json:"questions"`
	}
	if err := c.do(ctx, http.MethodGet, "/questionnaire", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// SubmitQuestionnaire submits answers and returns the new assessment id
func (c *Client) SubmitQuestionnaire(ctx context.Context, answers model.Answers) (string, error) {
	if c.mock != nil {
		return c.mock.submit(answers), nil
	}

	var resp struct {
		AssessmentID string `json:"assessment_id"`
	}
	body := map[string]model.Answers{"answers": answers}
	if err := c.do(ctx, http.MethodPost, "/submit_questionnaire", body, &resp); err != nil {
		return "", err
	}
	if resp.AssessmentID == "" {
		return "", fmt.Errorf("submit response carried no assessment_id")
	}
	return resp.AssessmentID, nil
}

// GetResults fetches and normalizes the results of an assessment
func (c *Client) GetResults(ctx context.Context, id string) (*model.Results, error) {
	if c.mock != nil {
		return c.mock.results(id)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/results/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, err
	}
	return decodeResults(raw)
}

// CheckHealth returns the reported service status
func (c *Client) CheckHealth(ctx context.Context) (string, error) {
	if c.mock != nil {
		return "ok", nil
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// errorDetail extracts a string detail from an error body, if any
func errorDetail(data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

// mockBackend derives results locally from the fixed-choice answers
type mockBackend struct {
	bank    *questions.Bank
	matcher *service.MatcherService

	mu      sync.Mutex
	answers map[string]model.Answers
}

func newMockBackend() *mockBackend {
	jobs := catalog.Default()
	return &mockBackend{
		bank:    questions.NewBank(),
		matcher: service.NewMatcherService(jobs, len(jobs)),
		answers: make(map[string]model.Answers),
	}
}

func (m *mockBackend) submit(answers model.Answers) string {
	id := "mock-" + uuid.NewString()
	m.mu.Lock()
	m.answers[id] = answers.Clone()
	m.mu.Unlock()
	return id
}

func (m *mockBackend) results(id string) (*model.Results, error) {
	m.mu.Lock()
	answers, ok := m.answers[id]
	m.mu.Unlock()
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Detail: "assessment not found"}
	}

	profile := service.FixedProfile(answers)
	profile.AdditionalInsights = model.NoAdditionalInsights
	return &model.Results{
		AssessmentID:    id,
		CreatedAt:       time.Now().UTC(),
		Profile:         profile.Public(),
		Recommendations: m.matcher.Match(profile),
	}, nil
}
