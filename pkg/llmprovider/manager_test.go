package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealership-assistant/pkg/log"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	failCount  int // fail this many calls, then succeed
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	if m.failCount > 0 {
		m.failCount--
		return nil, errors.New("transient mock error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: &Response{Text: "Hello from primary provider", ProviderName: "primary", ModelName: "primary-model"},
	}
	fallback := &mockProvider{
		name:     "fallback",
		model:    "fallback-model",
		response: &Response{Text: "Hello from fallback"},
	}

	manager := NewManager([]Provider{primary, fallback}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Hello from primary provider" {
		t.Errorf("unexpected response text: %q", resp.Text)
	}
	if primary.callCount != 1 {
		t.Errorf("expected 1 call to primary, got %d", primary.callCount)
	}
	if fallback.callCount != 0 {
		t.Errorf("fallback should not have been called, got %d calls", fallback.callCount)
	}
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: true,
	}
	fallback := &mockProvider{
		name:     "fallback",
		model:    "fallback-model",
		response: &Response{Text: "Hello from fallback", ProviderName: "fallback"},
	}

	manager := NewManager([]Provider{primary, fallback}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Hello from fallback" {
		t.Errorf("unexpected response text: %q", resp.Text)
	}
	if primary.callCount != 2 {
		t.Errorf("expected 2 retry calls to primary, got %d", primary.callCount)
	}
	if fallback.callCount != 1 {
		t.Errorf("expected 1 call to fallback, got %d", fallback.callCount)
	}
}

func TestGenerateContent_RetryThenSucceed(t *testing.T) {
	flaky := &mockProvider{
		name:      "flaky",
		model:     "flaky-model",
		failCount: 1,
		response:  &Response{Text: "recovered"},
	}

	manager := NewManager([]Provider{flaky}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "recovered" {
		t.Errorf("unexpected response text: %q", resp.Text)
	}
	if flaky.callCount != 2 {
		t.Errorf("expected 2 calls (1 failure + 1 success), got %d", flaky.callCount)
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	p1 := &mockProvider{name: "p1", model: "m1", shouldFail: true}
	p2 := &mockProvider{name: "p2", model: "m2", shouldFail: true}

	manager := NewManager([]Provider{p1, p2}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error when all providers fail")
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	fallback := &mockProvider{name: "fallback", model: "m2", response: &Response{Text: "should not see"}}

	manager := NewManager([]Provider{primary, fallback}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if fallback.callCount != 0 {
		t.Errorf("fallback should not have been tried, got %d calls", fallback.callCount)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{RetryAttempts: 1}, log.NewNop())

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}
