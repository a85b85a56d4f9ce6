package pulse

import (
	"context"
	"sync"
)

// mockFetcher is a mock implementation of the Fetcher interface. Bodies are
// keyed by feed URL; a missing key simulates total proxy exhaustion.
type mockFetcher struct {
	mu     sync.Mutex
	bodies map[string]string
	calls  []string
}

func newMockFetcher(bodies map[string]string) *mockFetcher {
	return &mockFetcher{bodies: bodies}
}

func (m *mockFetcher) FetchRaw(ctx context.Context, url string) (string, bool) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	body, ok := m.bodies[url]
	return body, ok
}

func (m *mockFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// panicFetcher simulates a programming fault inside the fan-out.
type panicFetcher struct{}

func (panicFetcher) FetchRaw(ctx context.Context, url string) (string, bool) {
	panic("fault in pipeline")
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu        sync.Mutex
	errorMsgs []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	m.errorMsgs = append(m.errorMsgs, msg)
	m.mu.Unlock()
}
