package conda

import (
	"context"
)

// MockCondaClient implements ReportSource for testing with scripted output
type MockCondaClient struct {
	ctx context.Context

	// Output is returned by Report when ReportError is nil.
	Output string

	// Hook for testing error scenarios
	ReportError error

	// Calls counts Report invocations.
	Calls int
}

// NewMockCondaClient creates a new MockCondaClient
func NewMockCondaClient() *MockCondaClient {
	return &MockCondaClient{
		ctx: context.Background(),
	}
}

// SetReport scripts the report output
func (m *MockCondaClient) SetReport(output string) {
	m.Output = output
}

// WithContext returns the mock bound to ctx
func (m *MockCondaClient) WithContext(ctx context.Context) ReportSource {
	m.ctx = ctx
	return m
}

// Report returns the scripted output or error
func (m *MockCondaClient) Report() (string, error) {
	m.Calls++
	if m.ReportError != nil {
		return "", m.ReportError
	}
	return m.Output, nil
}
