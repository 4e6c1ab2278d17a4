package client

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/engagekit/go-engage/xmlmap"
)

// MockSubmitter is a mock implementation of Submitter
type MockSubmitter struct {
	mu sync.Mutex

	// Expectations
	SubmitFunc    func(ctx context.Context, payload *xmlmap.Value) (*xmlmap.Value, error)
	SubmitRawFunc func(ctx context.Context, doc []byte) (*xmlmap.Value, error)
	LoginFunc     func(ctx context.Context) (string, error)

	// State
	Payloads []*xmlmap.Value
	RawDocs  [][]byte
	Logins   int
}

func (m *MockSubmitter) Submit(ctx context.Context, payload *xmlmap.Value) (*xmlmap.Value, error) {
	m.mu.Lock()
	m.Payloads = append(m.Payloads, payload)
	m.mu.Unlock()
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, payload)
	}
	return xmlmap.NewMap(), nil
}

func (m *MockSubmitter) SubmitRaw(ctx context.Context, doc []byte) (*xmlmap.Value, error) {
	m.mu.Lock()
	m.RawDocs = append(m.RawDocs, doc)
	m.mu.Unlock()
	if m.SubmitRawFunc != nil {
		return m.SubmitRawFunc(ctx, doc)
	}
	return xmlmap.NewMap(), nil
}

func (m *MockSubmitter) Login(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.Logins++
	m.mu.Unlock()
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx)
	}
	return "mock-session-id", nil
}

// lastPayload returns the most recent payload Submit received.
func (m *MockSubmitter) lastPayload() *xmlmap.Value {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Payloads) == 0 {
		return nil
	}
	return m.Payloads[len(m.Payloads)-1]
}

// payloadXML renders a recorded payload exactly as the protocol layer
// would encode it, for wire-shape assertions.
func payloadXML(t *testing.T, payload *xmlmap.Value) string {
	t.Helper()
	require.NotNil(t, payload, "no payload was submitted")
	data, err := xmlmap.Marshal("Envelope", payload.Get("Envelope"))
	require.NoError(t, err)
	return string(data)
}
