// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/user/uibench/pkg/ports"
)

// InferenceClient is a mock implementation of ports.InferenceClient.
type InferenceClient struct {
	CompleteFunc func(ctx context.Context, req ports.InferenceRequest) (string, error)

	// Requests records every request received (for test verification).
	Requests []ports.InferenceRequest
}

func (m *InferenceClient) Complete(ctx context.Context, req ports.InferenceRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "", nil
}

var _ ports.InferenceClient = (*InferenceClient)(nil)
