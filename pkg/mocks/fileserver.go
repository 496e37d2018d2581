package mocks

import "github.com/user/uibench/pkg/ports"

// FileServer is a mock implementation of ports.FileServer.
type FileServer struct {
	StartFunc    func() error
	BaseURLFunc  func() string
	ShutdownFunc func() error

	Started   bool
	Shutdowns int
}

func (m *FileServer) Start() error {
	m.Started = true
	if m.StartFunc != nil {
		return m.StartFunc()
	}
	return nil
}

func (m *FileServer) BaseURL() string {
	if m.BaseURLFunc != nil {
		return m.BaseURLFunc()
	}
	return "http://127.0.0.1:4141"
}

func (m *FileServer) Shutdown() error {
	m.Shutdowns++
	if m.ShutdownFunc != nil {
		return m.ShutdownFunc()
	}
	return nil
}

var _ ports.FileServer = (*FileServer)(nil)
