package transfer

import (
	"bytes"
	"sync"
)

// MockDevice simulates the radio's serial port for testing
type MockDevice struct {
	mu        sync.Mutex
	writes    [][]byte
	responses [][]byte
	respIdx   int
	gates     map[int]chan struct{}
	reads     int
	readErr   error
	writeErr  error
	closed    bool
	resetAt   []int
}

func NewMockDevice() *MockDevice {
	return &MockDevice{
		responses: make([][]byte, 0),
		gates:     make(map[int]chan struct{}),
	}
}

// Read returns the next queued response, or nothing (a timeout) when the
// queue is empty.
func (m *MockDevice) Read(p []byte) (int, error) {
	m.mu.Lock()
	gate := m.gates[m.reads]
	m.reads++
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return 0, m.readErr
	}
	if m.respIdx < len(m.responses) {
		resp := m.responses[m.respIdx]
		m.respIdx++
		return copy(p, resp), nil
	}
	return 0, nil
}

func (m *MockDevice) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.writes = append(m.writes, append([]byte(nil), p...))
	return len(p), nil
}

func (m *MockDevice) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MockDevice) ResetInputBuffer() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetAt = append(m.resetAt, len(m.writes))
	return nil
}

func (m *MockDevice) AddResponse(resp ...[]byte) {
	m.responses = append(m.responses, resp...)
}

func (m *MockDevice) AddAcks(n int) {
	for i := 0; i < n; i++ {
		m.responses = append(m.responses, []byte{'A'})
	}
}

// Gate blocks the read with the given 0-based index until the returned
// channel is closed.
func (m *MockDevice) Gate(read int) chan struct{} {
	ch := make(chan struct{})
	m.gates[read] = ch
	return ch
}

func (m *MockDevice) SetReadError(err error) {
	m.readErr = err
}

func (m *MockDevice) SetWriteError(err error) {
	m.writeErr = err
}

func (m *MockDevice) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *MockDevice) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *MockDevice) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

// countWrites returns how many writes equal frame.
func (m *MockDevice) countWrites(frame []byte) int {
	n := 0
	for _, w := range m.Writes() {
		if bytes.Equal(w, frame) {
			n++
		}
	}
	return n
}

func openMock(m *MockDevice) OpenFunc {
	return func(PortConfig) (Port, error) {
		return m, nil
	}
}

// Mock logger for testing
type MockLogger struct {
	mu        sync.Mutex
	debugMsgs []string
	infoMsgs  []string
	errorMsgs []string
}

func (l *MockLogger) Debug(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugMsgs = append(l.debugMsgs, msg)
}

func (l *MockLogger) Info(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoMsgs = append(l.infoMsgs, msg)
}

func (l *MockLogger) Error(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorMsgs = append(l.errorMsgs, msg)
}
