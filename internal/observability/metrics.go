package observability

import "sync"

// Metrics provides basic in-memory counters for store operations.
type Metrics struct {
	mu             sync.Mutex
	operationCount map[string]int64
	errorCount     map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		operationCount: make(map[string]int64),
		errorCount:     make(map[string]int64),
	}
}

// RecordOperation increments the counter for a store operation.
func (m *Metrics) RecordOperation(op string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operationCount[op]++
}

// RecordError increments error counters, keyed by operation and error code.
func (m *Metrics) RecordError(op, code string) {
	if m == nil {
		return
	}
	key := op + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// OperationCount reports how often an operation ran.
func (m *Metrics) OperationCount(op string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.operationCount[op]
}

// ErrorCount reports how often an operation failed with the given code.
func (m *Metrics) ErrorCount(op, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errorCount[op+"|"+code]
}
