package maptags

import (
	"sync"

	"github.com/jt-helsinki/stripe-connect/providers"
)

type MapTags struct {
	data    map[string]interface{}
	logTags []string
	mu      sync.RWMutex
}

func New(data map[string]interface{}, logTags []string) *MapTags {
	if data == nil {
		data = map[string]interface{}{}
	}
	return &MapTags{
		data:    data,
		logTags: logTags,
	}
}

func (m *MapTags) LogTags() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.logTags) == 0 {
		return m.data
	}
	data := make(map[string]any)
	for _, tag := range m.logTags {
		if val, ok := m.data[tag]; ok {
			data[tag] = val
		}
	}
	return data
}

func (m *MapTags) WithOperation(operation string) providers.Tags {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data["operation"] = operation
	return m
}

func (m *MapTags) WithAccount(accountID string) providers.Tags {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data["account"] = accountID
	return m
}

func (m *MapTags) WithContextID(contextID string) providers.Tags {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data["context_id"] = contextID
	return m
}

func (m *MapTags) WithError(err error) providers.Tags {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data["error"] = err
	return m
}

func (m *MapTags) GetOperation() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	operation, ok := m.data["operation"].(string)
	return operation, ok
}

func (m *MapTags) GetAccount() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	accountID, ok := m.data["account"].(string)
	return accountID, ok
}

func (m *MapTags) GetContextID() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	contextID, ok := m.data["context_id"].(string)
	return contextID, ok
}

func (m *MapTags) GetError() (error, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	err, ok := m.data["error"].(error)
	return err, ok
}
