package iconcss

import (
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"testing"
)

const (
	demoHome      = `{"prefix":"demo","icons":{"home":{"body":"<path d=\"M0 0\"/>"}}}`
	demoHomeColor = `{"prefix":"demo","icons":{"home":{"body":"<path d=\"M0 0\" fill=\"currentColor\"/>"}}}`
)

// memoryLoader is an in-memory CollectionLoader that counts lookups.
type memoryLoader struct {
	mu      sync.Mutex
	sources map[string]CollectionSource
	errs    map[string]error
	calls   map[string]int
}

func newMemoryLoader() *memoryLoader {
	return &memoryLoader{
		sources: map[string]CollectionSource{},
		errs:    map[string]error{},
		calls:   map[string]int{},
	}
}

func (m *memoryLoader) add(name, data string) *memoryLoader {
	return m.addFormat(name, data, CollectionJSON)
}

func (m *memoryLoader) addFormat(name, data string, format CollectionFormat) *memoryLoader {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[name] = CollectionSource{Name: name, Format: format, Data: []byte(data)}
	return m
}

func (m *memoryLoader) fail(name string, err error) *memoryLoader {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[name] = err
	return m
}

func (m *memoryLoader) LoadCollection(name string) (*CollectionSource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls[name]++
	if err := m.errs[name]; err != nil {
		return nil, err
	}
	src, ok := m.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}
	return &src, nil
}

func (m *memoryLoader) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func newTestResolver(t *testing.T, loader CollectionLoader, opts ...Option) *Resolver {
	t.Helper()

	r, err := NewResolver(append([]Option{WithCollectionLoader(loader)}, opts...)...)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	return r
}

// decodePayload extracts and decodes the SVG from a url("data:...") value.
func decodePayload(t *testing.T, value string) string {
	t.Helper()

	const marker = "base64,"
	start := strings.Index(value, marker)
	if start < 0 {
		t.Fatalf("no base64 payload in %q", value)
	}
	rest := value[start+len(marker):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		t.Fatalf("unterminated payload in %q", value)
	}
	raw, err := base64.StdEncoding.DecodeString(rest[:end])
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	return string(raw)
}
