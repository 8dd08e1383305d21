package store

// Notes:
// - countingLoader stands in for the provider so tests can assert how many
//   lookups reached it; that count is the observable contract of the store.

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alnah/go-iconcss/internal/collections"
	"github.com/alnah/go-iconcss/internal/iconset"
)

const demoJSON = `{"prefix":"demo","icons":{"home":{"body":"<path d=\"M0 0\"/>"}}}`

// countingLoader serves collections from memory and counts Load calls per name.
type countingLoader struct {
	mu      sync.Mutex
	sources map[string]string
	errs    map[string]error
	calls   map[string]int
	gate    chan struct{} // when non-nil, Load blocks until closed
}

func newCountingLoader(sources map[string]string) *countingLoader {
	return &countingLoader{
		sources: sources,
		errs:    map[string]error{},
		calls:   map[string]int{},
	}
}

func (l *countingLoader) Load(name string) (*collections.Source, error) {
	l.mu.Lock()
	l.calls[name]++
	gate := l.gate
	data, ok := l.sources[name]
	err := l.errs[name]
	l.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", collections.ErrNotFound, name)
	}
	return &collections.Source{Name: name, Origin: "memory:" + name, Format: iconset.FormatJSON, Data: []byte(data)}, nil
}

func (l *countingLoader) Calls(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[name]
}

func (l *countingLoader) set(name, data string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[name] = data
}

// ---------------------------------------------------------------------------
// TestStore_Get - Cache hits, misses, and absence
// ---------------------------------------------------------------------------

func TestStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("loads once and caches", func(t *testing.T) {
		t.Parallel()

		loader := newCountingLoader(map[string]string{"demo": demoJSON})
		s := New(loader)

		first, err := s.Get("demo")
		if err != nil {
			t.Fatalf("Get(demo) error = %v", err)
		}
		second, err := s.Get("demo")
		if err != nil {
			t.Fatalf("Get(demo) second call error = %v", err)
		}
		if first != second {
			t.Error("Get(demo) returned different sets for the same name")
		}
		if got := loader.Calls("demo"); got != 1 {
			t.Errorf("provider calls = %d, want 1", got)
		}
		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
	})

	t.Run("absence is cached", func(t *testing.T) {
		t.Parallel()

		loader := newCountingLoader(map[string]string{})
		s := New(loader)

		for i := 0; i < 3; i++ {
			_, err := s.Get("doesnotexist")
			if !errors.Is(err, ErrAbsent) {
				t.Fatalf("Get() call %d error = %v, want ErrAbsent", i, err)
			}
		}
		if got := loader.Calls("doesnotexist"); got != 1 {
			t.Errorf("provider calls = %d, want 1", got)
		}
	})

	t.Run("absence is final even if a source appears later", func(t *testing.T) {
		t.Parallel()

		loader := newCountingLoader(map[string]string{})
		s := New(loader)

		if _, err := s.Get("late"); !errors.Is(err, ErrAbsent) {
			t.Fatalf("Get(late) error = %v, want ErrAbsent", err)
		}
		loader.set("late", demoJSON)
		if _, err := s.Get("late"); !errors.Is(err, ErrAbsent) {
			t.Errorf("Get(late) after source appeared error = %v, want ErrAbsent", err)
		}
	})

	t.Run("invalid names are absent", func(t *testing.T) {
		t.Parallel()

		loader := newCountingLoader(map[string]string{})
		loader.errs["a.b"] = fmt.Errorf("%w: %q", collections.ErrInvalidName, "a.b")
		s := New(loader)

		if _, err := s.Get("a.b"); !errors.Is(err, ErrAbsent) {
			t.Errorf("Get(a.b) error = %v, want ErrAbsent", err)
		}
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		t.Parallel()

		loader := newCountingLoader(map[string]string{"demo": demoJSON})
		s := New(loader)

		if _, err := s.Get("Demo"); !errors.Is(err, ErrAbsent) {
			t.Errorf("Get(Demo) error = %v, want ErrAbsent", err)
		}
		if _, err := s.Get("demo"); err != nil {
			t.Errorf("Get(demo) error = %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestStore_Get_Failures - Strict and lenient handling of broken sources
// ---------------------------------------------------------------------------

func TestStore_Get_Failures(t *testing.T) {
	t.Parallel()

	t.Run("strict: malformed is not cached", func(t *testing.T) {
		t.Parallel()

		loader := newCountingLoader(map[string]string{"broken": `{"icons": `})
		s := New(loader)

		_, err := s.Get("broken")
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("Get(broken) error = %v, want ErrMalformed", err)
		}

		// A corrected source is picked up on the next call.
		loader.set("broken", demoJSON)
		if _, err := s.Get("broken"); err != nil {
			t.Fatalf("Get(broken) after fix error = %v", err)
		}
		if got := loader.Calls("broken"); got != 2 {
			t.Errorf("provider calls = %d, want 2", got)
		}
	})

	t.Run("strict: read errors are not cached", func(t *testing.T) {
		t.Parallel()

		loader := newCountingLoader(map[string]string{})
		loader.errs["locked"] = fmt.Errorf("%w: permission denied", collections.ErrRead)
		s := New(loader)

		for i := 0; i < 2; i++ {
			if _, err := s.Get("locked"); !errors.Is(err, ErrUnreadable) {
				t.Fatalf("Get(locked) error = %v, want ErrUnreadable", err)
			}
		}
		if got := loader.Calls("locked"); got != 2 {
			t.Errorf("provider calls = %d, want 2", got)
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d, want 0", s.Len())
		}
	})

	t.Run("lenient: malformed becomes permanent absence", func(t *testing.T) {
		t.Parallel()

		loader := newCountingLoader(map[string]string{"broken": `not json`})
		s := New(loader, WithLenient(true))

		for i := 0; i < 2; i++ {
			if _, err := s.Get("broken"); !errors.Is(err, ErrAbsent) {
				t.Fatalf("Get(broken) error = %v, want ErrAbsent", err)
			}
		}
		if got := loader.Calls("broken"); got != 1 {
			t.Errorf("provider calls = %d, want 1", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestStore_Get_Concurrent - One load per name under contention
// ---------------------------------------------------------------------------

func TestStore_Get_Concurrent(t *testing.T) {
	t.Parallel()

	loader := newCountingLoader(map[string]string{"demo": demoJSON})
	loader.gate = make(chan struct{})
	s := New(loader)

	const callers = 32
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
		fails   atomic.Int32
	)
	sets := make([]*iconset.Set, callers)

	started.Add(callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			set, err := s.Get("demo")
			if err != nil {
				fails.Add(1)
				return
			}
			sets[i] = set
		}(i)
	}

	started.Wait()
	close(loader.gate)
	wg.Wait()

	if fails.Load() != 0 {
		t.Fatalf("%d callers failed", fails.Load())
	}
	if got := loader.Calls("demo"); got != 1 {
		t.Errorf("provider calls = %d, want 1", got)
	}
	for i := 1; i < callers; i++ {
		if sets[i] != sets[0] {
			t.Fatalf("caller %d received a different set", i)
		}
	}
}

func TestStore_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	loader := newCountingLoader(map[string]string{"demo": demoJSON, "broken": "{"})
	s := New(loader, WithLogger(logger))

	_, _ = s.Get("demo")
	_, _ = s.Get("missing")
	_, _ = s.Get("broken")

	out := buf.String()
	for _, want := range []string{
		"collection loaded", "collection=demo", "icons=1",
		"collection absent", "collection=missing",
		"collection rejected", "collection=broken",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
