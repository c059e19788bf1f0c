package resilience

import "sync"

// Group collapses concurrent calls that share a key into one execution.
// The zero value is ready to use.
type Group[V any] struct {
	mu       sync.Mutex
	inFlight map[string]*flight[V]
}

type flight[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// Do returns the result of fn for key. shared reports whether the caller
// joined a call started by someone else.
func (g *Group[V]) Do(key string, fn func() (V, error)) (val V, err error, shared bool) {
	g.mu.Lock()
	if g.inFlight == nil {
		g.inFlight = make(map[string]*flight[V])
	}
	if f, ok := g.inFlight[key]; ok {
		g.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}

	f := &flight[V]{done: make(chan struct{})}
	g.inFlight[key] = f
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.inFlight, key)
		g.mu.Unlock()
		close(f.done)
	}()

	f.val, f.err = fn()
	return f.val, f.err, false
}
