package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_DoCollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g Group[[]byte]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, _ := g.Do("/scoreboard?dates=20240315", func() ([]byte, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return []byte("ok"), nil
			})
			if err != nil || string(val) != "ok" {
				t.Errorf("singleflight call failed: val=%q err=%v", val, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestGroup_DoForgetsFinishedKeys(t *testing.T) {
	t.Parallel()

	var g Group[int]
	boom := errors.New("boom")

	if _, err, _ := g.Do("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected error to propagate, got %v", err)
	}
	val, err, shared := g.Do("k", func() (int, error) { return 7, nil })
	if err != nil || val != 7 || shared {
		t.Fatalf("expected fresh call after completion, val=%d err=%v shared=%v", val, err, shared)
	}
}
