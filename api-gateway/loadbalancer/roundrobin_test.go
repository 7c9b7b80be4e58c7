package loadbalancer

import (
	"sync"
	"testing"
)

func TestRoundRobinCyclesThroughServers(t *testing.T) {
	servers := []string{"http://a:8080", "http://b:8080", "http://c:8080"}
	rr := NewRoundRobin(servers)

	for i := 0; i < 2*len(servers); i++ {
		got := rr.Next()
		want := servers[i%len(servers)]
		if got != want {
			t.Fatalf("call %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestRoundRobinDefaultsWhenEmpty(t *testing.T) {
	rr := NewRoundRobin(nil)

	if got := rr.Next(); got == "" {
		t.Fatal("expected fallback server, got empty string")
	}
}

func TestRoundRobinAddRemoveServer(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080"})

	rr.AddServer("http://b:8080")
	if got := len(rr.GetServers()); got != 2 {
		t.Fatalf("expected 2 servers, got %d", got)
	}

	rr.RemoveServer("http://a:8080")
	servers := rr.GetServers()
	if len(servers) != 1 || servers[0] != "http://b:8080" {
		t.Fatalf("unexpected servers after removal: %v", servers)
	}

	// Next must still work after the current index was invalidated
	if got := rr.Next(); got != "http://b:8080" {
		t.Fatalf("expected remaining server, got %s", got)
	}
}

func TestRoundRobinConcurrentNext(t *testing.T) {
	servers := []string{"http://a:8080", "http://b:8080"}
	rr := NewRoundRobin(servers)

	var wg sync.WaitGroup
	var mu sync.Mutex
	counts := make(map[string]int)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := rr.Next()
			mu.Lock()
			counts[s]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if counts["http://a:8080"] != 50 || counts["http://b:8080"] != 50 {
		t.Fatalf("expected even distribution, got %v", counts)
	}
}
