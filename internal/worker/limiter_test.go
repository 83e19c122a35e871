package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("https://example.gov/a.pdf") {
			t.Errorf("request %d should be within burst", i)
		}
	}
	if l.Allow("https://example.gov/b.pdf") {
		t.Error("fourth request should exceed burst")
	}
}

func TestLimiter_HostsAreIndependent(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://a.example.gov/x.pdf") {
		t.Error("first host should have capacity")
	}
	if !l.Allow("https://b.example.gov/x.pdf") {
		t.Error("second host should have its own bucket")
	}
	if l.Allow("https://a.example.gov/y.pdf") {
		t.Error("first host bucket should be drained")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetHostRate("slow.example.gov", 1, 5)

	for i := 0; i < 5; i++ {
		if !l.Allow("https://slow.example.gov/x.pdf") {
			t.Errorf("request %d should fit the widened burst", i)
		}
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	l := NewLimiter(0.001, 1)

	// Drain the burst so the next Wait has to sleep
	if !l.Allow("https://example.gov/a.pdf") {
		t.Fatal("burst should allow one request")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "https://example.gov/b.pdf"); err == nil {
		t.Error("expected context error while waiting")
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	l := NewLimiter(100, 10)

	start := time.Now()
	if err := l.WaitWithDelay(context.Background(), "https://example.gov/a.pdf", 30*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("returned after %v, expected the crawl delay to apply", elapsed)
	}
}

func TestLimiter_BadURL(t *testing.T) {
	l := NewLimiter(1, 1)

	if l.Allow("://bad") {
		t.Error("unparseable URL must not be allowed")
	}
	if err := l.Wait(context.Background(), "://bad"); err == nil {
		t.Error("expected error for unparseable URL")
	}
}
