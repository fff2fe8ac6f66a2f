package telegram

import (
	"testing"
	"time"
)

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow(42) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow(42) {
		t.Fatal("request over the limit should be rejected")
	}

	if !rl.Allow(43) {
		t.Fatal("limits must be per user")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow(42) {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow(42) {
		t.Fatal("second request inside the window should be rejected")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow(42) {
		t.Fatal("request after the window should be allowed")
	}
}
