package signal

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("conn-1") {
			t.Fatalf("attempt %d denied inside limit", i+1)
		}
	}
	if rl.Allow("conn-1") {
		t.Error("attempt over limit allowed")
	}

	// Other connections have their own window.
	if !rl.Allow("conn-2") {
		t.Error("separate connection denied")
	}
}

func TestRateLimiterWindowExpires(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("conn-1") {
		t.Fatal("first attempt denied")
	}
	if rl.Allow("conn-1") {
		t.Fatal("second attempt inside window allowed")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("conn-1") {
		t.Error("attempt after window expiry denied")
	}
}

func TestRateLimiterForget(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	rl.Allow("conn-1")
	rl.Forget("conn-1")
	if !rl.Allow("conn-1") {
		t.Error("history survived Forget")
	}
}
