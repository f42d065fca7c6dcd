package timezone

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	for tz, want := range map[string]bool{
		"America/Sao_Paulo": true,
		"UTC":               true,
		"":                  false,
		"Mars/Olympus":      false,
	} {
		if got := IsValid(tz); got != want {
			t.Errorf("IsValid(%q) = %v, want %v", tz, got, want)
		}
	}
}

func TestLocationFallsBackToDefault(t *testing.T) {
	if got := Location("Europe/Lisbon").String(); got != "Europe/Lisbon" {
		t.Fatalf("Location = %s", got)
	}
	if got := Location("nowhere").String(); got != DefaultTimezone {
		t.Fatalf("fallback = %s, want %s", got, DefaultTimezone)
	}
	if got := Location("").String(); got != DefaultTimezone {
		t.Fatalf("empty = %s, want %s", got, DefaultTimezone)
	}
}

func TestNowIn(t *testing.T) {
	loc := Location("UTC")
	if NowIn(loc).Location() != loc {
		t.Fatal("NowIn did not convert to the given location")
	}
	if time.Since(NowIn(loc)) > time.Minute {
		t.Fatal("NowIn returned a stale time")
	}
}
