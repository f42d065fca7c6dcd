package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampMarshalsMillisecondsInUTC(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole second", time.Date(2025, 12, 25, 23, 0, 0, 0, time.UTC), `"2025-12-25T23:00:00.000Z"`},
		{"other zone", time.Date(2025, 12, 25, 20, 0, 0, 0, saoPaulo), `"2025-12-25T23:00:00.000Z"`},
		{"sub millisecond", time.Date(2025, 1, 2, 3, 4, 5, 678901234, time.UTC), `"2025-01-02T03:04:05.678Z"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(NewTimestamp(tt.in))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTimestampUnmarshal(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2025-12-25T20:00:00.000-03:00"`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ts.Equal(time.Date(2025, 12, 25, 23, 0, 0, 0, time.UTC)) || ts.Location() != time.UTC {
		t.Fatalf("got %s", ts.Time)
	}

	if err := json.Unmarshal([]byte(`"amanha"`), &ts); err == nil {
		t.Fatal("expected error for invalid timestamp")
	}
}
