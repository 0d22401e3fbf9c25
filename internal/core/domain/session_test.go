package domain

import (
	"testing"
	"time"
)

func TestSessionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from SessionStatus
		to   SessionStatus
		want bool
	}{
		{StatusRequested, StatusConfirmed, true},
		{StatusRequested, StatusRejected, true},
		{StatusRequested, StatusCompleted, false},
		{StatusRequested, StatusCancelled, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusConfirmed, StatusRejected, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusRejected, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestWindow_Overlaps(t *testing.T) {
	base := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	w := NewWindow(base, 30)

	tests := []struct {
		name  string
		other Window
		want  bool
	}{
		{"same start", NewWindow(base, 30), true},
		{"starts inside", NewWindow(base.Add(15*time.Minute), 30), true},
		{"starts before, ends inside", NewWindow(base.Add(-15*time.Minute), 30), true},
		{"contains", NewWindow(base.Add(-time.Hour), 120), true},
		{"back to back after", NewWindow(base.Add(30*time.Minute), 30), false},
		{"back to back before", NewWindow(base.Add(-30*time.Minute), 30), false},
		{"far later", NewWindow(base.Add(2*time.Hour), 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps: got %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(w); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %q", tt.name)
			}
		})
	}
}

func TestChannel_Valid(t *testing.T) {
	for _, c := range []Channel{ChannelVideo, ChannelAudio, ChannelChat, ChannelLink} {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if Channel("carrier-pigeon").Valid() {
		t.Error("unknown channel must be invalid")
	}
}

func TestSession_Ratable(t *testing.T) {
	s := &Session{Status: StatusCompleted}
	if !s.Ratable() {
		t.Fatal("completed unrated session must be ratable")
	}
	s.IsRated = true
	if s.Ratable() {
		t.Fatal("rated session must not be ratable")
	}
	s = &Session{Status: StatusConfirmed}
	if s.Ratable() {
		t.Fatal("confirmed session must not be ratable")
	}
}

func TestSession_EndsAt(t *testing.T) {
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	s := &Session{ScheduledAt: start, DurationMinutes: 45}
	if want := start.Add(45 * time.Minute); !s.EndsAt().Equal(want) {
		t.Fatalf("EndsAt: got %v, want %v", s.EndsAt(), want)
	}
}

func TestPriceFor(t *testing.T) {
	tests := []struct {
		rate    float64
		minutes int
		want    float64
	}{
		{60, 30, 30},
		{50, 45, 37.5},
		{33.33, 20, 11.11},
		{0, 30, 0},
		{-10, 30, 0},
		{40, 0, 0},
	}
	for _, tt := range tests {
		if got := PriceFor(tt.rate, tt.minutes); got != tt.want {
			t.Errorf("PriceFor(%v, %d) = %v, want %v", tt.rate, tt.minutes, got, tt.want)
		}
	}
}
