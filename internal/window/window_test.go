package window

import (
	"testing"
	"time"
)

func TestLocalize(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 11:37 UTC is 13:37 in Oslo during summer time.
	instant := time.Date(2024, 7, 15, 11, 37, 0, 0, time.UTC)
	clock := Localize(instant, oslo)
	if clock.Hour != 13 || clock.Minute != 37 {
		t.Fatalf("expected 13:37, got %02d:%02d", clock.Hour, clock.Minute)
	}
	if clock.Day != 15 || clock.Month != 7 || clock.Year != 2024 {
		t.Fatalf("unexpected date %d-%d-%d", clock.Year, clock.Month, clock.Day)
	}
}

func TestLocalizeCrossesMidnight(t *testing.T) {
	auckland, err := time.LoadLocation("Pacific/Auckland")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	instant := time.Date(2024, 1, 31, 23, 30, 0, 0, time.UTC)
	clock := Localize(instant, auckland)
	if clock.Day != 1 || clock.Month != 2 {
		t.Fatalf("expected Feb 1 locally, got %d-%d-%d", clock.Year, clock.Month, clock.Day)
	}
}

func TestIsAchievement(t *testing.T) {
	if !IsAchievement(Clock{Hour: 13, Minute: 37}) {
		t.Fatalf("13:37 should qualify")
	}
	for _, clock := range []Clock{
		{Hour: 13, Minute: 36},
		{Hour: 13, Minute: 38},
		{Hour: 12, Minute: 37},
		{Hour: 0, Minute: 0},
	} {
		if IsAchievement(clock) {
			t.Fatalf("%02d:%02d should not qualify", clock.Hour, clock.Minute)
		}
	}
}

func TestIsPublish(t *testing.T) {
	if !IsPublish(Clock{Hour: 13, Minute: 38}) {
		t.Fatalf("13:38 should be the publish moment")
	}
	if IsPublish(Clock{Hour: 13, Minute: 37}) {
		t.Fatalf("13:37 should not be the publish moment")
	}
	if IsPublish(Clock{Hour: 14, Minute: 38}) {
		t.Fatalf("14:38 should not be the publish moment")
	}
}
