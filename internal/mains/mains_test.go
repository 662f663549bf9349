package mains

import "testing"

func TestFrequencyForTimezone(t *testing.T) {
	tests := []struct {
		zone string
		want float64
	}{
		{zone: "Europe/London", want: 50},
		{zone: "Europe/Berlin", want: 50},
		{zone: "Australia/Sydney", want: 50},
		{zone: "Asia/Shanghai", want: 50},
		{zone: "Asia/Tokyo", want: 50}, // eastern Japan grid

		{zone: "America/New_York", want: 60},
		{zone: "America/Los_Angeles", want: 60},
		{zone: "America/Toronto", want: 60},
		{zone: "America/Mexico_City", want: 60},
		{zone: "America/Sao_Paulo", want: 60},
		{zone: "Asia/Seoul", want: 60},
		{zone: "Asia/Manila", want: 60},

		{zone: "UTC", want: 50},
		{zone: "GMT", want: 50},
		{zone: "Etc/UTC", want: 50},
		{zone: "Not/AZone", want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			if got := FrequencyForTimezone(tt.zone); got != tt.want {
				t.Errorf("FrequencyForTimezone(%q) = %v, want %v", tt.zone, got, tt.want)
			}
		})
	}
}

func TestFrequency(t *testing.T) {
	if freq := Frequency(); freq != Hz50 && freq != Hz60 {
		t.Errorf("Frequency() = %v, want 50 or 60", freq)
	}
}
