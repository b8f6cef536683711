package types

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{
			name:      "valid date",
			input:     "2024-06-01",
			expectErr: false,
		},
		{
			name:      "valid leap day",
			input:     "2024-02-29",
			expectErr: false,
		},
		{
			name:      "month out of range",
			input:     "2024-13-01",
			expectErr: true,
		},
		{
			name:      "day out of range",
			input:     "2024-02-30",
			expectErr: true,
		},
		{
			name:      "not a date",
			input:     "invalid-date",
			expectErr: true,
		},
		{
			name:      "slash separators",
			input:     "2024/12/20",
			expectErr: true,
		},
		{
			name:      "reversed order",
			input:     "20-12-2024",
			expectErr: true,
		},
		{
			name:      "missing zero padding",
			input:     "2024-6-1",
			expectErr: true,
		},
		{
			name:      "empty string",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error, got %v", tt.input, d)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if d.String() != tt.input {
				t.Errorf("ParseDate(%q).String() = %q, want %q", tt.input, d.String(), tt.input)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		days     int
		expected string
	}{
		{
			name:     "seven days ahead",
			input:    "2024-06-01",
			days:     7,
			expected: "2024-06-08",
		},
		{
			name:     "next day",
			input:    "2024-06-01",
			days:     1,
			expected: "2024-06-02",
		},
		{
			name:     "three days crossing nothing",
			input:    "2024-06-01",
			days:     3,
			expected: "2024-06-04",
		},
		{
			name:     "month rollover",
			input:    "2024-06-28",
			days:     7,
			expected: "2024-07-05",
		},
		{
			name:     "year rollover",
			input:    "2024-12-30",
			days:     3,
			expected: "2025-01-02",
		},
		{
			name:     "leap february",
			input:    "2024-02-27",
			days:     3,
			expected: "2024-03-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}

			got := d.AddDays(tt.days).String()
			if got != tt.expected {
				t.Errorf("%s + %d days = %q, want %q", tt.input, tt.days, got, tt.expected)
			}
		})
	}
}

func TestAfter(t *testing.T) {
	earlier, _ := ParseDate("2024-06-01")
	later, _ := ParseDate("2024-06-02")

	if !later.After(earlier) {
		t.Error("expected 2024-06-02 to be after 2024-06-01")
	}
	if earlier.After(later) {
		t.Error("expected 2024-06-01 not to be after 2024-06-02")
	}
	if earlier.After(earlier) {
		t.Error("expected a date not to be after itself")
	}
}

func TestNewDateDropsTimeOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 1, 23, 59, 58, 0, time.UTC)
	d := NewDate(ts)

	if d.String() != "2024-06-01" {
		t.Errorf("NewDate(%v).String() = %q, want %q", ts, d.String(), "2024-06-01")
	}

	parsed, _ := ParseDate("2024-06-01")
	if d.After(parsed) || parsed.After(d) {
		t.Errorf("NewDate(%v) should equal parsed 2024-06-01", ts)
	}
}

func TestMarshalJSON(t *testing.T) {
	d, _ := ParseDate("2024-06-08")
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"2024-06-08"` {
		t.Errorf("MarshalJSON() = %s, want %q", data, `"2024-06-08"`)
	}
}
