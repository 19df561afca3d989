package normalize

import "testing"

// ============================================================================
// Normalize Tests
// ============================================================================

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"semicolon always repaired", "12;00.0", "12:00.0"},
		{"digit-gated O repair", "O5:OO.O", "05:00.0"},
		{"prose untouched", "TOTAL", "TOTAL"},
		{"comma next to digit", "1,234", "1.234"},
		{"comma in prose untouched", "time, meters", "time, meters"},
		{"l next to digit", "l000", "1000"},
		{"I next to digit", "I5:00.0", "15:00.0"},
		{"l in prose untouched", "total", "total"},
		{"S between digits", "1S0", "150"},
		{"S before digit only untouched", "S20", "S20"},
		{"B between digits", "1B5", "185"},
		{"B in prose untouched", "Burn", "Burn"},
		{"cascading repair", "OO5", "005"},
		{"cyrillic fold", "метer", "meter"},
		{"cyrillic ge", "гest", "rest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"O5:OO.O", "12;00,0", "l000", "OO5", "1S0", "TOTAL",
		"Sep: 212025", "3x4:0013:00r", "ll1",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

// ============================================================================
// NormalizeDescriptor Tests
// ============================================================================

func TestNormalizeDescriptor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean descriptor untouched", "3x4:00/3:00r", "3x4:00/3:00r"},
		{"missing separator reinserted", "3x4:0013:00r", "3x4:00/3:00r"},
		{"separator misread as one", "2x20:00/11:15r", "2x20:00/1:15r"},
		{"plausible rest minutes kept", "2x20:00/1:15r", "2x20:00/1:15r"},
		{"comma separator", "5x1:00,1:00r", "5x1:00/1:00r"},
		{"leading three misread", "Ex4:00/3:00r", "3x4:00/3:00r"},
		{"single distance untouched", "2000m", "2000m"},
		{"single time untouched", "20:00", "20:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDescriptor(tt.input); got != tt.expected {
				t.Errorf("NormalizeDescriptor(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMaxRestMinutes(t *testing.T) {
	// the separator disambiguation hangs off this device limit
	if MaxRestMinutes != 9 {
		t.Errorf("Expected rest ceiling of 9 minutes, got %d", MaxRestMinutes)
	}
}
