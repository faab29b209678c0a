package aqi

import "testing"

func TestPollutantScore(t *testing.T) {
	// Worked example: 0.3·150 + 0.2·180 + 0.1·80 + 0.05·60 = 92
	score := PollutantScore(150, 180, 80, 60)
	if score != 92 {
		t.Errorf("PollutantScore(150, 180, 80, 60) = %v, expected 92", score)
	}
}

func TestComputeLevel(t *testing.T) {
	tests := []struct {
		name                 string
		pm25, pm10, no2, o3  float64
		expected             Level
	}{
		{
			name:     "clean air",
			pm25:     10, pm10: 20, no2: 5, o3: 10,
			expected: Good,
		},
		{
			name:     "worked example is moderate",
			pm25:     150, pm10: 180, no2: 80, o3: 60,
			expected: Moderate,
		},
		{
			name:     "score exactly 50 is moderate",
			pm10:     250, // 0.2·250 = 50
			expected: Moderate,
		},
		{
			name:     "score exactly 100 is unhealthy",
			pm10:     500, // 0.2·500 = 100
			expected: Unhealthy,
		},
		{
			name:     "score exactly 200 is hazardous",
			no2:      2000, // 0.1·2000 = 200
			expected: Hazardous,
		},
		{
			name:     "extreme pollution",
			pm25:     500, pm10: 300, no2: 200, o3: 180, // score 239
			expected: Hazardous,
		},
		{
			name:     "range maxima stay unhealthy",
			pm25:     250, pm10: 300, no2: 200, o3: 180, // score 164
			expected: Unhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := ComputeLevel(tt.pm25, tt.pm10, tt.no2, tt.o3)
			if level != tt.expected {
				t.Errorf("ComputeLevel = %v, expected %v", level, tt.expected)
			}
		})
	}
}

func TestComputeLevelMonotonic(t *testing.T) {
	// The level must never decrease as PM2.5 climbs with the other
	// pollutants held fixed.
	prev := Good
	for pm25 := 0.0; pm25 <= 800; pm25 += 5 {
		level := ComputeLevel(pm25, 10, 10, 10)
		if level < prev {
			t.Fatalf("level decreased from %v to %v at pm25=%v", prev, level, pm25)
		}
		if level < Good || level > Hazardous {
			t.Fatalf("level %d out of range at pm25=%v", level, pm25)
		}
		prev = level
	}
}

func TestComputeRisk(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		city     CityType
		expected Risk
	}{
		{"good rural", Good, Rural, Low},
		{"good urban", Good, Urban, Low},
		{"moderate rural", Moderate, Rural, Medium},
		{"moderate urban", Moderate, Urban, Medium},
		{"unhealthy rural", Unhealthy, Rural, Medium},
		{"unhealthy urban", Unhealthy, Urban, High},
		{"hazardous rural", Hazardous, Rural, High},
		{"hazardous urban", Hazardous, Urban, High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := ComputeRisk(tt.level, tt.city)
			if risk != tt.expected {
				t.Errorf("ComputeRisk(%v, %v) = %v, expected %v", tt.level, tt.city, risk, tt.expected)
			}
		})
	}
}

func TestDisplayNames(t *testing.T) {
	if Moderate.String() != "Moderate" {
		t.Errorf("Moderate.String() = %q", Moderate.String())
	}
	if Medium.String() != "Medium" {
		t.Errorf("Medium.String() = %q", Medium.String())
	}
	if Urban.String() != "Urban" {
		t.Errorf("Urban.String() = %q", Urban.String())
	}
	if Level(99).String() != "Unknown" {
		t.Errorf("out-of-range level should display as Unknown, got %q", Level(99).String())
	}
	if Risk(-1).String() != "Unknown" {
		t.Errorf("out-of-range risk should display as Unknown, got %q", Risk(-1).String())
	}
}
