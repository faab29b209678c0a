// Package aqi provides the rule-based Air Quality Index and health risk
// classification used throughout the simulator.
package aqi

// Level is an ordinal air quality category derived from a weighted
// pollutant score.
type Level int

const (
	Good Level = iota
	Moderate
	Unhealthy
	Hazardous
)

// NumLevels is the number of AQI categories.
const NumLevels = int(Hazardous) + 1

// String returns the display name for an AQI level.
func (l Level) String() string {
	switch l {
	case Good:
		return "Good"
	case Moderate:
		return "Moderate"
	case Unhealthy:
		return "Unhealthy"
	case Hazardous:
		return "Hazardous"
	default:
		return "Unknown"
	}
}

// Risk is an ordinal health risk category derived from the AQI level and
// the city type of the sampling site.
type Risk int

const (
	Low Risk = iota
	Medium
	High
)

// NumRisks is the number of health risk categories.
const NumRisks = int(High) + 1

// String returns the display name for a health risk category.
func (r Risk) String() string {
	switch r {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return "Unknown"
	}
}

// CityType distinguishes urban from rural sampling sites. Urban sites are
// biased toward higher health risk at elevated AQI levels.
type CityType int

const (
	Rural CityType = iota
	Urban
)

// String returns the display name for a city type.
func (c CityType) String() string {
	switch c {
	case Rural:
		return "Rural"
	case Urban:
		return "Urban"
	default:
		return "Unknown"
	}
}

// Pollutant weights for the AQI score.
const (
	weightPM25 = 0.3
	weightPM10 = 0.2
	weightNO2  = 0.1
	weightO3   = 0.05
)

// PollutantScore returns the weighted pollutant score used for AQI level
// classification. Concentrations are in μg/m³.
func PollutantScore(pm25, pm10, no2, o3 float64) float64 {
	return weightPM25*pm25 + weightPM10*pm10 + weightNO2*no2 + weightO3*o3
}

// ComputeLevel maps pollutant concentrations to an AQI level. The level is a
// non-decreasing step function of the pollutant score.
func ComputeLevel(pm25, pm10, no2, o3 float64) Level {
	score := PollutantScore(pm25, pm10, no2, o3)

	switch {
	case score < 50:
		return Good
	case score < 100:
		return Moderate
	case score < 200:
		return Unhealthy
	default:
		return Hazardous
	}
}

// ComputeRisk maps an AQI level to a health risk category. Unhealthy air at
// an urban site is High risk; at a rural site it resolves through the
// fallback branch to Medium. Hazardous air is High risk regardless of site.
func ComputeRisk(level Level, city CityType) Risk {
	switch {
	case level == Good:
		return Low
	case level == Moderate:
		return Medium
	case level == Unhealthy && city == Urban:
		return High
	default:
		if level == Hazardous {
			return High
		}
		if city == Urban {
			return High
		}
		return Medium
	}
}
