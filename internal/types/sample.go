// Package types contains the data records shared between the simulator's
// components.
package types

import "github.com/croswell/aqsim/pkg/aqi"

// Sample is a single environmental observation together with its derived
// labels. Labels are pure functions of the inputs, assigned once at creation
// and never mutated afterward.
type Sample struct {
	Temperature float64 // °C
	Humidity    float64 // %
	CO2         float64 // ppm
	PM25        float64 // μg/m³
	PM10        float64 // μg/m³
	NO2         float64 // μg/m³
	O3          float64 // μg/m³
	WindSpeed   float64 // m/s
	CityType    aqi.CityType

	AQILevel   aqi.Level
	HealthRisk aqi.Risk
}

// Classify recomputes both labels from the sample's inputs.
func (s Sample) Classify() (aqi.Level, aqi.Risk) {
	level := aqi.ComputeLevel(s.PM25, s.PM10, s.NO2, s.O3)
	return level, aqi.ComputeRisk(level, s.CityType)
}

// Labeled returns a copy of s with both labels filled in.
func Labeled(s Sample) Sample {
	s.AQILevel, s.HealthRisk = s.Classify()
	return s
}

// Demo returns the fixed sample used when interactive input is missing or
// malformed.
func Demo() Sample {
	return Labeled(Sample{
		Temperature: 33,
		Humidity:    65,
		CO2:         550,
		PM25:        150,
		PM10:        180,
		NO2:         80,
		O3:          60,
		WindSpeed:   3.5,
		CityType:    aqi.Urban,
	})
}
