// Package dataset generates, partitions and summarizes the synthetic
// environmental samples.
package dataset

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/croswell/aqsim/internal/types"
	"github.com/croswell/aqsim/pkg/aqi"
)

// DefaultSize is the number of samples generated per run.
const DefaultSize = 1500

// TrainFraction is the share of the shuffled dataset held out as the
// training partition. Nothing trains on it; it exists to keep the
// evaluation honest about which samples it saw.
const TrainFraction = 0.8

type span struct {
	min, max float64
}

func (sp span) draw(rng *rand.Rand) float64 {
	return sp.min + rng.Float64()*(sp.max-sp.min)
}

// Per-feature uniform sampling ranges.
var (
	temperatureSpan = span{10, 45}
	humiditySpan    = span{20, 90}
	co2Span         = span{300, 800}
	pm25Span        = span{5, 250}
	pm10Span        = span{10, 300}
	no2Span         = span{2, 200}
	o3Span          = span{5, 180}
	windSpeedSpan   = span{0.5, 10}
)

// Generate produces n labeled samples, drawing every random value from rng.
func Generate(n int, rng *rand.Rand) []types.Sample {
	samples := make([]types.Sample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, types.Labeled(types.Sample{
			Temperature: temperatureSpan.draw(rng),
			Humidity:    humiditySpan.draw(rng),
			CO2:         co2Span.draw(rng),
			PM25:        pm25Span.draw(rng),
			PM10:        pm10Span.draw(rng),
			NO2:         no2Span.draw(rng),
			O3:          o3Span.draw(rng),
			WindSpeed:   windSpeedSpan.draw(rng),
			CityType:    aqi.CityType(rng.Intn(2)),
		}))
	}
	return samples
}

// Split shuffles samples in place and partitions them into train and test
// sets. The returned slices share the backing array with samples.
func Split(samples []types.Sample, rng *rand.Rand) (train, test []types.Sample) {
	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
	cut := int(TrainFraction * float64(len(samples)))
	return samples[:cut], samples[cut:]
}

// FeatureSummary describes the distribution of one feature across the
// generated dataset.
type FeatureSummary struct {
	Name   string
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes per-feature distribution statistics over samples.
func Summarize(samples []types.Sample) []FeatureSummary {
	if len(samples) == 0 {
		return nil
	}

	features := []struct {
		name  string
		value func(types.Sample) float64
	}{
		{"Temperature", func(s types.Sample) float64 { return s.Temperature }},
		{"Humidity", func(s types.Sample) float64 { return s.Humidity }},
		{"CO2", func(s types.Sample) float64 { return s.CO2 }},
		{"PM2.5", func(s types.Sample) float64 { return s.PM25 }},
		{"PM10", func(s types.Sample) float64 { return s.PM10 }},
		{"NO2", func(s types.Sample) float64 { return s.NO2 }},
		{"O3", func(s types.Sample) float64 { return s.O3 }},
		{"WindSpeed", func(s types.Sample) float64 { return s.WindSpeed }},
	}

	summaries := make([]FeatureSummary, 0, len(features))
	values := make([]float64, len(samples))
	for _, f := range features {
		for i, s := range samples {
			values[i] = f.value(s)
		}
		summaries = append(summaries, FeatureSummary{
			Name:   f.name,
			Mean:   stat.Mean(values, nil),
			StdDev: stat.StdDev(values, nil),
			Min:    floats.Min(values),
			Max:    floats.Max(values),
		})
	}
	return summaries
}

// LevelCounts tallies ground-truth AQI levels across samples.
func LevelCounts(samples []types.Sample) map[aqi.Level]int {
	counts := make(map[aqi.Level]int)
	for _, s := range samples {
		counts[s.AQILevel]++
	}
	return counts
}

// RiskCounts tallies ground-truth health risk categories across samples.
func RiskCounts(samples []types.Sample) map[aqi.Risk]int {
	counts := make(map[aqi.Risk]int)
	for _, s := range samples {
		counts[s.HealthRisk]++
	}
	return counts
}
