// Package report renders the console evaluation report.
package report

import (
	"fmt"
	"io"

	"github.com/croswell/aqsim/internal/dataset"
	"github.com/croswell/aqsim/internal/eval"
	"github.com/croswell/aqsim/internal/types"
	"github.com/croswell/aqsim/pkg/aqi"
)

// WriteHeader prints the report title.
func WriteHeader(w io.Writer) {
	fmt.Fprintf(w, "Air Quality & Health Risk Rule-Based Simulator\n")
	fmt.Fprintf(w, "==============================================\n\n")
}

// WriteSummary prints per-feature distribution statistics and the label
// distribution of the generated dataset.
func WriteSummary(w io.Writer, summaries []dataset.FeatureSummary, levels map[aqi.Level]int, risks map[aqi.Risk]int) {
	fmt.Fprintln(w, "Synthetic Dataset Summary:")
	fmt.Fprintf(w, "  %-12s %9s %9s %9s %9s\n", "Feature", "Mean", "StdDev", "Min", "Max")
	for _, fs := range summaries {
		fmt.Fprintf(w, "  %-12s %9.2f %9.2f %9.2f %9.2f\n", fs.Name, fs.Mean, fs.StdDev, fs.Min, fs.Max)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Label Distribution:")
	for level := aqi.Good; level <= aqi.Hazardous; level++ {
		fmt.Fprintf(w, "  AQI %-10s %6d\n", level, levels[level])
	}
	for risk := aqi.Low; risk <= aqi.High; risk++ {
		fmt.Fprintf(w, "  Risk %-9s %6d\n", risk, risks[risk])
	}
	fmt.Fprintln(w)
}

// WriteAccuracy prints the overall accuracy for both label dimensions.
func WriteAccuracy(w io.Writer, aqiRep, riskRep eval.Report) {
	fmt.Fprintln(w, "Overall Accuracy:")
	fmt.Fprintf(w, "  AQI_Level Accuracy: %.3f\n", aqiRep.Accuracy)
	fmt.Fprintf(w, "  Health_Risk Accuracy: %.3f\n\n", riskRep.Accuracy)
}

// WriteClassification prints the per-class metrics table for one label
// dimension. label maps a class ordinal to its display name.
func WriteClassification(w io.Writer, name string, rep eval.Report, label func(int) string) {
	fmt.Fprintf(w, "%s Classification Report:\n", name)
	fmt.Fprintf(w, "  %-12s %9s %9s %9s %9s\n", "Label", "Precision", "Recall", "F1-score", "Support")
	for _, c := range rep.Classes {
		fmt.Fprintf(w, "  %-12s %9.3f %9.3f %9.3f %9d\n", label(c.Class), c.Precision, c.Recall, c.F1, c.Support)
	}
	fmt.Fprintln(w)
}

// WritePrediction prints the labels derived for the interactive sample.
func WritePrediction(w io.Writer, s types.Sample) {
	fmt.Fprintln(w, "\nPrediction for the sample:")
	fmt.Fprintf(w, "  AQI Score -> Level %d (%s)\n", int(s.AQILevel), s.AQILevel)
	fmt.Fprintf(w, "  Health Risk -> %d (%s)\n", int(s.HealthRisk), s.HealthRisk)
}
