package report

import (
	"strings"
	"testing"

	"github.com/croswell/aqsim/internal/eval"
	"github.com/croswell/aqsim/internal/types"
	"github.com/croswell/aqsim/pkg/aqi"
)

func TestWritePredictionDemo(t *testing.T) {
	var out strings.Builder

	WritePrediction(&out, types.Demo())

	got := out.String()
	if !strings.Contains(got, "Level 1 (Moderate)") {
		t.Errorf("demo prediction missing \"Level 1 (Moderate)\":\n%s", got)
	}
	if !strings.Contains(got, "1 (Medium)") {
		t.Errorf("demo prediction missing \"1 (Medium)\":\n%s", got)
	}
}

func TestWriteClassification(t *testing.T) {
	rep := eval.Report{
		Accuracy: 1.0,
		Classes: []eval.ClassMetrics{
			{Class: 0, Precision: 1, Recall: 1, F1: 1, Support: 12},
			{Class: 1, Precision: 1, Recall: 1, F1: 1, Support: 30},
			{Class: 2, Support: 0},
		},
	}

	var out strings.Builder
	WriteClassification(&out, "Health_Risk", rep, func(c int) string { return aqi.Risk(c).String() })

	got := out.String()
	for _, want := range []string{"Health_Risk Classification Report:", "Precision", "Recall", "F1-score", "Support", "Low", "Medium", "High"} {
		if !strings.Contains(got, want) {
			t.Errorf("classification table missing %q:\n%s", want, got)
		}
	}
}

func TestWriteAccuracy(t *testing.T) {
	var out strings.Builder

	WriteAccuracy(&out, eval.Report{Accuracy: 1}, eval.Report{Accuracy: 0.5})

	got := out.String()
	if !strings.Contains(got, "AQI_Level Accuracy: 1.000") {
		t.Errorf("missing AQI accuracy line:\n%s", got)
	}
	if !strings.Contains(got, "Health_Risk Accuracy: 0.500") {
		t.Errorf("missing health risk accuracy line:\n%s", got)
	}
}
