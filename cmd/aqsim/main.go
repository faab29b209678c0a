package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/croswell/aqsim/internal/dataset"
	"github.com/croswell/aqsim/internal/eval"
	"github.com/croswell/aqsim/internal/log"
	"github.com/croswell/aqsim/internal/prompt"
	"github.com/croswell/aqsim/internal/report"
	"github.com/croswell/aqsim/pkg/aqi"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	seed := flag.Int64("seed", 0, "Random seed for dataset generation (0 uses the current time)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("aqsim %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	log.Infow("starting simulation run",
		"run_id", uuid.New().String(),
		"seed", *seed,
		"version", version,
	)

	run(rng, os.Stdin, os.Stdout)
}

// run executes the full pipeline: generate, split, self-evaluate, report,
// then label one interactive sample.
func run(rng *rand.Rand, in io.Reader, out io.Writer) {
	samples := dataset.Generate(dataset.DefaultSize, rng)
	log.Infof("generated %d synthetic samples", len(samples))

	train, test := dataset.Split(samples, rng)
	log.Infow("dataset partitioned", "train", len(train), "test", len(test))

	// The baseline predictor reapplies the labeling rules, so the
	// evaluation measures the rules against themselves.
	yTrueAQI := make([]int, len(test))
	yPredAQI := make([]int, len(test))
	yTrueRisk := make([]int, len(test))
	yPredRisk := make([]int, len(test))
	for i, s := range test {
		level, risk := s.Classify()
		yTrueAQI[i] = int(s.AQILevel)
		yPredAQI[i] = int(level)
		yTrueRisk[i] = int(s.HealthRisk)
		yPredRisk[i] = int(risk)
	}

	aqiRep := eval.Evaluate(yTrueAQI, yPredAQI, aqi.NumLevels)
	riskRep := eval.Evaluate(yTrueRisk, yPredRisk, aqi.NumRisks)
	log.Debugf("evaluation complete: aqi accuracy %.3f, risk accuracy %.3f", aqiRep.Accuracy, riskRep.Accuracy)

	report.WriteHeader(out)
	report.WriteSummary(out, dataset.Summarize(samples), dataset.LevelCounts(samples), dataset.RiskCounts(samples))
	report.WriteAccuracy(out, aqiRep, riskRep)
	report.WriteClassification(out, "AQI_Level", aqiRep, func(c int) string { return aqi.Level(c).String() })
	report.WriteClassification(out, "Health_Risk", riskRep, func(c int) string { return aqi.Risk(c).String() })

	sample, err := prompt.Read(in, out)
	if err != nil {
		log.Warnf("interactive input unusable, falling back to demo sample: %v", err)
	}
	report.WritePrediction(out, sample)
}
