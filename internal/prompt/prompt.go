// Package prompt reads the single interactive sample from the console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/croswell/aqsim/internal/types"
	"github.com/croswell/aqsim/pkg/aqi"
)

const fieldCount = 9

// Read prints the input instructions to w, reads one line from r and returns
// the labeled sample. The literal token "demo" selects the fixed demo sample
// directly. Any malformed line also falls back to the demo sample, after
// printing a warning; the parse error is returned so the caller can log it.
// Read never fails outright.
func Read(r io.Reader, w io.Writer) (types.Sample, error) {
	fmt.Fprintln(w, "Enter a custom sample to predict (or type 'demo' to run a demo sample):")
	fmt.Fprintln(w, "Format: Temperature Humidity CO2 PM2.5 PM10 NO2 O3 WindSpeed CityType(0/1)")
	fmt.Fprintln(w, "Example: 33 65 550 150 180 80 60 3.5 1")
	fmt.Fprint(w, "Input: ")

	var line string
	scanner := bufio.NewScanner(r)
	if scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
	}

	if line == "demo" {
		return types.Demo(), nil
	}

	sample, err := Parse(line)
	if err != nil {
		fmt.Fprintln(w, "Invalid input. Running demo sample.")
		return types.Demo(), err
	}
	return sample, nil
}

// Parse decodes one line of 9 whitespace-separated values in the fixed order
// Temperature Humidity CO2 PM2.5 PM10 NO2 O3 WindSpeed CityType.
func Parse(line string) (types.Sample, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return types.Sample{}, fmt.Errorf("expected %d values, got %d", fieldCount, len(fields))
	}

	values := make([]float64, fieldCount-1)
	for i := range values {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return types.Sample{}, fmt.Errorf("value %d: %w", i+1, err)
		}
		values[i] = v
	}

	city, err := strconv.Atoi(fields[fieldCount-1])
	if err != nil || (city != 0 && city != 1) {
		return types.Sample{}, fmt.Errorf("city type must be 0 or 1, got %q", fields[fieldCount-1])
	}

	return types.Labeled(types.Sample{
		Temperature: values[0],
		Humidity:    values[1],
		CO2:         values[2],
		PM25:        values[3],
		PM10:        values[4],
		NO2:         values[5],
		O3:          values[6],
		WindSpeed:   values[7],
		CityType:    aqi.CityType(city),
	}), nil
}
