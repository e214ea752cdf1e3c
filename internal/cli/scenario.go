package cli

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dsrt-go/dsrt/internal/host"
)

// DefaultTolerance is the absolute tolerance used when a step sets none.
const DefaultTolerance = 1e-9

// Scenario is a list of kernel steps with expected results.
type Scenario struct {
	// Name identifies the scenario in reports.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description,omitempty"`

	// Steps are evaluated in order against the same kernel.
	Steps []Step `yaml:"steps"`
}

// Step evaluates one operation and compares it to Expect.
type Step struct {
	Name      string    `yaml:"name"`
	Op        string    `yaml:"op"`
	Args      []float64 `yaml:"args"`
	Expect    []float64 `yaml:"expect"`
	Tolerance float64   `yaml:"tolerance,omitempty"`
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied scenario file
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a scenario, rejecting unknown fields.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if sc.Name == "" {
		return nil, fmt.Errorf("parse scenario: missing name")
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse scenario %q: no steps", sc.Name)
	}
	for i, st := range sc.Steps {
		if st.Op == "" {
			return nil, fmt.Errorf("parse scenario %q: step %d: missing op", sc.Name, i+1)
		}
		if st.Expect == nil {
			return nil, fmt.Errorf("parse scenario %q: step %d: missing expect", sc.Name, i+1)
		}
		if st.Tolerance < 0 {
			return nil, fmt.Errorf("parse scenario %q: step %d: negative tolerance", sc.Name, i+1)
		}
	}
	return &sc, nil
}

// StepReport is the outcome of one step.
type StepReport struct {
	Name    string    `json:"name"`
	Op      string    `json:"op"`
	Passed  bool      `json:"passed"`
	Got     []float64 `json:"got,omitempty"`
	Expect  []float64 `json:"expect"`
	Message string    `json:"message,omitempty"`
}

// ScenarioReport is the outcome of one scenario.
type ScenarioReport struct {
	Name   string       `json:"name"`
	Kernel string       `json:"kernel"`
	Steps  []StepReport `json:"steps"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

// CheckReport aggregates scenario reports.
type CheckReport struct {
	Scenarios []ScenarioReport `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
}

func (r CheckReport) String() string {
	var sb strings.Builder
	for _, sc := range r.Scenarios {
		fmt.Fprintf(&sb, "%s (%s)\n", sc.Name, sc.Kernel)
		for _, st := range sc.Steps {
			if st.Passed {
				fmt.Fprintf(&sb, "  PASS %s\n", st.Name)
				continue
			}
			fmt.Fprintf(&sb, "  FAIL %s: %s\n", st.Name, st.Message)
		}
	}
	fmt.Fprintf(&sb, "%d passed, %d failed", r.Passed, r.Failed)
	return sb.String()
}

// RunScenario evaluates every step of sc on k.
func RunScenario(ctx context.Context, k host.Kernel, sc *Scenario) ScenarioReport {
	rep := ScenarioReport{Name: sc.Name, Kernel: k.Name()}

	for i, st := range sc.Steps {
		name := st.Name
		if name == "" {
			name = fmt.Sprintf("step %d (%s)", i+1, st.Op)
		}
		sr := StepReport{Name: name, Op: st.Op, Expect: st.Expect}

		res, err := Evaluate(ctx, k, st.Op, st.Args)
		if err != nil {
			sr.Message = err.Error()
		} else {
			sr.Got = res.Values()
			sr.Message = compare(sr.Got, st.Expect, tolerance(st))
			sr.Passed = sr.Message == ""
		}

		if sr.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}
		rep.Steps = append(rep.Steps, sr)
	}
	return rep
}

func tolerance(st Step) float64 {
	if st.Tolerance == 0 {
		return DefaultTolerance
	}
	return st.Tolerance
}

// compare returns "" when got matches want within tol, otherwise a
// description of the first mismatch. NaN only matches NaN.
func compare(got, want []float64, tol float64) string {
	if len(got) != len(want) {
		return fmt.Sprintf("got %d values, want %d", len(got), len(want))
	}
	for i := range got {
		if !within(got[i], want[i], tol) {
			return fmt.Sprintf("value %d: got %s, want %s (tolerance %s)",
				i, formatFloat(got[i]), formatFloat(want[i]), formatFloat(tol))
		}
	}
	return ""
}

func within(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b || math.Abs(a-b) <= tol
}
