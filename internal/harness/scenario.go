package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named sequence of wrapper operations with expected results.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps are evaluated in order; every step is evaluated even after a
	// failure.
	Steps []Step `yaml:"steps"`
}

// Step is a single wrapper operation.
type Step struct {
	// Op names the operation (see ListOps and DateOps).
	Op string `yaml:"op"`

	// List is the wrapped sequence for list ops. Nil means absent.
	List *[]int64 `yaml:"list,omitempty"`

	// Date and Other are the operands of date ops.
	Date  string `yaml:"date,omitempty"`
	Other string `yaml:"other,omitempty"`

	// Fn names the predicate, transform or combiner for forall, exists,
	// map and foldLeft.
	Fn string `yaml:"fn,omitempty"`

	// Init is the foldLeft start value.
	Init int64 `yaml:"init,omitempty"`

	// Index and Value are the positional operands of get and set.
	Index int   `yaml:"index,omitempty"`
	Value int64 `yaml:"value,omitempty"`

	// Expect is kept as a raw node so that an explicit null (the "no value"
	// sentinel) can be told apart from a missing key.
	Expect yaml.Node `yaml:"expect,omitempty"`

	// Error, when set, requires the step to fail with a message containing
	// this substring.
	Error string `yaml:"error,omitempty"`
}

// HasExpect reports whether the step declared an expect key.
func (s Step) HasExpect() bool {
	return s.Expect.Kind != 0
}

// Expected decodes the expect node into a normalized value: nil, bool,
// int64 or []int64.
func (s Step) Expected() (any, error) {
	if !s.HasExpect() {
		return nil, errors.New("step has no expect value")
	}
	var raw any
	if err := s.Expect.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode expect: %w", err)
	}
	return normalizeValue(raw)
}

// Load error codes.
const (
	ErrCodeGeneric  = "E001" // Generic/unknown error
	ErrCodeRead     = "E002" // Scenario file could not be read
	ErrCodeSchema   = "E003" // Scenario violates the CUE schema
	ErrCodeDecode   = "E004" // Strict YAML decode failed
	ErrCodeInvalid  = "E005" // Scenario failed semantic validation
	ErrCodeNotFound = "E006" // Path not found
)

// LoadError is a coded scenario loading failure.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadScenario reads, schema-checks and decodes a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("scenario file not found: %s", path), Err: err}
		}
		return nil, &LoadError{Code: ErrCodeRead, Message: "failed to read scenario file", Err: err}
	}
	return ParseScenario(path, data)
}

// ParseScenario validates data against the scenario schema, then decodes
// it strictly. filename is only used in error positions.
func ParseScenario(filename string, data []byte) (*Scenario, error) {
	if err := ValidateDocument(filename, data); err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: "scenario does not match schema", Err: err}
	}

	// KnownFields catches typos the schema would also reject, and anything
	// the schema and struct disagree on.
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, &LoadError{Code: ErrCodeDecode, Message: "failed to parse YAML", Err: err}
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: "invalid scenario", Err: err}
	}
	return &scenario, nil
}

// validateScenario checks what the schema cannot express: each step needs
// expect or error, and named functions and dates must resolve.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if len(s.Steps) == 0 {
		return errors.New("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if !step.HasExpect() && step.Error == "" {
			return fmt.Errorf("steps[%d] (%s): expect or error is required", i, step.Op)
		}
		if step.HasExpect() && step.Error != "" {
			return fmt.Errorf("steps[%d] (%s): expect and error are mutually exclusive", i, step.Op)
		}
		if step.HasExpect() {
			if _, err := step.Expected(); err != nil {
				return fmt.Errorf("steps[%d] (%s): %w", i, step.Op, err)
			}
		}
		if err := checkOperands(step); err != nil {
			return fmt.Errorf("steps[%d] (%s): %w", i, step.Op, err)
		}
	}
	return nil
}
