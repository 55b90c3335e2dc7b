// Package buildspec loads and validates the YAML pipeline definition.
//
// A pipeline file declares the install commands, the optional dependency pin
// mutation, and the validation command with its retry budget:
//
//	version: 1
//	env:
//	  AWS_DEFAULT_REGION: us-west-2
//	install:
//	  - [pip, install, tox]
//	pin:
//	  package: widget
//	  requirements: examples/requirements.txt
//	  repo: https://github.com/org/widget.git
//	validate:
//	  command: [tox, -e, examples]
//	  dir: examples
//	  max_attempts: 3
//	  delay_seconds: 60
package buildspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only pipeline file version this binary accepts.
const SupportedVersion = 1

// Retry budget defaults applied when the validate block omits them.
const (
	DefaultMaxAttempts  = 3
	DefaultDelaySeconds = 60
)

// Spec is the parsed pipeline definition.
type Spec struct {
	Version  int               `yaml:"version"`
	Env      map[string]string `yaml:"env"`
	Install  [][]string        `yaml:"install"`
	Pin      *PinSpec          `yaml:"pin"`
	Validate ValidateSpec      `yaml:"validate"`
}

// PinSpec describes the dependency pin mutation. Branch is usually left
// empty in the file and filled from the --branch flag or BRANCH variable.
type PinSpec struct {
	Package      string `yaml:"package"`
	Requirements string `yaml:"requirements"`
	Repo         string `yaml:"repo"`
	Branch       string `yaml:"branch"`
	Subdirectory string `yaml:"subdirectory"`
}

// ValidateSpec describes the validation command and its retry budget.
type ValidateSpec struct {
	Command      []string `yaml:"command"`
	Dir          string   `yaml:"dir"`
	MaxAttempts  int      `yaml:"max_attempts"`
	DelaySeconds int      `yaml:"delay_seconds"`
}

// Load reads, parses, validates, and applies defaults to a pipeline file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline file: %w", err)
	}

	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse pipeline file: %w", err)
	}

	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.applyDefaults()

	return &s, nil
}

// Check verifies structural validity before defaults are applied.
func (s *Spec) Check() error {
	if s.Version != SupportedVersion {
		return fmt.Errorf("unsupported pipeline version %d (want %d)", s.Version, SupportedVersion)
	}
	if len(s.Validate.Command) == 0 {
		return fmt.Errorf("validate.command must not be empty")
	}
	for i, cmd := range s.Install {
		if len(cmd) == 0 {
			return fmt.Errorf("install[%d] must not be empty", i)
		}
	}
	if s.Validate.MaxAttempts < 0 {
		return fmt.Errorf("validate.max_attempts must not be negative")
	}
	if s.Validate.DelaySeconds < 0 {
		return fmt.Errorf("validate.delay_seconds must not be negative")
	}
	if s.Pin != nil {
		if s.Pin.Package == "" {
			return fmt.Errorf("pin.package must not be empty")
		}
		if s.Pin.Requirements == "" {
			return fmt.Errorf("pin.requirements must not be empty")
		}
		if s.Pin.Repo == "" {
			return fmt.Errorf("pin.repo must not be empty")
		}
	}
	return nil
}

func (s *Spec) applyDefaults() {
	if s.Validate.MaxAttempts == 0 {
		s.Validate.MaxAttempts = DefaultMaxAttempts
	}
	if s.Validate.DelaySeconds == 0 {
		s.Validate.DelaySeconds = DefaultDelaySeconds
	}
}

// Tools returns the distinct executables the pipeline invokes, in first-use
// order: each install command's argv[0] followed by the validate command's.
func (s *Spec) Tools() []string {
	seen := make(map[string]bool)
	var tools []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			tools = append(tools, name)
		}
	}
	for _, cmd := range s.Install {
		add(cmd[0])
	}
	add(s.Validate.Command[0])
	return tools
}

// EnvSlice renders the env map as KEY=VALUE entries for exec.
func (s *Spec) EnvSlice() []string {
	if len(s.Env) == 0 {
		return nil
	}
	entries := make([]string, 0, len(s.Env))
	for k, v := range s.Env {
		entries = append(entries, k+"="+v)
	}
	return entries
}
