// fixtures_test.go
package scheme

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

// Fixture cases are session transcripts: every case gets a fresh session
// and its steps run in order against it, so later steps see earlier
// definitions exactly as a REPL user would.

type fixtureStep struct {
	Input     string `yaml:"input"`
	Want      string `yaml:"want"`
	WantError string `yaml:"wantError"`
}

type fixtureCase struct {
	Name  string        `yaml:"name"`
	Steps []fixtureStep `yaml:"steps"`
}

type fixtureFile struct {
	Cases []fixtureCase `yaml:"cases"`
}

func Test_Eval_Fixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/eval.yaml")
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var f fixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		t.Fatalf("parse fixtures: %v", err)
	}
	if len(f.Cases) == 0 {
		t.Fatalf("fixture file holds no cases")
	}

	for _, c := range f.Cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			s := NewSession()
			for i, step := range c.Steps {
				v, err := s.Eval(step.Input)

				if step.WantError != "" {
					if err == nil {
						t.Fatalf("step %d %q: want %s error, got %s", i, step.Input, step.WantError, Render(v))
					}
					e, ok := err.(*Error)
					if !ok || e.Kind.String() != step.WantError {
						t.Fatalf("step %d %q: want %s error, got %v", i, step.Input, step.WantError, err)
					}
					continue
				}

				if err != nil {
					t.Fatalf("step %d %q: %v", i, step.Input, err)
				}
				if step.Want != "" && Render(v) != step.Want {
					t.Fatalf("step %d %q: want %s, got %s", i, step.Input, step.Want, Render(v))
				}
			}
		})
	}
}
