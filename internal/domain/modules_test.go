package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestModuleSet_Add(t *testing.T) {
	tests := []struct {
		name     string
		input    []TestClass
		expected []ModuleTests
	}{
		{
			name:     "empty input",
			input:    nil,
			expected: []ModuleTests{},
		},
		{
			name: "modules keep first-seen order",
			input: []TestClass{
				{Module: "moduleB", ClassName: "b.OneTest"},
				{Module: "moduleA", ClassName: "a.OneTest"},
				{Module: "moduleB", ClassName: "b.TwoTest"},
			},
			expected: []ModuleTests{
				{Module: "moduleB", Classes: []string{"b.OneTest", "b.TwoTest"}},
				{Module: "moduleA", Classes: []string{"a.OneTest"}},
			},
		},
		{
			name: "duplicates are kept",
			input: []TestClass{
				{Module: "core", ClassName: "x.SameTest"},
				{Module: "core", ClassName: "x.SameTest"},
			},
			expected: []ModuleTests{
				{Module: "core", Classes: []string{"x.SameTest", "x.SameTest"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := NewModuleSet()
			ms.AddAll(tt.input)

			if diff := cmp.Diff(tt.expected, ms.Modules()); diff != "" {
				t.Errorf("modules mismatch (-want +got):\n%s", diff)
			}
			if ms.Count() != len(tt.input) {
				t.Errorf("expected count %d, got %d", len(tt.input), ms.Count())
			}
			if ms.Len() != len(tt.expected) {
				t.Errorf("expected %d modules, got %d", len(tt.expected), ms.Len())
			}
		})
	}
}

func TestModuleSet_ModulesIsSnapshot(t *testing.T) {
	ms := NewModuleSet()
	ms.Add(TestClass{Module: "m", ClassName: "a.ATest"})

	modules := ms.Modules()
	modules[0].Classes[0] = "changed"

	if got := ms.Modules()[0].Classes[0]; got != "a.ATest" {
		t.Errorf("expected set to be unaffected, got %s", got)
	}
}

func TestTestClass_SimpleName(t *testing.T) {
	tests := map[string]string{
		"com.acme.OneTest": "OneTest",
		"OneTest":          "OneTest",
	}
	for in, want := range tests {
		if got := (TestClass{ClassName: in}).SimpleName(); got != want {
			t.Errorf("SimpleName(%s) = %s, want %s", in, got, want)
		}
	}
}
