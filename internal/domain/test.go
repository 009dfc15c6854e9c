package domain

import "strings"

// TestClass represents a tagged test class found in the input
type TestClass struct {
	Module    string // Maven module path, used verbatim with -pl
	ClassName string // Fully-qualified class name
}

// SimpleName returns the class name without its package
func (tc TestClass) SimpleName() string {
	if i := strings.LastIndex(tc.ClassName, "."); i >= 0 {
		return tc.ClassName[i+1:]
	}
	return tc.ClassName
}

// ModuleTests is the ordered list of test classes discovered for one module
type ModuleTests struct {
	Module  string
	Classes []string
}
