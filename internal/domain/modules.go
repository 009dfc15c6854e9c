package domain

// ModuleSet groups test classes by module.
// Modules keep the order in which they were first seen and classes keep
// input order within a module. Duplicate classes are kept.
type ModuleSet struct {
	order   []string
	classes map[string][]string
}

// NewModuleSet creates an empty ModuleSet
func NewModuleSet() *ModuleSet {
	return &ModuleSet{classes: make(map[string][]string)}
}

// Add appends a test class to its module, registering the module on first sight
func (ms *ModuleSet) Add(tc TestClass) {
	if _, ok := ms.classes[tc.Module]; !ok {
		ms.order = append(ms.order, tc.Module)
	}
	ms.classes[tc.Module] = append(ms.classes[tc.Module], tc.ClassName)
}

// AddAll adds every test class in order
func (ms *ModuleSet) AddAll(tcs []TestClass) {
	for _, tc := range tcs {
		ms.Add(tc)
	}
}

// Modules returns the modules in first-seen order
func (ms *ModuleSet) Modules() []ModuleTests {
	modules := make([]ModuleTests, 0, len(ms.order))
	for _, module := range ms.order {
		classes := make([]string, len(ms.classes[module]))
		copy(classes, ms.classes[module])
		modules = append(modules, ModuleTests{Module: module, Classes: classes})
	}
	return modules
}

// Len returns the number of modules
func (ms *ModuleSet) Len() int {
	return len(ms.order)
}

// Count returns the number of classes across all modules, duplicates included
func (ms *ModuleSet) Count() int {
	var total int
	for _, classes := range ms.classes {
		total += len(classes)
	}
	return total
}
