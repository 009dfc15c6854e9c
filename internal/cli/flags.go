package cli

import "ftgen/internal/config"

// Flags holds command-line flags
type Flags struct {
	Output     string
	Tag        string
	NameFilter string
	ScanDir    string
	Fresh      bool
	Total      int
	Index      int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Output:     f.Output,
		Tag:        f.Tag,
		NameFilter: f.NameFilter,
		ScanDir:    f.ScanDir,
		Fresh:      f.Fresh,
		Total:      f.Total,
		Index:      f.Index,
	}
}
