package commands

import (
	"ftgen/internal/config"
	"ftgen/internal/discovery"
	"ftgen/internal/domain"
	"ftgen/internal/execution"
	"ftgen/internal/ui"

	"github.com/spf13/cobra"
)

// source collects the modules a command works on: input -> classify -> filter -> group -> shard
type source struct {
	config    *config.Config
	filter    *discovery.Filter
	scheduler execution.Scheduler
}

func newSource(cfg *config.Config, filter *discovery.Filter, scheduler execution.Scheduler) *source {
	return &source{
		config:    cfg,
		filter:    filter,
		scheduler: scheduler,
	}
}

// modules reads stdin, or the scan directory when set, and returns the modules of the selected shard
func (s *source) modules(cmd *cobra.Command) (*domain.ModuleSet, error) {
	reader := discovery.NewReader(discovery.NewClassifier(s.config.Tag))

	var classes []domain.TestClass
	if dir := s.config.Flags.ScanDir; dir != "" {
		scanner := discovery.NewScanner(s.config.PathsToIgnore, s.config.Tag)
		progress := ui.NewProgressBar(cmd.ErrOrStderr())
		lines, err := scanner.Scan(dir, progress.Update)
		progress.Finish()
		if err != nil {
			return nil, err
		}
		classes = reader.ReadLines(lines)
	} else {
		var err error
		classes, err = reader.Read(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
	}

	// Filter tests
	classes = s.filter.FilterByName(classes, s.config.Flags.NameFilter)

	set := domain.NewModuleSet()
	set.AddAll(classes)

	shards := s.scheduler.Schedule(set.Modules(), s.config.Flags.Total)

	selected := domain.NewModuleSet()
	for _, m := range shards[s.config.Flags.Index] {
		for _, class := range m.Classes {
			selected.Add(domain.TestClass{Module: m.Module, ClassName: class})
		}
	}
	return selected, nil
}
