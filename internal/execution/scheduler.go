package execution

import "ftgen/internal/domain"

// Scheduler distributes modules across CI shards.
// A shard is one CI job; each job generates a script for its own subset of
// modules so the maven invocations run on separate machines.
type Scheduler interface {
	Schedule(modules []domain.ModuleTests, shards int) [][]domain.ModuleTests
}

// RoundRobinScheduler distributes modules evenly across shards
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule deals modules out to shards like cards: module i lands in shard i%shards.
// Whole modules move, never single classes, so each -pl invocation stays intact.
// Module order is preserved inside each shard and shard 0 of a single-shard split is the input.
func (s *RoundRobinScheduler) Schedule(modules []domain.ModuleTests, shards int) [][]domain.ModuleTests {
	if shards <= 0 {
		shards = 1
	}

	distribution := make([][]domain.ModuleTests, shards)
	for i := range distribution {
		distribution[i] = make([]domain.ModuleTests, 0)
	}

	for i, module := range modules {
		shardIndex := i % shards
		distribution[shardIndex] = append(distribution[shardIndex], module)
	}

	return distribution
}
