package calculators

import (
	"fmt"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// Compile-time assertion that Requirements implements the RequirementsCalculator interface.
var _ estimation.RequirementsCalculator = (*Requirements)(nil)

// Requirements derives concurrency, CPU, memory, storage and baseline bundle
// cost from a population.
type Requirements struct {
	profiles map[reference.UserType]reference.Profile
}

// RequirementsOption is a functional option for configuring a Requirements calculator.
type RequirementsOption func(*Requirements)

// WithProfiles replaces the reference profile of each given user type.
// Profiles failing Validate are ignored and the reference profile is kept.
// Profiles are not part of estimation.Rates, so a rates file cannot change
// them; DefaultStages always uses the reference profiles.
func WithProfiles(profiles ...reference.Profile) RequirementsOption {
	return func(r *Requirements) {
		for _, p := range profiles {
			if p.Validate() == nil {
				r.profiles[p.Type] = p
			}
		}
	}
}

// NewRequirements creates a Requirements calculator over the reference profiles.
func NewRequirements(opts ...RequirementsOption) *Requirements {
	res := Requirements{
		profiles: make(map[reference.UserType]reference.Profile),
	}
	for _, p := range reference.Profiles() {
		res.profiles[p.Type] = p
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Calculate sizes the population. Concurrency, CPU and memory follow the
// peak concurrent users; storage and bundle cost follow the whole population.
func (c *Requirements) Calculate(population estimation.Population) (estimation.AggregateRequirements, error) {
	for u, count := range population {
		if _, ok := c.profiles[u]; !ok {
			return estimation.AggregateRequirements{}, fmt.Errorf("%w: %q", estimation.ErrUnknownUserType, u)
		}
		if count < 0 {
			return estimation.AggregateRequirements{}, fmt.Errorf("%w: %s has %d users", estimation.ErrNegativeCount, u, count)
		}
		if count > estimation.MaxUsersPerType {
			return estimation.AggregateRequirements{}, fmt.Errorf("%w: %s has %d users, at most %d allowed", estimation.ErrCountTooLarge, u, count, estimation.MaxUsersPerType)
		}
	}

	totalUsers := population.Total()
	if totalUsers == 0 {
		return estimation.AggregateRequirements{}, estimation.ErrEmptyPopulation
	}

	res := estimation.AggregateRequirements{
		TotalUsers: totalUsers,
		Breakdown:  make([]estimation.UserTypeRequirements, 0, len(population)),
	}

	for _, u := range reference.UserTypes() {
		count := population[u]
		if count == 0 {
			continue
		}
		profile := c.profiles[u]

		concurrent := min(ceilRatio(count, profile.ConcurrentRatio), count)
		record := estimation.UserTypeRequirements{
			UserType:        u,
			Name:            profile.Name,
			Bundle:          profile.Bundle,
			TotalUsers:      count,
			ConcurrentUsers: concurrent,
			CPUCores:        concurrent * profile.CPUCores,
			MemoryGB:        concurrent * profile.MemoryGB,
			StorageGB:       count * profile.StorageGB,
			MonthlyCost:     float64(count) * profile.BundleMonthlyPrice,
		}

		res.TotalConcurrent += record.ConcurrentUsers
		res.TotalCPUCores += record.CPUCores
		res.TotalMemoryGB += record.MemoryGB
		res.TotalStorageGB += record.StorageGB
		res.MonthlyCost += record.MonthlyCost
		res.Breakdown = append(res.Breakdown, record)
	}

	res.AnnualCost = annual(res.MonthlyCost)
	if res.TotalUsers > 0 {
		res.AverageConcurrentRatio = float64(res.TotalConcurrent) / float64(res.TotalUsers)
	}

	return res, nil
}
