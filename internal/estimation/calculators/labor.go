package calculators

import (
	"math"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// Compile-time assertion that Labor implements the LaborCalculator interface.
var _ estimation.LaborCalculator = (*Labor)(nil)

// DefaultComplexityMultiplier applies when the rate table has no entry for
// Medium complexity either.
const DefaultComplexityMultiplier = 1.3

// Labor estimates the migration project team, its duration and total cost.
type Labor struct {
	rates  estimation.LaborRates
	roles  []reference.RoleSpec
	phases []reference.MigrationPhase
}

// LaborOption is a functional option for configuring a Labor calculator.
type LaborOption func(*Labor)

// WithLaborRates replaces the labor rate table.
func WithLaborRates(rates estimation.LaborRates) LaborOption {
	return func(l *Labor) {
		l.rates = rates
	}
}

// WithRoles replaces the project role table. An empty list is ignored.
func WithRoles(roles ...reference.RoleSpec) LaborOption {
	return func(l *Labor) {
		if len(roles) > 0 {
			l.roles = append([]reference.RoleSpec(nil), roles...)
		}
	}
}

// WithPhases replaces the migration phase template. An empty list is ignored.
func WithPhases(phases ...reference.MigrationPhase) LaborOption {
	return func(l *Labor) {
		if len(phases) > 0 {
			l.phases = reference.ClonePhases(phases)
		}
	}
}

// NewLabor creates a Labor calculator over the reference roles and phases.
func NewLabor(opts ...LaborOption) *Labor {
	res := Labor{
		rates:  estimation.DefaultRates().Labor,
		roles:  reference.Roles(),
		phases: reference.MigrationPhases(),
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Multiplier returns the effort multiplier of complexity. A tier missing from
// the rate table falls back to the Medium multiplier.
func (c *Labor) Multiplier(complexity reference.Complexity) float64 {
	if m, ok := c.rates.ComplexityMultipliers[complexity]; ok {
		return m
	}
	if m, ok := c.rates.ComplexityMultipliers[reference.Medium]; ok {
		return m
	}
	return DefaultComplexityMultiplier
}

// Estimate staffs every role for the whole project duration. A role's effort
// is its base allocation scaled by the complexity multiplier and capped at a
// full-time allocation.
func (c *Labor) Estimate(req estimation.AggregateRequirements, complexity reference.Complexity) estimation.LaborEstimate {
	multiplier := c.Multiplier(complexity)
	weeks := reference.TotalDurationWeeks(c.phases)

	team := make([]estimation.TeamCost, 0, len(c.roles))
	teamCost := 0.0
	for _, role := range c.roles {
		count := role.Headcount.For(req.TotalUsers)
		effort := math.Min(role.EffortPercent/100*multiplier, 1.0)
		hours := c.rates.HoursPerWeek * effort * float64(weeks) * float64(count)
		cost := hours * role.HourlyRate

		team = append(team, estimation.TeamCost{
			Role:          role.Name,
			Description:   role.Description,
			Count:         count,
			HourlyRate:    role.HourlyRate,
			EffortPercent: effort * 100,
			TotalHours:    hours,
			TotalCost:     cost,
		})
		teamCost += cost
	}

	additional := estimation.AdditionalCosts{
		TrainingMaterials: float64(req.TotalUsers) * c.rates.TrainingPerUser,
		ProjectTools:      c.rates.ProjectTools,
		Contingency:       teamCost * c.rates.ContingencyFraction,
	}
	totalAdditional := additional.TrainingMaterials + additional.ProjectTools + additional.Contingency

	return estimation.LaborEstimate{
		Complexity:           complexity,
		Multiplier:           multiplier,
		ProjectDurationWeeks: weeks,
		Phases:               reference.ClonePhases(c.phases),
		Team:                 team,
		TotalTeamCost:        teamCost,
		AdditionalCosts:      additional,
		TotalAdditionalCost:  totalAdditional,
		GrandTotalCost:       teamCost + totalAdditional,
		CostBreakdown: estimation.LaborCostBreakdown{
			Labor:             teamCost,
			MaterialsAndTools: additional.TrainingMaterials + additional.ProjectTools,
			Contingency:       additional.Contingency,
		},
	}
}
