package calculators

import (
	"github.com/thoas/go-funk"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
)

// Compile-time assertion that Compute implements the ComputeCalculator interface.
var _ estimation.ComputeCalculator = (*Compute)(nil)

// Compute sizes a self-hosted instance fleet as the alternative to the
// managed desktop service. Users-per-instance is a density assumption.
type Compute struct {
	rates estimation.ComputeRates
}

// ComputeOption is a functional option for configuring a Compute calculator.
type ComputeOption func(*Compute)

// WithComputeRates replaces the compute rate table.
func WithComputeRates(rates estimation.ComputeRates) ComputeOption {
	return func(c *Compute) {
		c.rates = rates
	}
}

// WithStandardDensity sets how many concurrent standard users share one instance.
// Non-positive values are ignored and the default is kept.
func WithStandardDensity(usersPerInstance int) ComputeOption {
	return func(c *Compute) {
		if usersPerInstance > 0 {
			c.rates.Standard.UsersPerInstance = usersPerInstance
		}
	}
}

// WithGraphicsDensity sets how many concurrent graphics users share one instance.
// Non-positive values are ignored and the default is kept.
func WithGraphicsDensity(usersPerInstance int) ComputeOption {
	return func(c *Compute) {
		if usersPerInstance > 0 {
			c.rates.Graphics.UsersPerInstance = usersPerInstance
		}
	}
}

// NewCompute creates a Compute calculator with default rates.
func NewCompute(opts ...ComputeOption) *Compute {
	res := Compute{
		rates: estimation.DefaultRates().Compute,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Estimate splits the concurrent users into graphics and standard classes by
// bundle and sizes one instance group per class.
func (c *Compute) Estimate(req estimation.AggregateRequirements) estimation.ComputeEstimate {
	var standardUsers, graphicsUsers int
	for _, b := range req.Breakdown {
		if funk.ContainsString(c.rates.GraphicsBundles, b.Bundle) {
			graphicsUsers += b.ConcurrentUsers
		} else {
			standardUsers += b.ConcurrentUsers
		}
	}

	standard := c.group(estimation.StandardClass, c.rates.Standard, standardUsers)
	graphics := c.group(estimation.GraphicsClass, c.rates.Graphics, graphicsUsers)

	monthly := standard.MonthlyCost + graphics.MonthlyCost
	return estimation.ComputeEstimate{
		Standard:       standard,
		Graphics:       graphics,
		TotalInstances: standard.Count + graphics.Count,
		MonthlyCost:    monthly,
		AnnualCost:     annual(monthly),
	}
}

func (c *Compute) group(class estimation.InstanceClass, rate estimation.InstanceRate, concurrentUsers int) estimation.InstanceGroup {
	count := ceilDiv(concurrentUsers, rate.UsersPerInstance)
	perInstance := rate.HourlyRate * c.rates.HoursPerDay * c.rates.DaysPerMonth

	return estimation.InstanceGroup{
		Class:                  class,
		InstanceType:           rate.InstanceType,
		ConcurrentUsers:        concurrentUsers,
		Count:                  count,
		VCPUPerInstance:        rate.VCPU,
		MemoryGBPerInstance:    rate.MemoryGB,
		UsersPerInstance:       rate.UsersPerInstance,
		HourlyRate:             rate.HourlyRate,
		MonthlyCostPerInstance: perInstance,
		MonthlyCost:            float64(count) * perInstance,
	}
}
