package calculators

import (
	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// Compile-time assertion that Comparison implements the ComparisonCalculator interface.
var _ estimation.ComparisonCalculator = (*Comparison)(nil)

// Comparison prices the population on every catalog service:
//   - WorkSpaces: the per-user bundle cost
//   - AppStream: the bundle cost times AppStreamPremium
//   - EC2 VDI: self-hosted compute + storage + network
type Comparison struct {
	rates    estimation.ComparisonRates
	services []reference.ServiceCatalogEntry
}

type ComparisonOption func(*Comparison)

func WithComparisonRates(rates estimation.ComparisonRates) ComparisonOption {
	return func(c *Comparison) {
		c.rates = rates
	}
}

func NewComparison(opts ...ComparisonOption) *Comparison {
	res := Comparison{
		rates:    estimation.DefaultRates().Comparison,
		services: reference.Services(),
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

func (c *Comparison) Compare(
	req estimation.AggregateRequirements,
	compute estimation.ComputeEstimate,
	storage estimation.StorageEstimate,
	network estimation.NetworkEstimate,
) estimation.ServiceComparison {
	monthly := map[reference.ServiceName]float64{
		reference.WorkSpaces: req.MonthlyCost,
		reference.AppStream:  req.MonthlyCost * c.rates.AppStreamPremium,
		reference.EC2VDI:     compute.MonthlyCost + storage.Costs.TotalMonthly + network.Costs.TotalMonthly,
	}

	res := estimation.ServiceComparison{
		Options: make([]estimation.ServiceOption, 0, len(c.services)),
	}
	for _, s := range c.services {
		cost, ok := monthly[s.Key]
		if !ok {
			continue
		}
		res.Options = append(res.Options, estimation.ServiceOption{
			Service:             s.Key,
			Name:                s.Name,
			MonthlyCost:         cost,
			AnnualCost:          annual(cost),
			MigrationComplexity: s.MigrationComplexity,
			ManagementOverhead:  s.ManagementOverhead,
		})
	}
	return res
}
