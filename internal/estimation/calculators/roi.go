package calculators

import (
	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// Compile-time assertion that ROI implements the ROICalculator interface.
var _ estimation.ROICalculator = (*ROI)(nil)

// ROI compares staying on the current platform against migrating to
// WorkSpaces over a fixed horizon. The current platform's yearly cost is
// modelled as the WorkSpaces yearly cost times CurrentPlatformPremium.
type ROI struct {
	rates estimation.ComparisonRates
}

type ROIOption func(*ROI)

func WithROIRates(rates estimation.ComparisonRates) ROIOption {
	return func(r *ROI) {
		r.rates = rates
	}
}

func NewROI(opts ...ROIOption) *ROI {
	res := ROI{
		rates: estimation.DefaultRates().Comparison,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

func (c *ROI) Analyze(comparison estimation.ServiceComparison, labor estimation.LaborEstimate) estimation.ROIAnalysis {
	workspaces, _ := comparison.Option(reference.WorkSpaces)
	ec2, _ := comparison.Option(reference.EC2VDI)

	years := float64(c.rates.HorizonYears)
	migration := labor.GrandTotalCost
	currentAnnual := workspaces.AnnualCost * c.rates.CurrentPlatformPremium

	res := estimation.ROIAnalysis{
		HorizonYears:          c.rates.HorizonYears,
		MigrationCost:         migration,
		CurrentAnnualCost:     currentAnnual,
		WorkSpacesAnnualCost:  workspaces.AnnualCost,
		CurrentHorizonCost:    currentAnnual * years,
		WorkSpacesHorizonCost: workspaces.AnnualCost*years + migration,
	}
	res.Savings = res.CurrentHorizonCost - res.WorkSpacesHorizonCost
	if migration > 0 {
		res.ROIPercent = res.Savings / migration * 100
	}
	if yearly := currentAnnual - workspaces.AnnualCost; yearly > 0 {
		months := migration / yearly * monthsPerYear
		res.PaybackMonths = &months
	}

	res.TCO = make([]estimation.TCOPoint, 0, c.rates.HorizonYears)
	for year := 1; year <= c.rates.HorizonYears; year++ {
		y := float64(year)
		res.TCO = append(res.TCO, estimation.TCOPoint{
			Year:       year,
			Current:    currentAnnual * y,
			WorkSpaces: migration + workspaces.AnnualCost*y,
			EC2VDI:     migration*c.rates.EC2MigrationPremium + ec2.AnnualCost*y,
		})
	}
	return res
}
