package calculators

import (
	"math"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
)

// ceilTolerance absorbs binary floating point noise such as 10*0.7 landing a
// hair above 7, which would otherwise round it up to 8.
const ceilTolerance = 1e-9

// monthsPerYear converts monthly figures to annual ones.
const monthsPerYear = 12

func ceilRatio(count int, ratio float64) int {
	return int(math.Ceil(float64(count)*ratio - ceilTolerance))
}

// ceilDiv returns ceil(n / d); zero when n or d is not positive.
func ceilDiv(n, d int) int {
	if n <= 0 || d <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

func annual(monthly float64) float64 {
	return monthly * monthsPerYear
}

// DefaultStages returns the full calculator pipeline priced with rates.
func DefaultStages(rates estimation.Rates) estimation.Stages {
	return estimation.Stages{
		Requirements:   NewRequirements(),
		Compute:        NewCompute(WithComputeRates(rates.Compute)),
		Storage:        NewStorage(WithStorageRates(rates.Storage)),
		Network:        NewNetwork(WithNetworkRates(rates.Network)),
		Labor:          NewLabor(WithLaborRates(rates.Labor)),
		Comparison:     NewComparison(WithComparisonRates(rates.Comparison)),
		Recommendation: NewRecommendation(WithRecommendationRates(rates.Comparison)),
		ROI:            NewROI(WithROIRates(rates.Comparison)),
	}
}
