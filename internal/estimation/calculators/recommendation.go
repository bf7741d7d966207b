package calculators

import (
	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// Compile-time assertion that Recommendation implements the Recommender interface.
var _ estimation.Recommender = (*Recommendation)(nil)

const (
	reasonSmall    = "Small user base with standard requirements: a fully managed desktop service is the simplest solution."
	reasonLarge    = "Large scale or complex requirements: a custom solution provides maximum flexibility and potential cost savings."
	reasonBalanced = "Balanced requirements: a managed desktop service offers a good mix of features, management and cost-effectiveness."
)

// Recommendation picks a target service from population size and complexity.
type Recommendation struct {
	rates estimation.ComparisonRates
}

type RecommendationOption func(*Recommendation)

func WithRecommendationRates(rates estimation.ComparisonRates) RecommendationOption {
	return func(r *Recommendation) {
		r.rates = rates
	}
}

func NewRecommendation(opts ...RecommendationOption) *Recommendation {
	res := Recommendation{
		rates: estimation.DefaultRates().Comparison,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Recommend applies, in order: small and Low complexity → WorkSpaces; large or
// High complexity → EC2 VDI; anything else → WorkSpaces.
func (c *Recommendation) Recommend(req estimation.AggregateRequirements, complexity reference.Complexity) estimation.Recommendation {
	switch {
	case req.TotalUsers < c.rates.SmallPopulation && complexity == reference.Low:
		return recommend(reference.WorkSpaces, reasonSmall)
	case req.TotalUsers > c.rates.LargePopulation || complexity == reference.High:
		return recommend(reference.EC2VDI, reasonLarge)
	default:
		return recommend(reference.WorkSpaces, reasonBalanced)
	}
}

func recommend(service reference.ServiceName, reason string) estimation.Recommendation {
	entry, _ := reference.LookupService(service)
	return estimation.Recommendation{
		Service: service,
		Name:    entry.Name,
		Reason:  reason,
	}
}
