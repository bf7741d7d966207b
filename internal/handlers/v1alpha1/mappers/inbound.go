package mappers

import (
	"github.com/kubev2v/vdi-migration-planner/api/v1alpha1"
	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// AssessmentInputFromApi normalizes a validated request into an estimator
// input. Empty optional fields stay empty so the estimator applies its defaults.
func AssessmentInputFromApi(resource v1alpha1.AssessmentRequest) (estimation.AssessmentInput, error) {
	population := make(estimation.Population, len(resource.Population))
	for key, count := range resource.Population {
		u, err := reference.ParseUserType(key)
		if err != nil {
			return estimation.AssessmentInput{}, err
		}
		population[u] += count
	}

	complexity, err := reference.ParseComplexity(resource.Complexity)
	if err != nil {
		return estimation.AssessmentInput{}, err
	}

	input := estimation.AssessmentInput{
		Population:         population,
		Complexity:         complexity,
		CurrentEnvironment: resource.CurrentEnvironment,
	}

	if resource.TargetService != "" {
		if input.TargetService, err = reference.ParseServiceName(resource.TargetService); err != nil {
			return estimation.AssessmentInput{}, err
		}
	}

	if resource.Timeline != "" {
		if input.Timeline, err = reference.ParseTimeline(resource.Timeline); err != nil {
			return estimation.AssessmentInput{}, err
		}
	}

	return input, nil
}
