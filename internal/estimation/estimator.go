package estimation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// RequirementsCalculator reduces a population to its aggregate requirements.
type RequirementsCalculator interface {
	Calculate(population Population) (AggregateRequirements, error)
}

type ComputeCalculator interface {
	Estimate(req AggregateRequirements) ComputeEstimate
}

type StorageCalculator interface {
	Estimate(req AggregateRequirements) StorageEstimate
}

type NetworkCalculator interface {
	Estimate(req AggregateRequirements) NetworkEstimate
}

type LaborCalculator interface {
	Estimate(req AggregateRequirements, complexity reference.Complexity) LaborEstimate
}

// ComparisonCalculator prices the population on every catalog service.
type ComparisonCalculator interface {
	Compare(req AggregateRequirements, compute ComputeEstimate, storage StorageEstimate, network NetworkEstimate) ServiceComparison
}

type Recommender interface {
	Recommend(req AggregateRequirements, complexity reference.Complexity) Recommendation
}

type ROICalculator interface {
	Analyze(comparison ServiceComparison, labor LaborEstimate) ROIAnalysis
}

// Stages are the calculators an Estimator runs. Every field is required.
type Stages struct {
	Requirements   RequirementsCalculator
	Compute        ComputeCalculator
	Storage        StorageCalculator
	Network        NetworkCalculator
	Labor          LaborCalculator
	Comparison     ComparisonCalculator
	Recommendation Recommender
	ROI            ROICalculator
}

// Estimator runs the full assessment pipeline. It holds no per-run state, so
// a single Estimator can serve any number of callers.
type Estimator struct {
	stages Stages
	now    func() time.Time
	newID  func() uuid.UUID
}

type EstimatorOption func(*Estimator)

// WithClock sets the source of the result timestamp.
func WithClock(now func() time.Time) EstimatorOption {
	return func(e *Estimator) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator sets the source of result ids.
func WithIDGenerator(newID func() uuid.UUID) EstimatorOption {
	return func(e *Estimator) {
		if newID != nil {
			e.newID = newID
		}
	}
}

// NewEstimator creates an Estimator over stages.
// NewEstimator panics if a stage is missing, as Run could not produce a
// complete result.
func NewEstimator(stages Stages, opts ...EstimatorOption) *Estimator {
	missing := map[string]bool{
		"requirements":   stages.Requirements == nil,
		"compute":        stages.Compute == nil,
		"storage":        stages.Storage == nil,
		"network":        stages.Network == nil,
		"labor":          stages.Labor == nil,
		"comparison":     stages.Comparison == nil,
		"recommendation": stages.Recommendation == nil,
		"roi":            stages.ROI == nil,
	}
	for name, isMissing := range missing {
		if isMissing {
			panic(fmt.Sprintf("estimation: %s stage is not set", name))
		}
	}

	e := &Estimator{
		stages: stages,
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run validates input and produces a fresh AssessmentResult.
//
// Empty CurrentEnvironment, TargetService and Timeline take their defaults.
// An unknown complexity tier, service or timeline is rejected rather than
// defaulted.
func (e *Estimator) Run(input AssessmentInput) (*AssessmentResult, error) {
	input, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	req, err := e.stages.Requirements.Calculate(input.Population)
	if err != nil {
		return nil, err
	}

	compute := e.stages.Compute.Estimate(req)
	storage := e.stages.Storage.Estimate(req)
	network := e.stages.Network.Estimate(req)
	labor := e.stages.Labor.Estimate(req, input.Complexity)
	comparison := e.stages.Comparison.Compare(req, compute, storage, network)

	return &AssessmentResult{
		ID:             e.newID(),
		GeneratedAt:    e.now(),
		Input:          input,
		Requirements:   req,
		Compute:        compute,
		Storage:        storage,
		Network:        network,
		Labor:          labor,
		Comparison:     comparison,
		Recommendation: e.stages.Recommendation.Recommend(req, input.Complexity),
		ROI:            e.stages.ROI.Analyze(comparison, labor),
	}, nil
}

func normalizeInput(input AssessmentInput) (AssessmentInput, error) {
	if !input.Complexity.Valid() {
		return input, fmt.Errorf("%w: %q", ErrUnknownComplexityTier, input.Complexity)
	}

	if input.TargetService == "" {
		input.TargetService = reference.WorkSpaces
	}
	if _, err := reference.LookupService(input.TargetService); err != nil {
		return input, err
	}

	if input.Timeline == "" {
		input.Timeline = reference.Standard
	}
	if !input.Timeline.Valid() {
		return input, fmt.Errorf("%w: %q", ErrUnknownTimeline, input.Timeline)
	}

	if input.CurrentEnvironment == "" {
		input.CurrentEnvironment = reference.DefaultCurrentEnvironment
	}

	population := make(Population, len(input.Population))
	for u, n := range input.Population {
		population[u] = n
	}
	input.Population = population
	return input, nil
}
