package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
	"github.com/kubev2v/vdi-migration-planner/pkg/log"
	"github.com/kubev2v/vdi-migration-planner/pkg/metrics"
)

// Catalog is the reference data an assessment is computed against.
type Catalog struct {
	Profiles []reference.Profile             `json:"profiles"`
	Services []reference.ServiceCatalogEntry `json:"services"`
	Phases   []reference.MigrationPhase      `json:"phases"`
	Roles    []reference.RoleSpec            `json:"roles"`
}

// AssessmentService runs assessments for the CLI and the API.
// It holds no per-run state.
type AssessmentService struct {
	estimator *estimation.Estimator
	logger    *log.StructuredLogger
}

func NewAssessmentService(estimator *estimation.Estimator) *AssessmentService {
	return &AssessmentService{
		estimator: estimator,
		logger:    log.NewDebugLogger("assessment_service"),
	}
}

// RunAssessment produces a fresh result for input. A zero population yields
// *ErrEmptyPopulation; unknown keys or negative counts yield
// *ErrInvalidAssessmentRequest.
func (as *AssessmentService) RunAssessment(ctx context.Context, input estimation.AssessmentInput) (*estimation.AssessmentResult, error) {
	logger := as.logger.WithContext(ctx)
	tracer := logger.Operation("run_assessment").
		WithInt("total_users", input.Population.Total()).
		WithString("complexity", string(input.Complexity)).
		WithString("target_service", string(input.TargetService)).
		Build()

	result, err := as.estimator.Run(input)
	if err != nil {
		tracer.Error(err).Log()
		switch {
		case errors.Is(err, estimation.ErrEmptyPopulation):
			metrics.IncreaseAssessmentsTotalMetric(metrics.StatusInvalid)
			return nil, NewErrEmptyPopulation()
		case isInputError(err):
			metrics.IncreaseAssessmentsTotalMetric(metrics.StatusInvalid)
			return nil, NewErrInvalidAssessmentRequest(err)
		default:
			metrics.IncreaseAssessmentsTotalMetric(metrics.StatusFailed)
			return nil, fmt.Errorf("failed to run assessment: %w", err)
		}
	}

	tracer.Step("requirements").
		WithInt("concurrent_users", result.Requirements.TotalConcurrent).
		WithInt("cpu_cores", result.Requirements.TotalCPUCores).
		Log()
	tracer.Step("labor").
		WithInt("duration_weeks", result.Labor.ProjectDurationWeeks).
		WithFloat("grand_total", result.Labor.GrandTotalCost).
		Log()

	metrics.IncreaseAssessmentsTotalMetric(metrics.StatusSuccess)
	metrics.ObserveAssessmentUsers(result.Requirements.TotalUsers)

	tracer.Success().
		WithUUID("assessment_id", result.ID).
		WithFloat("monthly_cost", result.Requirements.MonthlyCost).
		WithString("recommendation", string(result.Recommendation.Service)).
		Log()

	return result, nil
}

func (as *AssessmentService) Catalog(ctx context.Context) Catalog {
	as.logger.WithContext(ctx).Operation("get_catalog").Build().Success().Log()

	return Catalog{
		Profiles: reference.Profiles(),
		Services: reference.Services(),
		Phases:   reference.MigrationPhases(),
		Roles:    reference.Roles(),
	}
}

func isInputError(err error) bool {
	for _, target := range []error{
		estimation.ErrUnknownUserType,
		estimation.ErrNegativeCount,
		estimation.ErrCountTooLarge,
		estimation.ErrUnknownComplexityTier,
		estimation.ErrUnknownService,
		estimation.ErrUnknownTimeline,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
