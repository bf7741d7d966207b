package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/estimation/calculators"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
	"github.com/kubev2v/vdi-migration-planner/internal/service"
)

var _ = Describe("Assessment Service", func() {
	var svc *service.AssessmentService

	BeforeEach(func() {
		estimator := estimation.NewEstimator(calculators.DefaultStages(estimation.DefaultRates()))
		svc = service.NewAssessmentService(estimator)
	})

	Context("RunAssessment", func() {
		It("runs an assessment for a task worker population", func() {
			result, err := svc.RunAssessment(context.TODO(), estimation.AssessmentInput{
				Population: estimation.Population{reference.TaskWorker: 100},
				Complexity: reference.Medium,
			})
			Expect(err).To(BeNil())
			Expect(result).NotTo(BeNil())

			Expect(result.Requirements.TotalConcurrent).To(Equal(80))
			Expect(result.Requirements.TotalCPUCores).To(Equal(160))
			Expect(result.Requirements.TotalMemoryGB).To(Equal(320))
			Expect(result.Requirements.TotalStorageGB).To(Equal(5000))
			Expect(result.Requirements.MonthlyCost).To(BeNumerically("~", 2500, 1e-6))
			Expect(result.Input.TargetService).To(Equal(reference.WorkSpaces))
			Expect(result.Labor.Team).To(HaveLen(8))
			Expect(result.Comparison.Options).To(HaveLen(3))
		})

		It("returns a new id for every run", func() {
			input := estimation.AssessmentInput{
				Population: estimation.Population{reference.PowerUser: 5},
				Complexity: reference.Low,
			}
			first, err := svc.RunAssessment(context.TODO(), input)
			Expect(err).To(BeNil())
			second, err := svc.RunAssessment(context.TODO(), input)
			Expect(err).To(BeNil())

			Expect(first.ID).NotTo(Equal(second.ID))
			Expect(first.Requirements).To(Equal(second.Requirements))
		})

		It("reports an empty population", func() {
			_, err := svc.RunAssessment(context.TODO(), estimation.AssessmentInput{
				Population: estimation.Population{reference.TaskWorker: 0},
				Complexity: reference.Low,
			})
			Expect(err).NotTo(BeNil())

			var emptyErr *service.ErrEmptyPopulation
			Expect(errors.As(err, &emptyErr)).To(BeTrue())
		})

		It("rejects a negative count", func() {
			_, err := svc.RunAssessment(context.TODO(), estimation.AssessmentInput{
				Population: estimation.Population{reference.TaskWorker: -1},
				Complexity: reference.Low,
			})

			var invalidErr *service.ErrInvalidAssessmentRequest
			Expect(errors.As(err, &invalidErr)).To(BeTrue())
			Expect(errors.Is(err, estimation.ErrNegativeCount)).To(BeTrue())
		})

		It("rejects counts above the supported maximum", func() {
			_, err := svc.RunAssessment(context.TODO(), estimation.AssessmentInput{
				Population: estimation.Population{
					reference.TaskWorker: estimation.MaxUsersPerType + 1,
					reference.PowerUser:  estimation.MaxUsersPerType + 1,
				},
				Complexity: reference.Low,
			})

			var invalidErr *service.ErrInvalidAssessmentRequest
			Expect(errors.As(err, &invalidErr)).To(BeTrue())
			Expect(errors.Is(err, estimation.ErrCountTooLarge)).To(BeTrue())
		})

		It("rejects an unknown complexity tier", func() {
			_, err := svc.RunAssessment(context.TODO(), estimation.AssessmentInput{
				Population: estimation.Population{reference.TaskWorker: 10},
				Complexity: "Extreme",
			})

			var invalidErr *service.ErrInvalidAssessmentRequest
			Expect(errors.As(err, &invalidErr)).To(BeTrue())
			Expect(errors.Is(err, estimation.ErrUnknownComplexityTier)).To(BeTrue())
		})

		It("rejects an unknown user type", func() {
			_, err := svc.RunAssessment(context.TODO(), estimation.AssessmentInput{
				Population: estimation.Population{"contractor": 10},
				Complexity: reference.Low,
			})

			var invalidErr *service.ErrInvalidAssessmentRequest
			Expect(errors.As(err, &invalidErr)).To(BeTrue())
		})
	})

	Context("Catalog", func() {
		It("returns the reference data", func() {
			catalog := svc.Catalog(context.TODO())

			Expect(catalog.Profiles).To(HaveLen(4))
			Expect(catalog.Services).To(HaveLen(3))
			Expect(catalog.Phases).To(HaveLen(4))
			Expect(catalog.Roles).To(HaveLen(8))
		})
	})
})
