package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/vdi-migration-planner/api/v1alpha1"
	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/estimation/calculators"
	handlers "github.com/kubev2v/vdi-migration-planner/internal/handlers/v1alpha1"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
	"github.com/kubev2v/vdi-migration-planner/internal/service"
	"github.com/kubev2v/vdi-migration-planner/pkg/middleware"
	"github.com/kubev2v/vdi-migration-planner/pkg/requestid"
)

var _ = Describe("assessment handler", Ordered, func() {
	var router *chi.Mux

	BeforeAll(func() {
		estimator := estimation.NewEstimator(calculators.DefaultStages(estimation.DefaultRates()))
		h := handlers.NewServiceHandler(service.NewAssessmentService(estimator))

		router = chi.NewRouter()
		router.Use(middleware.RequestID)
		h.RegisterRoutes(router)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(requestid.Header, "test-request")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decodeError := func(rec *httptest.ResponseRecorder) v1alpha1.Error {
		var e v1alpha1.Error
		Expect(json.Unmarshal(rec.Body.Bytes(), &e)).To(Succeed())
		return e
	}

	Context("create assessment", func() {
		It("successfully runs an assessment", func() {
			rec := post(`{"population": {"task_worker": 100}, "complexity": "Medium", "currentEnvironment": "Citrix"}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var result estimation.AssessmentResult
			Expect(json.Unmarshal(rec.Body.Bytes(), &result)).To(Succeed())
			Expect(result.Requirements.TotalConcurrent).To(Equal(80))
			Expect(result.Requirements.MonthlyCost).To(BeNumerically("~", 2500, 1e-6))
			Expect(result.Input.CurrentEnvironment).To(Equal("Citrix"))
			Expect(result.Input.TargetService).To(Equal(reference.WorkSpaces))
			Expect(result.Input.Timeline).To(Equal(reference.Standard))
			Expect(result.Labor.ProjectDurationWeeks).To(Equal(26))
		})

		It("returns 422 for an empty population", func() {
			rec := post(`{"population": {"task_worker": 0}, "complexity": "Low"}`)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))

			e := decodeError(rec)
			Expect(e.Message).To(ContainSubstring("population is empty"))
			Expect(e.RequestId).NotTo(BeNil())
			Expect(*e.RequestId).To(Equal("test-request"))
		})

		It("returns 422 when the population is missing", func() {
			rec := post(`{"complexity": "Low"}`)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("returns 400 for an unknown user type", func() {
			rec := post(`{"population": {"contractor": 3}, "complexity": "Low"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Message).To(ContainSubstring("Population[contractor]"))
		})

		It("returns 400 for a negative count", func() {
			rec := post(`{"population": {"task_worker": -5}, "complexity": "Low"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for counts that would overflow the total", func() {
			rec := post(`{"population": {"task_worker": 4611686018427387904, "power_user": 4611686018427387904}, "complexity": "Low"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Message).To(ContainSubstring("less than or equal to 1000000"))
		})

		It("returns 400 for an unknown complexity", func() {
			rec := post(`{"population": {"task_worker": 5}, "complexity": "Extreme"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for a malformed body", func() {
			rec := post(`{"population":`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Message).To(ContainSubstring("failed to decode"))
		})
	})

	Context("catalog", func() {
		It("returns the reference data", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var catalog service.Catalog
			Expect(json.Unmarshal(rec.Body.Bytes(), &catalog)).To(Succeed())
			Expect(catalog.Profiles).To(HaveLen(4))
			Expect(catalog.Services).To(HaveLen(3))
			Expect(catalog.Roles).To(HaveLen(8))
		})
	})

	Context("health and info", func() {
		It("reports healthy", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"status":"ok"`))
		})

		It("returns version information", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/info", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var info v1alpha1.Info
			Expect(json.Unmarshal(rec.Body.Bytes(), &info)).To(Succeed())
			Expect(info.VersionName).NotTo(BeEmpty())
		})
	})
})
