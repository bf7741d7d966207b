package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

func TestIncreaseAssessmentsTotalMetric(t *testing.T) {
	before := testutil.ToFloat64(assessmentsTotalMetric.WithLabelValues(StatusInvalid))
	IncreaseAssessmentsTotalMetric(StatusInvalid)
	assert.Equal(t, before+1, testutil.ToFloat64(assessmentsTotalMetric.WithLabelValues(StatusInvalid)))
}

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	m := NewMiddleware("test")
	reg := prometheus.NewRegistry()
	reg.MustRegister(m.Collectors()...)

	router := chi.NewRouter()
	router.Use(m.Handler)
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/2", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("200", http.MethodGet, "/items/{id}")))
}

func TestMiddleware_MustRegisterDefaultPanicsWithoutCollectors(t *testing.T) {
	assert.Panics(t, func() { Middleware{}.MustRegisterDefault() })
}

func TestRatesCollector(t *testing.T) {
	rates := estimation.DefaultRates()
	rates.Labor.ComplexityMultipliers[reference.High] = 2.0

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewRatesCollector(rates)))

	families, err := reg.Gather()
	require.NoError(t, err)

	multipliers := gaugeValues(t, families, "vdi_planner_rates_complexity_multiplier", "complexity")
	assert.Equal(t, map[string]float64{"Low": 1.0, "Medium": 1.3, "High": 2.0}, multipliers)

	instances := gaugeValues(t, families, "vdi_planner_rates_instance_hourly_price", "instance_type")
	assert.Equal(t, map[string]float64{"m5.xlarge": 0.192, "g4dn.xlarge": 0.526}, instances)

	count, err := testutil.GatherAndCount(reg, "vdi_planner_rates_bundle_monthly_price")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

// gaugeValues maps the label value of each sample in the named family to its
// gauge value.
func gaugeValues(t *testing.T, families []*dto.MetricFamily, name, label string) map[string]float64 {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		res := make(map[string]float64, len(mf.GetMetric()))
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label {
					res[lp.GetValue()] = m.GetGauge().GetValue()
				}
			}
		}
		return res
	}
	t.Fatalf("metric family %s not gathered", name)
	return nil
}
