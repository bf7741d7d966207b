package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// ratesCollector exposes the pricing an API process was started with, so
// dashboards can tell which rate table produced an estimate.
type ratesCollector struct {
	rates         estimation.Rates
	bundlePrice   *prometheus.Desc
	instanceRate  *prometheus.Desc
	laborMultiple *prometheus.Desc
}

func NewRatesCollector(rates estimation.Rates) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_rates_%s", vdiPlanner, name)
	}

	return &ratesCollector{
		rates: rates,
		bundlePrice: prometheus.NewDesc(
			fqName("bundle_monthly_price"),
			"Monthly managed desktop bundle price per user type.",
			[]string{"user_type", "bundle"},
			nil,
		),
		instanceRate: prometheus.NewDesc(
			fqName("instance_hourly_price"),
			"Hourly price of a self-hosted desktop instance.",
			[]string{"class", "instance_type"},
			nil,
		),
		laborMultiple: prometheus.NewDesc(
			fqName("complexity_multiplier"),
			"Labor effort multiplier per complexity tier.",
			[]string{"complexity"},
			nil,
		),
	}
}

func (c *ratesCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bundlePrice
	ch <- c.instanceRate
	ch <- c.laborMultiple
}

func (c *ratesCollector) Collect(ch chan<- prometheus.Metric) {
	for _, p := range reference.Profiles() {
		ch <- prometheus.MustNewConstMetric(c.bundlePrice, prometheus.GaugeValue, p.BundleMonthlyPrice, string(p.Type), p.Bundle)
	}

	ch <- prometheus.MustNewConstMetric(c.instanceRate, prometheus.GaugeValue,
		c.rates.Compute.Standard.HourlyRate, string(estimation.StandardClass), c.rates.Compute.Standard.InstanceType)
	ch <- prometheus.MustNewConstMetric(c.instanceRate, prometheus.GaugeValue,
		c.rates.Compute.Graphics.HourlyRate, string(estimation.GraphicsClass), c.rates.Compute.Graphics.InstanceType)

	for _, tier := range reference.Complexities() {
		if m, ok := c.rates.Labor.ComplexityMultipliers[tier]; ok {
			ch <- prometheus.MustNewConstMetric(c.laborMultiple, prometheus.GaugeValue, m, string(tier))
		}
	}
}
