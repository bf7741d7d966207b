package calculators

import (
	"testing"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

func TestLabor_Estimate_HighComplexity(t *testing.T) {
	t.Parallel()
	req := mustRequirements(t, estimation.Population{reference.KnowledgeWorker: 500})

	result := NewLabor().Estimate(req, reference.High)

	if result.Multiplier != 1.6 {
		t.Errorf("expected multiplier 1.6, got %f", result.Multiplier)
	}
	if result.ProjectDurationWeeks != 26 {
		t.Errorf("expected 26 weeks, got %d", result.ProjectDurationWeeks)
	}
	if len(result.Team) != 8 {
		t.Fatalf("expected 8 roles, got %d", len(result.Team))
	}

	// 40h * 26 weeks = 1040h per full-time head
	expected := []struct {
		count int
		hours float64
		cost  float64
	}{
		{count: 1, hours: 832, cost: 104000},   // project manager, 0.5*1.6
		{count: 1, hours: 1040, cost: 156000},  // architect, capped at 100%
		{count: 2, hours: 2080, cost: 291200},  // VDI specialists from 500 users
		{count: 1, hours: 998.4, cost: 119808}, // network, 0.6*1.6
		{count: 1, hours: 665.6, cost: 89856},  // security, 0.4*1.6
		{count: 2, hours: 2080, cost: 228800},  // systems, one per 250 users
		{count: 2, hours: 2080, cost: 260000},  // application specialists from 300 users
		{count: 1, hours: 998.4, cost: 94848},  // training, one per 500 users
	}
	for i, want := range expected {
		got := result.Team[i]
		if got.Count != want.count || !approxEqual(got.TotalHours, want.hours) || !approxEqual(got.TotalCost, want.cost) {
			t.Errorf("role %s: expected %+v, got count=%d hours=%f cost=%f", got.Role, want, got.Count, got.TotalHours, got.TotalCost)
		}
		if got.EffortPercent > 100 {
			t.Errorf("role %s: effort %f exceeds 100%%", got.Role, got.EffortPercent)
		}
	}

	if !approxEqual(result.TotalTeamCost, 1344512) {
		t.Errorf("expected team cost 1344512, got %f", result.TotalTeamCost)
	}
	if !approxEqual(result.AdditionalCosts.TrainingMaterials, 25000) {
		t.Errorf("expected training materials 25000, got %f", result.AdditionalCosts.TrainingMaterials)
	}
	if !approxEqual(result.AdditionalCosts.ProjectTools, 25000) {
		t.Errorf("expected project tools 25000, got %f", result.AdditionalCosts.ProjectTools)
	}
	if !approxEqual(result.AdditionalCosts.Contingency, 201676.8) {
		t.Errorf("expected contingency 201676.8, got %f", result.AdditionalCosts.Contingency)
	}
	if !approxEqual(result.GrandTotalCost, 1596188.8) {
		t.Errorf("expected grand total 1596188.8, got %f", result.GrandTotalCost)
	}

	b := result.CostBreakdown
	if !approxEqual(b.Labor+b.MaterialsAndTools+b.Contingency, result.GrandTotalCost) {
		t.Errorf("expected breakdown %+v to sum to %f", b, result.GrandTotalCost)
	}
}

func TestLabor_Estimate_ComplexityOrdering(t *testing.T) {
	t.Parallel()
	req := mustRequirements(t, estimation.Population{reference.TaskWorker: 200})
	calc := NewLabor()

	low := calc.Estimate(req, reference.Low)
	medium := calc.Estimate(req, reference.Medium)
	high := calc.Estimate(req, reference.High)

	if !(low.GrandTotalCost <= medium.GrandTotalCost && medium.GrandTotalCost <= high.GrandTotalCost) {
		t.Errorf("expected cost to grow with complexity: low=%f medium=%f high=%f",
			low.GrandTotalCost, medium.GrandTotalCost, high.GrandTotalCost)
	}
}

func TestLabor_Multiplier(t *testing.T) {
	t.Parallel()
	rates := estimation.DefaultRates().Labor
	delete(rates.ComplexityMultipliers, reference.High)

	cases := []struct {
		name       string
		calc       *Labor
		complexity reference.Complexity
		want       float64
	}{
		{name: "low", calc: NewLabor(), complexity: reference.Low, want: 1.0},
		{name: "medium", calc: NewLabor(), complexity: reference.Medium, want: 1.3},
		{name: "high", calc: NewLabor(), complexity: reference.High, want: 1.6},
		{name: "unknown falls back to medium", calc: NewLabor(), complexity: "Extreme", want: 1.3},
		{name: "missing tier falls back to medium", calc: NewLabor(WithLaborRates(rates)), complexity: reference.High, want: 1.3},
		{name: "empty table", calc: NewLabor(WithLaborRates(estimation.LaborRates{})), complexity: reference.Low, want: DefaultComplexityMultiplier},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.calc.Multiplier(tc.complexity); got != tc.want {
				t.Errorf("expected %f, got %f", tc.want, got)
			}
		})
	}
}

func TestLabor_WithRolesAndPhases(t *testing.T) {
	t.Parallel()
	req := mustRequirements(t, estimation.Population{reference.TaskWorker: 10})

	calc := NewLabor(
		WithRoles(reference.RoleSpec{
			Key:           "engineer",
			Name:          "Engineer",
			Headcount:     reference.Headcount{Fixed: 1},
			HourlyRate:    100,
			EffortPercent: 50,
		}),
		WithPhases(reference.MigrationPhase{Name: "Cutover", DurationWeeks: 2}),
	)

	result := calc.Estimate(req, reference.Low)

	// 40h * 0.5 * 2 weeks * $100
	if !approxEqual(result.TotalTeamCost, 4000) {
		t.Errorf("expected team cost 4000, got %f", result.TotalTeamCost)
	}
	if result.ProjectDurationWeeks != 2 || len(result.Phases) != 1 {
		t.Errorf("expected the custom phase, got %+v", result.Phases)
	}
}

func TestLabor_EmptyOptionsKeepDefaults(t *testing.T) {
	t.Parallel()
	req := mustRequirements(t, estimation.Population{reference.TaskWorker: 10})

	result := NewLabor(WithRoles(), WithPhases()).Estimate(req, reference.Low)

	if len(result.Team) != len(reference.Roles()) {
		t.Errorf("expected %d roles, got %d", len(reference.Roles()), len(result.Team))
	}
	if result.ProjectDurationWeeks != 26 {
		t.Errorf("expected 26 weeks, got %d", result.ProjectDurationWeeks)
	}
}

func TestLabor_ResultsDoNotShareState(t *testing.T) {
	t.Parallel()
	req := mustRequirements(t, estimation.Population{reference.KnowledgeWorker: 20})
	calc := NewLabor()

	first := calc.Estimate(req, reference.Medium)
	want := first.Phases[0].Activities[0]
	first.Phases[0].Activities[0] = "edited"
	first.Phases[0].Deliverables[0] = "edited"
	first.Phases[0].Name = "edited"

	second := calc.Estimate(req, reference.Medium)
	if second.Phases[0].Activities[0] != want {
		t.Errorf("expected activity %q, got %q", want, second.Phases[0].Activities[0])
	}
	if second.Phases[0].Deliverables[0] == "edited" || second.Phases[0].Name == "edited" {
		t.Errorf("expected an unchanged phase template, got %+v", second.Phases[0])
	}
}

func TestLabor_WithPhasesCopiesInput(t *testing.T) {
	t.Parallel()
	req := mustRequirements(t, estimation.Population{reference.TaskWorker: 10})
	phases := []reference.MigrationPhase{{Name: "Cutover", DurationWeeks: 2, Activities: []string{"switch users"}}}

	calc := NewLabor(WithPhases(phases...))
	phases[0].Activities[0] = "edited"

	if got := calc.Estimate(req, reference.Low).Phases[0].Activities[0]; got != "switch users" {
		t.Errorf("expected the phase captured at construction, got %q", got)
	}
}
