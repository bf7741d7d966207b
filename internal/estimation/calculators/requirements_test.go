package calculators

import (
	"errors"
	"math"
	"testing"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

const floatTolerance = 1e-6

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

func TestRequirements_Calculate_TaskWorkers(t *testing.T) {
	t.Parallel()
	calc := NewRequirements()

	result, err := calc.Calculate(estimation.Population{reference.TaskWorker: 100})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// 100 users * 0.8 = 80 concurrent
	// 80 * 2 cores = 160, 80 * 4 GB = 320, 100 * 50 GB = 5000, 100 * $25 = $2500
	if result.TotalUsers != 100 {
		t.Errorf("expected 100 users, got %d", result.TotalUsers)
	}
	if result.TotalConcurrent != 80 {
		t.Errorf("expected 80 concurrent users, got %d", result.TotalConcurrent)
	}
	if result.TotalCPUCores != 160 {
		t.Errorf("expected 160 cores, got %d", result.TotalCPUCores)
	}
	if result.TotalMemoryGB != 320 {
		t.Errorf("expected 320 GB memory, got %d", result.TotalMemoryGB)
	}
	if result.TotalStorageGB != 5000 {
		t.Errorf("expected 5000 GB storage, got %d", result.TotalStorageGB)
	}
	if !approxEqual(result.MonthlyCost, 2500) {
		t.Errorf("expected monthly cost 2500, got %f", result.MonthlyCost)
	}
	if !approxEqual(result.AnnualCost, 30000) {
		t.Errorf("expected annual cost 30000, got %f", result.AnnualCost)
	}
	if !approxEqual(result.AverageConcurrentRatio, 0.8) {
		t.Errorf("expected average ratio 0.8, got %f", result.AverageConcurrentRatio)
	}
	if len(result.Breakdown) != 1 || result.Breakdown[0].UserType != reference.TaskWorker {
		t.Errorf("expected a single task worker breakdown, got %+v", result.Breakdown)
	}
}

func TestRequirements_Calculate_ConcurrencyRoundsUp(t *testing.T) {
	t.Parallel()
	calc := NewRequirements()

	cases := []struct {
		name       string
		userType   reference.UserType
		count      int
		concurrent int
	}{
		{name: "single task worker", userType: reference.TaskWorker, count: 1, concurrent: 1},
		{name: "graphics exact", userType: reference.GraphicsUser, count: 10, concurrent: 7},
		{name: "graphics rounds up", userType: reference.GraphicsUser, count: 5, concurrent: 4},
		{name: "power users", userType: reference.PowerUser, count: 21, concurrent: 20},
		{name: "knowledge workers", userType: reference.KnowledgeWorker, count: 3, concurrent: 3},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result, err := calc.Calculate(estimation.Population{tc.userType: tc.count})
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if result.TotalConcurrent != tc.concurrent {
				t.Errorf("expected %d concurrent users, got %d", tc.concurrent, result.TotalConcurrent)
			}
			if result.TotalConcurrent > result.TotalUsers {
				t.Errorf("concurrent users %d exceed total users %d", result.TotalConcurrent, result.TotalUsers)
			}
		})
	}
}

func TestRequirements_Calculate_BreakdownSumsToTotals(t *testing.T) {
	t.Parallel()
	calc := NewRequirements()

	result, err := calc.Calculate(estimation.Population{
		reference.TaskWorker:      37,
		reference.KnowledgeWorker: 120,
		reference.PowerUser:       0,
		reference.GraphicsUser:    9,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(result.Breakdown) != 3 {
		t.Fatalf("expected zero-count types to be omitted, got %d records", len(result.Breakdown))
	}
	want := []reference.UserType{reference.TaskWorker, reference.KnowledgeWorker, reference.GraphicsUser}
	var users, concurrent, cpu, mem, storage int
	var cost float64
	for i, b := range result.Breakdown {
		if b.UserType != want[i] {
			t.Errorf("expected record %d to be %s, got %s", i, want[i], b.UserType)
		}
		users += b.TotalUsers
		concurrent += b.ConcurrentUsers
		cpu += b.CPUCores
		mem += b.MemoryGB
		storage += b.StorageGB
		cost += b.MonthlyCost
	}
	if users != result.TotalUsers || concurrent != result.TotalConcurrent || cpu != result.TotalCPUCores ||
		mem != result.TotalMemoryGB || storage != result.TotalStorageGB {
		t.Errorf("breakdown does not sum to totals: %+v", result)
	}
	if !approxEqual(cost, result.MonthlyCost) {
		t.Errorf("expected breakdown cost %f to equal total %f", cost, result.MonthlyCost)
	}
}

func TestRequirements_Calculate_Monotonic(t *testing.T) {
	t.Parallel()
	calc := NewRequirements()

	prev, err := calc.Calculate(estimation.Population{reference.KnowledgeWorker: 1})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	for n := 2; n <= 300; n++ {
		cur, err := calc.Calculate(estimation.Population{reference.KnowledgeWorker: n})
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if cur.TotalConcurrent < prev.TotalConcurrent || cur.TotalCPUCores < prev.TotalCPUCores ||
			cur.TotalMemoryGB < prev.TotalMemoryGB || cur.TotalStorageGB < prev.TotalStorageGB ||
			cur.MonthlyCost < prev.MonthlyCost {
			t.Fatalf("requirements decreased from %d to %d users", n-1, n)
		}
		prev = cur
	}
}

func TestRequirements_Calculate_Idempotent(t *testing.T) {
	t.Parallel()
	calc := NewRequirements()
	population := estimation.Population{reference.PowerUser: 42, reference.GraphicsUser: 3}

	first, err := calc.Calculate(population)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := calc.Calculate(population)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if first.TotalConcurrent != second.TotalConcurrent || first.MonthlyCost != second.MonthlyCost {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestRequirements_Calculate_ErrorCases(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name       string
		population estimation.Population
		err        error
	}{
		{
			name:       "nil population",
			population: nil,
			err:        estimation.ErrEmptyPopulation,
		},
		{
			name:       "all zero",
			population: estimation.Population{reference.TaskWorker: 0, reference.PowerUser: 0},
			err:        estimation.ErrEmptyPopulation,
		},
		{
			name:       "unknown user type",
			population: estimation.Population{"contractor": 5},
			err:        estimation.ErrUnknownUserType,
		},
		{
			name:       "negative count",
			population: estimation.Population{reference.TaskWorker: 10, reference.PowerUser: -1},
			err:        estimation.ErrNegativeCount,
		},
		{
			name:       "count above maximum",
			population: estimation.Population{reference.TaskWorker: estimation.MaxUsersPerType + 1},
			err:        estimation.ErrCountTooLarge,
		},
		{
			name:       "overflowing counts",
			population: estimation.Population{reference.TaskWorker: math.MaxInt/2 + 1, reference.PowerUser: math.MaxInt/2 + 1},
			err:        estimation.ErrCountTooLarge,
		},
	}

	calc := NewRequirements()
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := calc.Calculate(tc.population)
			if !errors.Is(err, tc.err) {
				t.Errorf("expected %v, got: %v", tc.err, err)
			}
		})
	}
}

func TestRequirements_WithProfiles(t *testing.T) {
	t.Parallel()
	custom, _ := reference.TaskWorker.Profile()
	custom.BundleMonthlyPrice = 30
	invalid, _ := reference.PowerUser.Profile()
	invalid.ConcurrentRatio = 2

	calc := NewRequirements(WithProfiles(custom, invalid))

	result, err := calc.Calculate(estimation.Population{reference.TaskWorker: 10, reference.PowerUser: 10})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	// 10 * $30 + 10 * $68
	if !approxEqual(result.MonthlyCost, 980) {
		t.Errorf("expected monthly cost 980, got %f", result.MonthlyCost)
	}
	// invalid override ignored: ceil(10 * 0.95) = 10, plus ceil(10 * 0.8) = 8
	if result.TotalConcurrent != 18 {
		t.Errorf("expected 18 concurrent users, got %d", result.TotalConcurrent)
	}
}
