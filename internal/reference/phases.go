package reference

// MigrationPhase is one sequential stage of the migration project.
type MigrationPhase struct {
	Name          string   `json:"name"`
	DurationWeeks int      `json:"durationWeeks"`
	Activities    []string `json:"activities"`
	Deliverables  []string `json:"deliverables"`
}

var migrationPhases = []MigrationPhase{
	{
		Name:          "Assessment & Planning",
		DurationWeeks: 4,
		Activities: []string{
			"Current state analysis",
			"User profiling and requirements gathering",
			"Application compatibility assessment",
			"Network and security requirements",
			"Migration strategy definition",
		},
		Deliverables: []string{
			"Migration assessment report",
			"Technical architecture design",
			"Migration plan and timeline",
			"Risk assessment and mitigation plan",
		},
	},
	{
		Name:          "Pilot Implementation",
		DurationWeeks: 6,
		Activities: []string{
			"Cloud environment setup",
			"Pilot user group selection",
			"Application migration and testing",
			"User training development",
			"Performance optimization",
		},
		Deliverables: []string{
			"Pilot environment",
			"Migrated applications",
			"Training materials",
			"Performance baseline",
		},
	},
	{
		Name:          "Production Migration",
		DurationWeeks: 12,
		Activities: []string{
			"Phased user migration",
			"Application deployment",
			"User training delivery",
			"Support and monitoring setup",
			"Optimization and tuning",
		},
		Deliverables: []string{
			"Production VDI environment",
			"Migrated user base",
			"Support procedures",
			"Documentation",
		},
	},
	{
		Name:          "Optimization & Closure",
		DurationWeeks: 4,
		Activities: []string{
			"Performance monitoring",
			"Cost optimization",
			"User feedback integration",
			"Final documentation",
			"Project closure",
		},
		Deliverables: []string{
			"Optimized environment",
			"Final documentation",
			"Lessons learned",
			"Support handover",
		},
	},
}

// MigrationPhases returns a deep copy of the four-phase project template.
func MigrationPhases() []MigrationPhase {
	return ClonePhases(migrationPhases)
}

// ClonePhases returns a deep copy of phases; the result shares no slices
// with the input.
func ClonePhases(phases []MigrationPhase) []MigrationPhase {
	res := make([]MigrationPhase, 0, len(phases))
	for _, p := range phases {
		res = append(res, MigrationPhase{
			Name:          p.Name,
			DurationWeeks: p.DurationWeeks,
			Activities:    append([]string(nil), p.Activities...),
			Deliverables:  append([]string(nil), p.Deliverables...),
		})
	}
	return res
}

// TotalDurationWeeks sums the phase durations; phases run back to back.
func TotalDurationWeeks(phases []MigrationPhase) int {
	total := 0
	for _, p := range phases {
		total += p.DurationWeeks
	}
	return total
}
