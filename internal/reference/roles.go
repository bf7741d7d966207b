package reference

// Headcount is the staffing formula of a project role.
//
// Exactly one shape applies, checked in this order:
//   - PerUsers > 0: ceil(totalUsers / PerUsers)
//   - Threshold > 0: Fixed below Threshold users, AtThreshold from Threshold up
//   - otherwise: Fixed
type Headcount struct {
	Fixed       int `json:"fixed,omitempty"`
	PerUsers    int `json:"perUsers,omitempty"`
	Threshold   int `json:"threshold,omitempty"`
	AtThreshold int `json:"atThreshold,omitempty"`
}

// For returns the headcount for a population of totalUsers.
func (h Headcount) For(totalUsers int) int {
	if totalUsers < 0 {
		totalUsers = 0
	}
	switch {
	case h.PerUsers > 0:
		return (totalUsers + h.PerUsers - 1) / h.PerUsers
	case h.Threshold > 0 && totalUsers >= h.Threshold:
		return h.AtThreshold
	default:
		return h.Fixed
	}
}

// RoleSpec is one role of the migration project team.
type RoleSpec struct {
	Key        string    `json:"key"`
	Name       string    `json:"name"`
	Headcount  Headcount `json:"headcount"`
	HourlyRate float64   `json:"hourlyRate"`
	// EffortPercent is the share of a 40h week allocated at Low complexity.
	EffortPercent float64 `json:"effortPercent"`
	Description   string  `json:"description"`
}

var roles = []RoleSpec{
	{
		Key:           "project_manager",
		Name:          "Project Manager",
		Headcount:     Headcount{Fixed: 1},
		HourlyRate:    125,
		EffortPercent: 50,
		Description:   "Overall project coordination and management",
	},
	{
		Key:           "solution_architect",
		Name:          "Solution Architect",
		Headcount:     Headcount{Fixed: 1},
		HourlyRate:    150,
		EffortPercent: 75,
		Description:   "Cloud solution design and architecture",
	},
	{
		Key:           "vdi_specialist",
		Name:          "VDI Migration Specialist",
		Headcount:     Headcount{Fixed: 1, Threshold: 500, AtThreshold: 2},
		HourlyRate:    140,
		EffortPercent: 100,
		Description:   "VDI platform migration and optimization",
	},
	{
		Key:           "network_engineer",
		Name:          "Network Engineer",
		Headcount:     Headcount{Fixed: 1},
		HourlyRate:    120,
		EffortPercent: 60,
		Description:   "Network design and connectivity setup",
	},
	{
		Key:           "security_engineer",
		Name:          "Security Engineer",
		Headcount:     Headcount{Fixed: 1},
		HourlyRate:    135,
		EffortPercent: 40,
		Description:   "Security design and compliance",
	},
	{
		Key:           "systems_engineer",
		Name:          "Systems Engineer",
		Headcount:     Headcount{PerUsers: 250},
		HourlyRate:    110,
		EffortPercent: 80,
		Description:   "System implementation and configuration",
	},
	{
		Key:           "application_specialist",
		Name:          "Application Migration Specialist",
		Headcount:     Headcount{Fixed: 1, Threshold: 300, AtThreshold: 2},
		HourlyRate:    125,
		EffortPercent: 70,
		Description:   "Application compatibility and migration",
	},
	{
		Key:           "training_specialist",
		Name:          "Training Specialist",
		Headcount:     Headcount{PerUsers: 500},
		HourlyRate:    95,
		EffortPercent: 60,
		Description:   "User training and change management",
	},
}

// Roles returns the project role table in display order.
func Roles() []RoleSpec {
	return append([]RoleSpec(nil), roles...)
}
