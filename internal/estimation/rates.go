package estimation

import (
	"fmt"

	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// Rates consolidates every pricing and density constant used by the
// calculators. A Rates value is fixed for the lifetime of an Estimator.
type Rates struct {
	Compute    ComputeRates    `json:"compute"`
	Storage    StorageRates    `json:"storage"`
	Network    NetworkRates    `json:"network"`
	Labor      LaborRates      `json:"labor"`
	Comparison ComparisonRates `json:"comparison"`
}

// InstanceRate is the shape and price of a self-hosted desktop instance.
type InstanceRate struct {
	InstanceType     string  `json:"instanceType"`
	VCPU             int     `json:"vcpu"`
	MemoryGB         int     `json:"memoryGb"`
	UsersPerInstance int     `json:"usersPerInstance"`
	HourlyRate       float64 `json:"hourlyRate"`
}

type ComputeRates struct {
	Standard     InstanceRate `json:"standard"`
	Graphics     InstanceRate `json:"graphics"`
	HoursPerDay  float64      `json:"hoursPerDay"`
	DaysPerMonth float64      `json:"daysPerMonth"`
	// GraphicsBundles lists the bundle names served by graphics instances.
	GraphicsBundles []string `json:"graphicsBundles"`
}

// StorageRates prices storage per GB-month.
type StorageRates struct {
	OSImageGBPerUser    float64 `json:"osImageGbPerUser"`
	ProfileGBPerUser    float64 `json:"profileGbPerUser"`
	SharedGBPerUser     float64 `json:"sharedGbPerUser"`
	BackupFraction      float64 `json:"backupFraction"`
	GeneralPurposePerGB float64 `json:"generalPurposePerGb"`
	SharedFilePerGB     float64 `json:"sharedFilePerGb"`
	BackupPerGB         float64 `json:"backupPerGb"`
}

type NetworkRates struct {
	BandwidthMbps      map[reference.UserType]float64 `json:"bandwidthMbps"`
	OverheadMultiplier float64                        `json:"overheadMultiplier"`
	DaysPerMonth       float64                        `json:"daysPerMonth"`
	DailyGBPerUser     float64                        `json:"dailyGbPerUser"`
	VPNGatewayMonthly  float64                        `json:"vpnGatewayMonthly"`
	NATGatewayMonthly  float64                        `json:"natGatewayMonthly"`
	TransferPerGB      float64                        `json:"transferPerGb"`
	// TransferCapGB bounds the billed transfer volume; traffic above it is not priced.
	TransferCapGB              float64 `json:"transferCapGb"`
	DirectConnectUserThreshold int     `json:"directConnectUserThreshold"`
}

type LaborRates struct {
	HoursPerWeek          float64                          `json:"hoursPerWeek"`
	ComplexityMultipliers map[reference.Complexity]float64 `json:"complexityMultipliers"`
	TrainingPerUser       float64                          `json:"trainingPerUser"`
	ProjectTools          float64                          `json:"projectTools"`
	ContingencyFraction   float64                          `json:"contingencyFraction"`
}

type ComparisonRates struct {
	AppStreamPremium       float64 `json:"appStreamPremium"`
	CurrentPlatformPremium float64 `json:"currentPlatformPremium"`
	EC2MigrationPremium    float64 `json:"ec2MigrationPremium"`
	HorizonYears           int     `json:"horizonYears"`
	SmallPopulation        int     `json:"smallPopulation"`
	LargePopulation        int     `json:"largePopulation"`
}

// DefaultRates returns on-demand list prices for a single region. Each call
// returns fresh maps and slices.
func DefaultRates() Rates {
	return Rates{
		Compute: ComputeRates{
			Standard: InstanceRate{
				InstanceType:     "m5.xlarge",
				VCPU:             4,
				MemoryGB:         16,
				UsersPerInstance: 4,
				HourlyRate:       0.192,
			},
			Graphics: InstanceRate{
				InstanceType:     "g4dn.xlarge",
				VCPU:             4,
				MemoryGB:         16,
				UsersPerInstance: 2,
				HourlyRate:       0.526,
			},
			HoursPerDay:     24,
			DaysPerMonth:    30,
			GraphicsBundles: []string{"Graphics.g4dn"},
		},
		Storage: StorageRates{
			OSImageGBPerUser:    50,
			ProfileGBPerUser:    10,
			SharedGBPerUser:     20,
			BackupFraction:      0.3,
			GeneralPurposePerGB: 0.08,
			SharedFilePerGB:     0.13,
			BackupPerGB:         0.04,
		},
		Network: NetworkRates{
			BandwidthMbps: map[reference.UserType]float64{
				reference.TaskWorker:      1.5,
				reference.KnowledgeWorker: 2.5,
				reference.PowerUser:       5.0,
				reference.GraphicsUser:    15.0,
			},
			OverheadMultiplier:         1.3,
			DaysPerMonth:               30,
			DailyGBPerUser:             20,
			VPNGatewayMonthly:          36.50,
			NATGatewayMonthly:          32.40,
			TransferPerGB:              0.09,
			TransferCapGB:              10000,
			DirectConnectUserThreshold: 500,
		},
		Labor: LaborRates{
			HoursPerWeek: 40,
			ComplexityMultipliers: map[reference.Complexity]float64{
				reference.Low:    1.0,
				reference.Medium: 1.3,
				reference.High:   1.6,
			},
			TrainingPerUser:     50,
			ProjectTools:        25000,
			ContingencyFraction: 0.15,
		},
		Comparison: ComparisonRates{
			AppStreamPremium:       1.15,
			CurrentPlatformPremium: 1.2,
			EC2MigrationPremium:    1.2,
			HorizonYears:           5,
			SmallPopulation:        100,
			LargePopulation:        1000,
		},
	}
}

// Validate rejects rate tables the calculators cannot work with.
func (r Rates) Validate() error {
	for _, inst := range []InstanceRate{r.Compute.Standard, r.Compute.Graphics} {
		if inst.UsersPerInstance <= 0 {
			return fmt.Errorf("compute: %s users per instance must be positive", inst.InstanceType)
		}
		if inst.HourlyRate < 0 {
			return fmt.Errorf("compute: %s hourly rate must be non-negative", inst.InstanceType)
		}
	}
	if r.Compute.HoursPerDay < 0 || r.Compute.DaysPerMonth < 0 {
		return fmt.Errorf("compute: billing period must be non-negative")
	}

	s := r.Storage
	for name, v := range map[string]float64{
		"osImageGbPerUser":    s.OSImageGBPerUser,
		"profileGbPerUser":    s.ProfileGBPerUser,
		"sharedGbPerUser":     s.SharedGBPerUser,
		"backupFraction":      s.BackupFraction,
		"generalPurposePerGb": s.GeneralPurposePerGB,
		"sharedFilePerGb":     s.SharedFilePerGB,
		"backupPerGb":         s.BackupPerGB,
	} {
		if v < 0 {
			return fmt.Errorf("storage: %s must be non-negative", name)
		}
	}

	n := r.Network
	for u, mbps := range n.BandwidthMbps {
		if !u.Valid() {
			return fmt.Errorf("network: %w: %q", ErrUnknownUserType, u)
		}
		if mbps < 0 {
			return fmt.Errorf("network: bandwidth for %s must be non-negative", u)
		}
	}
	for _, u := range reference.UserTypes() {
		if _, ok := n.BandwidthMbps[u]; !ok {
			return fmt.Errorf("network: missing bandwidth for %s", u)
		}
	}
	if n.OverheadMultiplier < 1 {
		return fmt.Errorf("network: overhead multiplier must be at least 1")
	}
	if n.TransferPerGB < 0 || n.TransferCapGB < 0 || n.VPNGatewayMonthly < 0 || n.NATGatewayMonthly < 0 {
		return fmt.Errorf("network: prices must be non-negative")
	}
	if n.DaysPerMonth < 0 || n.DailyGBPerUser < 0 {
		return fmt.Errorf("network: transfer volume must be non-negative")
	}
	if n.DirectConnectUserThreshold < 0 {
		return fmt.Errorf("network: direct connect user threshold must be non-negative")
	}

	l := r.Labor
	prev := 0.0
	for _, c := range reference.Complexities() {
		m, ok := l.ComplexityMultipliers[c]
		if !ok {
			return fmt.Errorf("labor: missing multiplier for %s complexity", c)
		}
		if m <= 0 || m < prev {
			return fmt.Errorf("labor: multipliers must be positive and non-decreasing from Low to High")
		}
		prev = m
	}
	for c := range l.ComplexityMultipliers {
		if !c.Valid() {
			return fmt.Errorf("labor: %w: %q", ErrUnknownComplexityTier, c)
		}
	}
	if l.HoursPerWeek <= 0 {
		return fmt.Errorf("labor: hours per week must be positive")
	}
	if l.ContingencyFraction < 0 || l.ContingencyFraction > 1 {
		return fmt.Errorf("labor: contingency fraction must be within [0,1]")
	}
	if l.TrainingPerUser < 0 || l.ProjectTools < 0 {
		return fmt.Errorf("labor: allowances must be non-negative")
	}

	c := r.Comparison
	if c.HorizonYears <= 0 {
		return fmt.Errorf("comparison: horizon years must be positive")
	}
	if c.AppStreamPremium <= 0 || c.CurrentPlatformPremium <= 0 || c.EC2MigrationPremium <= 0 {
		return fmt.Errorf("comparison: premiums must be positive")
	}
	if c.SmallPopulation < 0 || c.LargePopulation < c.SmallPopulation {
		return fmt.Errorf("comparison: population thresholds must satisfy 0 <= small <= large")
	}
	return nil
}
