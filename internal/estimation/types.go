package estimation

import (
	"time"

	"github.com/google/uuid"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// Population maps each user type to its head count.
type Population map[reference.UserType]int

// Total sums all counts.
func (p Population) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// UserTypeRequirements is the sizing of one non-empty user type.
type UserTypeRequirements struct {
	UserType        reference.UserType `json:"userType"`
	Name            string             `json:"name"`
	Bundle          string             `json:"bundle"`
	TotalUsers      int                `json:"totalUsers"`
	ConcurrentUsers int                `json:"concurrentUsers"`
	CPUCores        int                `json:"cpuCores"`
	MemoryGB        int                `json:"memoryGb"`
	StorageGB       int                `json:"storageGb"`
	MonthlyCost     float64            `json:"monthlyCost"`
}

// AggregateRequirements is the summed technical sizing of a population.
// Breakdown holds one record per non-zero user type, in reference order.
type AggregateRequirements struct {
	TotalUsers             int                    `json:"totalUsers"`
	TotalConcurrent        int                    `json:"totalConcurrent"`
	TotalCPUCores          int                    `json:"totalCpuCores"`
	TotalMemoryGB          int                    `json:"totalMemoryGb"`
	TotalStorageGB         int                    `json:"totalStorageGb"`
	MonthlyCost            float64                `json:"monthlyCost"`
	AnnualCost             float64                `json:"annualCost"`
	AverageConcurrentRatio float64                `json:"averageConcurrentRatio"`
	Breakdown              []UserTypeRequirements `json:"breakdown"`
}

type InstanceClass string

const (
	StandardClass InstanceClass = "standard"
	GraphicsClass InstanceClass = "graphics"
)

// InstanceGroup is the self-hosted instance fleet serving one class of users.
type InstanceGroup struct {
	Class                  InstanceClass `json:"class"`
	InstanceType           string        `json:"instanceType"`
	ConcurrentUsers        int           `json:"concurrentUsers"`
	Count                  int           `json:"count"`
	VCPUPerInstance        int           `json:"vcpuPerInstance"`
	MemoryGBPerInstance    int           `json:"memoryGbPerInstance"`
	UsersPerInstance       int           `json:"usersPerInstance"`
	HourlyRate             float64       `json:"hourlyRate"`
	MonthlyCostPerInstance float64       `json:"monthlyCostPerInstance"`
	MonthlyCost            float64       `json:"monthlyCost"`
}

type ComputeEstimate struct {
	Standard       InstanceGroup `json:"standard"`
	Graphics       InstanceGroup `json:"graphics"`
	TotalInstances int           `json:"totalInstances"`
	MonthlyCost    float64       `json:"monthlyCost"`
	AnnualCost     float64       `json:"annualCost"`
}

type StorageCosts struct {
	Primary      float64 `json:"primary"`
	Shared       float64 `json:"shared"`
	Backup       float64 `json:"backup"`
	TotalMonthly float64 `json:"totalMonthly"`
}

type StorageRecommendations struct {
	Primary string `json:"primary"`
	Shared  string `json:"shared"`
	Backup  string `json:"backup"`
}

type StorageEstimate struct {
	PrimaryGB       float64                `json:"primaryGb"`
	OSImagesGB      float64                `json:"osImagesGb"`
	UserProfilesGB  float64                `json:"userProfilesGb"`
	SharedGB        float64                `json:"sharedGb"`
	BackupGB        float64                `json:"backupGb"`
	TotalRequiredGB float64                `json:"totalRequiredGb"`
	Costs           StorageCosts           `json:"costs"`
	AnnualCost      float64                `json:"annualCost"`
	Recommendations StorageRecommendations `json:"recommendations"`
}

type NetworkCosts struct {
	VPNGateway   float64 `json:"vpnGateway"`
	NATGateway   float64 `json:"natGateway"`
	DataTransfer float64 `json:"dataTransfer"`
	TotalMonthly float64 `json:"totalMonthly"`
}

type NetworkEstimate struct {
	BaseBandwidthMbps       float64      `json:"baseBandwidthMbps"`
	TotalBandwidthMbps      float64      `json:"totalBandwidthMbps"`
	EstimatedDataTransferGB float64      `json:"estimatedDataTransferGb"`
	Costs                   NetworkCosts `json:"costs"`
	AnnualCost              float64      `json:"annualCost"`
	Recommendations         []string     `json:"recommendations"`
}

// TeamCost is the staffing and cost of one project role.
type TeamCost struct {
	Role        string  `json:"role"`
	Description string  `json:"description"`
	Count       int     `json:"count"`
	HourlyRate  float64 `json:"hourlyRate"`
	// EffortPercent is the complexity-adjusted allocation, capped at 100.
	EffortPercent float64 `json:"effortPercent"`
	TotalHours    float64 `json:"totalHours"`
	TotalCost     float64 `json:"totalCost"`
}

type AdditionalCosts struct {
	TrainingMaterials float64 `json:"trainingMaterials"`
	ProjectTools      float64 `json:"projectTools"`
	Contingency       float64 `json:"contingency"`
}

type LaborCostBreakdown struct {
	Labor             float64 `json:"labor"`
	MaterialsAndTools float64 `json:"materialsAndTools"`
	Contingency       float64 `json:"contingency"`
}

type LaborEstimate struct {
	Complexity           reference.Complexity       `json:"complexity"`
	Multiplier           float64                    `json:"multiplier"`
	ProjectDurationWeeks int                        `json:"projectDurationWeeks"`
	Phases               []reference.MigrationPhase `json:"phases"`
	Team                 []TeamCost                 `json:"team"`
	TotalTeamCost        float64                    `json:"totalTeamCost"`
	AdditionalCosts      AdditionalCosts            `json:"additionalCosts"`
	TotalAdditionalCost  float64                    `json:"totalAdditionalCost"`
	GrandTotalCost       float64                    `json:"grandTotalCost"`
	CostBreakdown        LaborCostBreakdown         `json:"costBreakdown"`
}

// ServiceOption is the recurring cost of running the population on one
// catalog service.
type ServiceOption struct {
	Service             reference.ServiceName `json:"service"`
	Name                string                `json:"name"`
	MonthlyCost         float64               `json:"monthlyCost"`
	AnnualCost          float64               `json:"annualCost"`
	MigrationComplexity reference.Complexity  `json:"migrationComplexity"`
	ManagementOverhead  reference.Complexity  `json:"managementOverhead"`
}

type ServiceComparison struct {
	Options []ServiceOption `json:"options"`
}

// Option returns the comparison entry for service.
func (c ServiceComparison) Option(service reference.ServiceName) (ServiceOption, bool) {
	for _, o := range c.Options {
		if o.Service == service {
			return o, true
		}
	}
	return ServiceOption{}, false
}

type Recommendation struct {
	Service reference.ServiceName `json:"service"`
	Name    string                `json:"name"`
	Reason  string                `json:"reason"`
}

// TCOPoint is the cumulative cost of each option at the end of Year.
type TCOPoint struct {
	Year       int     `json:"year"`
	Current    float64 `json:"current"`
	WorkSpaces float64 `json:"workspaces"`
	EC2VDI     float64 `json:"ec2Vdi"`
}

type ROIAnalysis struct {
	HorizonYears          int     `json:"horizonYears"`
	MigrationCost         float64 `json:"migrationCost"`
	CurrentAnnualCost     float64 `json:"currentAnnualCost"`
	WorkSpacesAnnualCost  float64 `json:"workspacesAnnualCost"`
	CurrentHorizonCost    float64 `json:"currentHorizonCost"`
	WorkSpacesHorizonCost float64 `json:"workspacesHorizonCost"`
	Savings               float64 `json:"savings"`
	ROIPercent            float64 `json:"roiPercent"`
	// PaybackMonths is nil when the yearly saving is not positive.
	PaybackMonths *float64   `json:"paybackMonths,omitempty"`
	TCO           []TCOPoint `json:"tco"`
}

// AssessmentInput is the caller configuration of one assessment run.
type AssessmentInput struct {
	Population         Population            `json:"population"`
	Complexity         reference.Complexity  `json:"complexity"`
	CurrentEnvironment string                `json:"currentEnvironment"`
	TargetService      reference.ServiceName `json:"targetService"`
	Timeline           reference.Timeline    `json:"timeline"`
}

// AssessmentResult bundles every stage output of one run.
type AssessmentResult struct {
	ID             uuid.UUID             `json:"id"`
	GeneratedAt    time.Time             `json:"generatedAt"`
	Input          AssessmentInput       `json:"input"`
	Requirements   AggregateRequirements `json:"requirements"`
	Compute        ComputeEstimate       `json:"compute"`
	Storage        StorageEstimate       `json:"storage"`
	Network        NetworkEstimate       `json:"network"`
	Labor          LaborEstimate         `json:"labor"`
	Comparison     ServiceComparison     `json:"comparison"`
	Recommendation Recommendation        `json:"recommendation"`
	ROI            ROIAnalysis           `json:"roi"`
}
