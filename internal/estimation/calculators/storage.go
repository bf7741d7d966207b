package calculators

import (
	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
)

// Compile-time assertion that Storage implements the StorageCalculator interface.
var _ estimation.StorageCalculator = (*Storage)(nil)

var defaultStorageRecommendations = estimation.StorageRecommendations{
	Primary: "EBS gp3 - General Purpose SSD",
	Shared:  "FSx for Windows File Server",
	Backup:  "EBS snapshots + S3 Intelligent-Tiering",
}

// Storage sizes the storage tiers of the migrated desktops.
type Storage struct {
	rates           estimation.StorageRates
	recommendations estimation.StorageRecommendations
}

// StorageOption is a functional option for configuring a Storage calculator.
type StorageOption func(*Storage)

// WithStorageRates replaces the storage rate table.
func WithStorageRates(rates estimation.StorageRates) StorageOption {
	return func(s *Storage) {
		s.rates = rates
	}
}

// WithStorageRecommendations replaces the tier recommendation text.
func WithStorageRecommendations(rec estimation.StorageRecommendations) StorageOption {
	return func(s *Storage) {
		s.recommendations = rec
	}
}

// NewStorage creates a Storage calculator with default rates.
func NewStorage(opts ...StorageOption) *Storage {
	res := Storage{
		rates:           estimation.DefaultRates().Storage,
		recommendations: defaultStorageRecommendations,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Estimate derives the OS image, profile and shared tiers from the user count.
// Backup is a fixed fraction of the per-type primary storage only; it does not
// cover the other tiers.
func (c *Storage) Estimate(req estimation.AggregateRequirements) estimation.StorageEstimate {
	users := float64(req.TotalUsers)
	primary := float64(req.TotalStorageGB)

	res := estimation.StorageEstimate{
		PrimaryGB:       primary,
		OSImagesGB:      users * c.rates.OSImageGBPerUser,
		UserProfilesGB:  users * c.rates.ProfileGBPerUser,
		SharedGB:        users * c.rates.SharedGBPerUser,
		BackupGB:        primary * c.rates.BackupFraction,
		Recommendations: c.recommendations,
	}
	res.TotalRequiredGB = res.OSImagesGB + res.UserProfilesGB + res.SharedGB + res.BackupGB

	res.Costs = estimation.StorageCosts{
		Primary: primary * c.rates.GeneralPurposePerGB,
		Shared:  res.SharedGB * c.rates.SharedFilePerGB,
		Backup:  res.BackupGB * c.rates.BackupPerGB,
	}
	res.Costs.TotalMonthly = res.Costs.Primary + res.Costs.Shared + res.Costs.Backup
	res.AnnualCost = annual(res.Costs.TotalMonthly)

	return res
}
