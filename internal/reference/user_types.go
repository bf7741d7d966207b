package reference

import (
	"fmt"
	"strings"
)

// UserType identifies one of the fixed desktop user classes.
type UserType string

const (
	TaskWorker      UserType = "task_worker"
	KnowledgeWorker UserType = "knowledge_worker"
	PowerUser       UserType = "power_user"
	GraphicsUser    UserType = "graphics_user"
)

var userTypes = []UserType{TaskWorker, KnowledgeWorker, PowerUser, GraphicsUser}

// Profile describes the per-user footprint of a user type and the managed
// desktop bundle it maps to.
type Profile struct {
	Type        UserType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CPUCores    int      `json:"cpuCores"`
	MemoryGB    int      `json:"memoryGb"`
	StorageGB   int      `json:"storageGb"`
	// ConcurrentRatio is the fraction of the population logged in at peak, in (0,1].
	ConcurrentRatio    float64 `json:"concurrentRatio"`
	PeakHours          int     `json:"peakHours"`
	Bundle             string  `json:"bundle"`
	BundleMonthlyPrice float64 `json:"bundleMonthlyPrice"`
}

var profiles = map[UserType]Profile{
	TaskWorker: {
		Type:               TaskWorker,
		Name:               "Task Worker",
		Description:        "Basic office tasks, email, web browsing",
		CPUCores:           2,
		MemoryGB:           4,
		StorageGB:          50,
		ConcurrentRatio:    0.8,
		PeakHours:          8,
		Bundle:             "Value",
		BundleMonthlyPrice: 25,
	},
	KnowledgeWorker: {
		Type:               KnowledgeWorker,
		Name:               "Knowledge Worker",
		Description:        "Office productivity, light development",
		CPUCores:           4,
		MemoryGB:           8,
		StorageGB:          100,
		ConcurrentRatio:    0.9,
		PeakHours:          10,
		Bundle:             "Standard",
		BundleMonthlyPrice: 35,
	},
	PowerUser: {
		Type:               PowerUser,
		Name:               "Power User",
		Description:        "Heavy applications, CAD, development",
		CPUCores:           8,
		MemoryGB:           16,
		StorageGB:          250,
		ConcurrentRatio:    0.95,
		PeakHours:          12,
		Bundle:             "Performance",
		BundleMonthlyPrice: 68,
	},
	GraphicsUser: {
		Type:               GraphicsUser,
		Name:               "Graphics User",
		Description:        "3D modeling, video editing, GPU workloads",
		CPUCores:           16,
		MemoryGB:           32,
		StorageGB:          500,
		ConcurrentRatio:    0.7,
		PeakHours:          10,
		Bundle:             "Graphics.g4dn",
		BundleMonthlyPrice: 216,
	},
}

// UserTypes returns every user type in display order.
func UserTypes() []UserType {
	return append([]UserType(nil), userTypes...)
}

// Valid reports whether u is one of the known user types.
func (u UserType) Valid() bool {
	_, ok := profiles[u]
	return ok
}

// Profile returns the reference profile for u.
func (u UserType) Profile() (Profile, bool) {
	p, ok := profiles[u]
	return p, ok
}

func (u UserType) String() string { return string(u) }

// ParseUserType maps a user type key such as "power_user" to its UserType.
func ParseUserType(s string) (UserType, error) {
	u := UserType(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownUserType, s)
	}
	return u, nil
}

// Profiles returns the reference profile of every user type in display order.
func Profiles() []Profile {
	res := make([]Profile, 0, len(userTypes))
	for _, u := range userTypes {
		res = append(res, profiles[u])
	}
	return res
}

// Validate checks that the profile belongs to a known user type and carries a
// usable footprint.
func (p Profile) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUserType, p.Type)
	}
	if p.CPUCores < 0 || p.MemoryGB < 0 || p.StorageGB < 0 || p.BundleMonthlyPrice < 0 {
		return fmt.Errorf("profile %s: resources and price must be non-negative", p.Type)
	}
	if p.ConcurrentRatio <= 0 || p.ConcurrentRatio > 1 {
		return fmt.Errorf("profile %s: concurrent ratio %.3f outside (0,1]", p.Type, p.ConcurrentRatio)
	}
	return nil
}
