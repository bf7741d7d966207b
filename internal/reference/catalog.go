package reference

import (
	"fmt"
	"strings"
)

// ServiceName is the catalog key of a cloud desktop option.
type ServiceName string

const (
	WorkSpaces ServiceName = "workspaces"
	AppStream  ServiceName = "appstream"
	EC2VDI     ServiceName = "ec2_vdi"
)

// DefaultCurrentEnvironment is assumed when the caller does not name the
// platform being migrated from.
const DefaultCurrentEnvironment = "Azure VMware Horizon"

// ServiceCatalogEntry describes one deployment option for the migrated desktops.
type ServiceCatalogEntry struct {
	Key                 ServiceName `json:"key"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	BestFor             string      `json:"bestFor"`
	MigrationComplexity Complexity  `json:"migrationComplexity"`
	ManagementOverhead  Complexity  `json:"managementOverhead"`
}

var services = []ServiceCatalogEntry{
	{
		Key:                 WorkSpaces,
		Name:                "Amazon WorkSpaces",
		Description:         "Fully managed desktop service",
		BestFor:             "Standard VDI requirements",
		MigrationComplexity: Low,
		ManagementOverhead:  Low,
	},
	{
		Key:                 AppStream,
		Name:                "Amazon AppStream 2.0",
		Description:         "Application streaming service",
		BestFor:             "Application-specific access",
		MigrationComplexity: Medium,
		ManagementOverhead:  Medium,
	},
	{
		Key:                 EC2VDI,
		Name:                "EC2-based VDI",
		Description:         "Custom VDI on EC2 instances",
		BestFor:             "Custom requirements, legacy apps",
		MigrationComplexity: High,
		ManagementOverhead:  High,
	},
}

// Services returns the catalog in display order.
func Services() []ServiceCatalogEntry {
	return append([]ServiceCatalogEntry(nil), services...)
}

// LookupService returns the catalog entry for name.
func LookupService(name ServiceName) (ServiceCatalogEntry, error) {
	for _, s := range services {
		if s.Key == name {
			return s, nil
		}
	}
	return ServiceCatalogEntry{}, fmt.Errorf("%w: %q", ErrUnknownService, name)
}

// ParseServiceName maps a catalog key such as "ec2_vdi" to its ServiceName.
func ParseServiceName(s string) (ServiceName, error) {
	entry, err := LookupService(ServiceName(strings.ToLower(strings.TrimSpace(s))))
	if err != nil {
		return "", err
	}
	return entry.Key, nil
}
