package config

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

/*
# Could be a YAML as such:

# Each group grants its permissions to every user added to it.
- group: editors
  permissions:
  - newsletters.set_subject
  - newsletters.set_body
*/

// PermissionGroupConfiguration is one permission group and the permissions it grants.
type PermissionGroupConfiguration struct {
	Group       string   `yaml:"group"`
	Permissions []string `yaml:"permissions"`
}

// PermissionGroupsConfig is the configuration of the permission groups users can be added to.
type PermissionGroupsConfig struct {
	ConfigFile string
	Groups     []PermissionGroupConfiguration
}

// NewPermissionGroupsConfig ...
func NewPermissionGroupsConfig() *PermissionGroupsConfig {
	return &PermissionGroupsConfig{
		ConfigFile: "config/permission-groups.yaml",
	}
}

// AddFlags ...
func (c *PermissionGroupsConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "permission-groups-config-file", c.ConfigFile,
		"Permission groups configuration file, leave empty to disable groups")
}

// ReadFiles reads the groups from ConfigFile. An empty path configures no group.
func (c *PermissionGroupsConfig) ReadFiles() error {
	if c.ConfigFile == "" {
		return nil
	}
	return readPermissionGroupsFile(c.ConfigFile, &c.Groups)
}

// Validate implements environments.ServiceValidator.
func (c *PermissionGroupsConfig) Validate() error {
	seen := make(map[string]struct{}, len(c.Groups))
	for _, g := range c.Groups {
		if g.Group == "" {
			return errors.New("permission group without a name")
		}
		if _, ok := seen[g.Group]; ok {
			return errors.Errorf("permission group %q is defined more than once", g.Group)
		}
		seen[g.Group] = struct{}{}
		for _, p := range g.Permissions {
			if !dbapi.IsValidPermission(p) {
				return fmt.Errorf("invalid permission %q in group %q, expected <app>.<codename>", p, g.Group)
			}
		}
	}
	return nil
}

// GetPermissionGroups returns the permissions of every group keyed by group name.
func (c *PermissionGroupsConfig) GetPermissionGroups() dbapi.PermissionGroups {
	groups := make(dbapi.PermissionGroups, len(c.Groups))
	for _, g := range c.Groups {
		groups[g.Group] = g.Permissions
	}
	return groups
}

func readPermissionGroupsFile(file string, val *[]PermissionGroupConfiguration) error {
	fileContents, err := shared.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "reading permission groups config")
	}

	if err := yaml.UnmarshalStrict([]byte(fileContents), val); err != nil {
		return errors.Wrap(err, "unmarshalling permission groups config")
	}

	return nil
}
