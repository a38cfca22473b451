// Package entities contains core business entities.
package entities

// Role enumerates the positions a team member can hold.
type Role string

const (
	RoleBarber    Role = "Barber"
	RoleStylist   Role = "Stylist"
	RoleReception Role = "Reception"
	RoleManager   Role = "Manager"
	RoleColorist  Role = "Colorist"
	RoleAssistant Role = "Assistant"
)

// Roles lists every known role in declaration order.
var Roles = []Role{RoleBarber, RoleStylist, RoleReception, RoleManager, RoleColorist, RoleAssistant}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Socials holds optional contact links; empty fields are absent.
type Socials struct {
	Instagram string `yaml:"instagram,omitempty"`
	Facebook  string `yaml:"facebook,omitempty"`
	LinkedIn  string `yaml:"linkedin,omitempty"`
	Email     string `yaml:"email,omitempty"`
	Phone     string `yaml:"phone,omitempty"`
}

// TeamMember is a person shown on the team page.
type TeamMember struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Role    Role     `yaml:"role"`
	Photo   string   `yaml:"photo"`
	Bio     string   `yaml:"bio"`
	Tags    []string `yaml:"tags"`
	Socials Socials  `yaml:"socials,omitempty"`
}
