package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/motorpool/internal/common"
)

// Role is the authorization level of an administrator. The set of roles is
// closed: anything other than the constants below fails to parse.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleEditor
)

var roleNames = map[Role]string{
	RoleAdmin:  "Admin",
	RoleEditor: "Editor",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole maps a role name to its Role. Matching is case-sensitive.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, fmt.Errorf("%w: %q", common.ErrUnknownRole, s)
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", common.ErrUnknownRole, uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	role, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// RoleSet is a set of roles encoded as a bitmask.
type RoleSet uint8

// NewRoleSet returns the set holding roles. Invalid roles are ignored.
func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		if r.Valid() {
			s |= 1 << r
		}
	}
	return s
}

// Contains reports whether r is a member of s.
func (s RoleSet) Contains(r Role) bool {
	return r.Valid() && s&(1<<r) != 0
}

func (s RoleSet) String() string {
	var names []string
	for _, r := range []Role{RoleAdmin, RoleEditor} {
		if s.Contains(r) {
			names = append(names, r.String())
		}
	}
	return strings.Join(names, ",")
}
