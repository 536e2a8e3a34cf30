package entity

import (
	"slices"
	"strings"

	"marketbot/internal/errors"
)

// Role is a capability granted to a service token.
type Role string

const (
	// RolePublisher may submit marketplace events for delivery.
	RolePublisher Role = "publisher"
	// RoleLinker may render account link QR codes.
	RoleLinker Role = "linker"
)

var knownRoles = []Role{RolePublisher, RoleLinker}

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the roles the API checks for.
func (r Role) IsValid() bool {
	return slices.Contains(knownRoles, r)
}

// Roles is the grant set carried by one service token.
type Roles []Role

// Contains reports whether the grant set includes role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Claims renders the grant set as JWT claim values.
func (rs Roles) Claims() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.String())
	}

	return out
}

// RolesFromClaims keeps the known roles of a verified token and drops the
// rest, so a token minted for a newer deployment still works here.
func RolesFromClaims(claims []string) Roles {
	out := make(Roles, 0, len(claims))
	for _, c := range claims {
		if role := Role(c); role.IsValid() && !out.Contains(role) {
			out = append(out, role)
		}
	}

	return out
}

// ParseRoles reads a comma separated role list typed by an operator.
// Unknown names are an error, blanks are skipped.
func ParseRoles(raw string) (Roles, error) {
	var out Roles
	for part := range strings.SplitSeq(raw, ",") {
		role := Role(strings.ToLower(strings.TrimSpace(part)))
		if role == "" {
			continue
		}
		if !role.IsValid() {
			return nil, errors.Errorf("unknown role %q", role)
		}
		if !out.Contains(role) {
			out = append(out, role)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("at least one role is required")
	}

	return out, nil
}
