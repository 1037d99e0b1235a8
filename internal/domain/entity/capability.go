// Package entity contains the core business objects of the project.
package entity

import "slices"

// Capability is a permission a principal may hold. A user can hold any
// combination of capabilities, including none.
type Capability string

const (
	// CapabilityVendor allows managing a vendor profile and fulfilling bookings.
	CapabilityVendor Capability = "vendor"
	// CapabilityPlanner allows creating and managing events.
	CapabilityPlanner Capability = "planner"
	// CapabilityStaff grants moderation rights such as removing any review.
	CapabilityStaff Capability = "staff"
)

// String returns the string representation of the Capability.
func (c Capability) String() string {
	return string(c)
}

// IsValid checks if the Capability is a known value.
func (c Capability) IsValid() bool {
	switch c {
	case CapabilityVendor, CapabilityPlanner, CapabilityStaff:
		return true
	default:
		return false
	}
}

// Capabilities is a set of capabilities held by a principal.
type Capabilities []Capability

// Has checks if the set contains a specific capability.
func (cs Capabilities) Has(c Capability) bool {
	return slices.Contains(cs, c)
}

// ToStrings converts Capabilities to []string for JWT compatibility.
func (cs Capabilities) ToStrings() []string {
	result := make([]string, len(cs))
	for i, c := range cs {
		result[i] = c.String()
	}

	return result
}

// CapabilitiesFromStrings converts []string to Capabilities, dropping unknown values.
func CapabilitiesFromStrings(ss []string) Capabilities {
	result := make(Capabilities, 0, len(ss))
	for _, s := range ss {
		c := Capability(s)
		if c.IsValid() && !result.Has(c) {
			result = append(result, c)
		}
	}

	return result
}
