// Package access implements the capability-based authorization policy of the
// order engine. Every operation names the capability it requires and calls the
// single Authorize function with the caller's resolved role; ownership checks
// stay with the aggregates themselves.
package access

import (
	"fmt"

	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// Role is the caller category resolved by the session layer.
type Role int

const (
	// RoleAnonymous is an unauthenticated caller.
	RoleAnonymous Role = iota

	// RoleCustomer is a regular authenticated user assembling orders.
	RoleCustomer

	// RoleModerator carries catalog-management and order-approval authority.
	RoleModerator

	// RoleRemoteService is the trusted dose-calculation service, authorized
	// only to write computed doses.
	RoleRemoteService
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleModerator:
		return "moderator"
	case RoleRemoteService:
		return "remote-service"
	default:
		return "anonymous"
	}
}

// Capability names a class of operations a role may perform.
type Capability int

const (
	// CapBrowseCatalog covers reading substances and catalog search.
	CapBrowseCatalog Capability = iota

	// CapComposeMedicine covers draft assembly, submission, withdrawal and
	// reading one's own orders.
	CapComposeMedicine

	// CapManageCatalog covers substance create/update/archive.
	CapManageCatalog

	// CapDecideMedicine covers approving and rejecting formed orders.
	CapDecideMedicine

	// CapRecordDose covers the dose-calculation callback.
	CapRecordDose
)

// String implements fmt.Stringer.
func (c Capability) String() string {
	switch c {
	case CapBrowseCatalog:
		return "browse catalog"
	case CapComposeMedicine:
		return "compose medicine"
	case CapManageCatalog:
		return "manage catalog"
	case CapDecideMedicine:
		return "decide medicine"
	case CapRecordDose:
		return "record dose"
	default:
		return "unknown capability"
	}
}

// capabilities maps each role to its allowed capability set. Moderators keep
// the customer capabilities: they also assemble orders of their own. The
// catalog is public, so anonymous callers hold CapBrowseCatalog.
func capabilities(role Role) map[Capability]bool {
	switch role {
	case RoleAnonymous:
		return map[Capability]bool{
			CapBrowseCatalog: true,
		}
	case RoleCustomer:
		return map[Capability]bool{
			CapBrowseCatalog:   true,
			CapComposeMedicine: true,
		}
	case RoleModerator:
		return map[Capability]bool{
			CapBrowseCatalog:   true,
			CapComposeMedicine: true,
			CapManageCatalog:   true,
			CapDecideMedicine:  true,
		}
	case RoleRemoteService:
		return map[Capability]bool{
			CapRecordDose: true,
		}
	default:
		return nil
	}
}

// Authorize returns nil when role holds the capability and a Forbidden
// taxonomy error otherwise.
func Authorize(role Role, capability Capability) error {
	if capabilities(role)[capability] {
		return nil
	}
	return errs.NewForbiddenErrorWithCause(capability.String(),
		fmt.Errorf("role %s does not hold this capability", role))
}
