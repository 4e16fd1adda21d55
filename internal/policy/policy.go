// Package policy decides whether an actor may act on a resource.
package policy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
)

// Role is the platform role of a user.
type Role string

// Supported roles
const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole maps a stored role to a Role, defaulting to RoleUser.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleModerator, RoleAdmin:
		return Role(s)
	}
	return RoleUser
}

// Permission is an action on a resource.
type Permission string

// Permissions
const (
	PermListingUpdate Permission = "listing:update"
	PermListingCancel Permission = "listing:cancel"
	PermWalletUse     Permission = "wallet:use"
	PermWalletSync    Permission = "wallet:sync"
)

// ResourceKind names the type of a protected resource.
type ResourceKind string

// Resource kinds
const (
	ResourceListing ResourceKind = "listing"
	ResourceWallet  ResourceKind = "wallet"
)

// Resource is anything owned by a user.
type Resource struct {
	Kind    ResourceKind
	ID      uuid.UUID
	OwnerID uuid.UUID
}

// Actor is the authenticated user performing a request.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// staffGrants lists what non-owners may do by role.
var staffGrants = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermListingUpdate: true,
		PermListingCancel: true,
	},
	RoleModerator: {
		PermListingCancel: true,
	},
}

// Authorize returns nil when actor holds perm on res, otherwise an error
// wrapping models.ErrForbidden. Owners hold every permission; wallet
// permissions are never granted to staff.
func Authorize(actor Actor, res Resource, perm Permission) error {
	if actor.UserID != uuid.Nil && actor.UserID == res.OwnerID {
		return nil
	}
	if res.Kind != ResourceWallet && staffGrants[actor.Role][perm] {
		return nil
	}
	return fmt.Errorf("%w: %s on %s %s", models.ErrForbidden, perm, res.Kind, res.ID)
}

// ListingResource describes a listing for Authorize.
func ListingResource(l *models.Listing) Resource {
	return Resource{Kind: ResourceListing, ID: l.ID, OwnerID: l.SellerID}
}

// WalletResource describes a wallet for Authorize.
func WalletResource(w *models.WalletDB) Resource {
	return Resource{Kind: ResourceWallet, ID: w.WalletID, OwnerID: w.UserID}
}

type actorKey struct{}

// WithActor stores the actor in the context.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by WithActor.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}
