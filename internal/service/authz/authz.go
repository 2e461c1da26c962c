// Package authz is the single authorization gate every service operation
// passes before touching state.
package authz

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/pkg/ctxutil"
)

// RoleSet is the set of roles allowed to run an operation.
type RoleSet []domain.Role

var (
	// Operators run the session: phases, agenda, voting, speeches.
	Operators = RoleSet{domain.RoleAdmin, domain.RolePresident}
	// Voters cast votes, mark presence and file their own speech requests.
	Voters = RoleSet{domain.RoleCouncilor, domain.RolePresident}
	// Admins manage records that only the clerk may touch.
	Admins = RoleSet{domain.RoleAdmin}
	// Members is any authenticated council role.
	Members = RoleSet{domain.RoleAdmin, domain.RolePresident, domain.RoleCouncilor}
)

// Contains reports whether role is in the set.
func (s RoleSet) Contains(role domain.Role) bool {
	return slices.Contains(s, role)
}

// Require returns the caller identity stored in ctx if its role belongs to
// allowed. It returns domain.ErrUnauthorized when no identity is present and
// domain.ErrForbidden when the role is not allowed.
func Require(ctx context.Context, allowed RoleSet) (domain.Actor, error) {
	actor, ok := ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	if !allowed.Contains(actor.Role) {
		return domain.Actor{}, fmt.Errorf("role %s: %w", actor.Role, domain.ErrForbidden)
	}
	return actor, nil
}

// ActorFromCtx builds the Actor from the identity stored in ctx.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, false
	}
	role := domain.Role(ctxutil.UserRoleFromCtx(ctx))
	if !role.IsValid() {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: id, Role: role}, true
}

// WithActor stores actor in ctx the same way the HTTP auth middleware does.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = ctxutil.WithUserID(ctx, actor.ID)
	return ctxutil.WithUserRole(ctx, actor.Role.String())
}
