package services

import (
	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/pkg/errs"
)

type Resource string

const (
	ResourceOrder     Resource = "order"
	ResourceProduct   Resource = "product"
	ResourceWorker    Resource = "worker"
	ResourceDashboard Resource = "dashboard"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionView   Action = "view"
)

// Scope is the slice of a business a role may reach with an action.
type Scope int

const (
	// ScopeNone denies the action.
	ScopeNone Scope = iota
	// ScopeBusiness reaches every row of the caller's business.
	ScopeBusiness
	// ScopeOwn reaches rows the caller created.
	ScopeOwn
	// ScopeOwnOrUnassigned reaches orders assigned to the caller or to nobody.
	ScopeOwnOrUnassigned
	// ScopeClaimOrProgress permits claiming an unassigned order or moving the
	// caller's own order forward.
	ScopeClaimOrProgress
)

func (s Scope) String() string {
	switch s {
	case ScopeBusiness:
		return "business"
	case ScopeOwn:
		return "own"
	case ScopeOwnOrUnassigned:
		return "own-or-unassigned"
	case ScopeClaimOrProgress:
		return "claim-or-progress"
	default:
		return "none"
	}
}

type rules map[Resource]map[Action]map[identity.Role]Scope

func defaultRules() rules {
	return rules{
		ResourceOrder: {
			ActionCreate: {identity.RoleAdmin: ScopeBusiness},
			ActionList:   {identity.RoleAdmin: ScopeBusiness, identity.RoleWorker: ScopeOwnOrUnassigned},
			ActionUpdate: {identity.RoleAdmin: ScopeBusiness, identity.RoleWorker: ScopeClaimOrProgress},
		},
		ResourceProduct: {
			ActionCreate: {identity.RoleAdmin: ScopeOwn, identity.RoleWorker: ScopeOwn},
			ActionList:   {identity.RoleAdmin: ScopeBusiness, identity.RoleWorker: ScopeOwn},
			ActionUpdate: {identity.RoleAdmin: ScopeBusiness, identity.RoleWorker: ScopeOwn},
			ActionDelete: {identity.RoleAdmin: ScopeBusiness, identity.RoleWorker: ScopeOwn},
		},
		ResourceWorker: {
			ActionCreate: {identity.RoleAdmin: ScopeBusiness},
			ActionList:   {identity.RoleAdmin: ScopeBusiness},
		},
		ResourceDashboard: {
			ActionView: {identity.RoleAdmin: ScopeBusiness},
		},
	}
}

// OrderUpdateKind classifies an allowed order update.
type OrderUpdateKind int

const (
	OrderUpdateDenied OrderUpdateKind = iota
	// OrderUpdateOverride is an Admin edit; the transition guard does not apply.
	OrderUpdateOverride
	// OrderUpdateClaim sets the worker of an unassigned order to the caller,
	// optionally moving the status forward in the same write.
	OrderUpdateClaim
	// OrderUpdateProgress moves the caller's own order forward.
	OrderUpdateProgress
)

func (k OrderUpdateKind) String() string {
	switch k {
	case OrderUpdateOverride:
		return "override"
	case OrderUpdateClaim:
		return "claim"
	case OrderUpdateProgress:
		return "progress"
	default:
		return "denied"
	}
}

// OrderChange describes which parts of an order an update request touches.
type OrderChange struct {
	WorkerID *kernel.UUID
	Unassign bool
	Status   *order.Status
	Details  bool
}

// AuthorizationPolicy is the single rule table deciding what a session may do
// with orders, products, workers and the dashboard. Every use case asks it
// before touching storage; none carries its own role checks.
type AuthorizationPolicy struct {
	rules rules
}

func NewAuthorizationPolicy() AuthorizationPolicy {
	return AuthorizationPolicy{rules: defaultRules()}
}

// Authorize returns the scope granted to p for action on resource, or a
// Forbidden error when the table grants nothing.
func (a AuthorizationPolicy) Authorize(p identity.Principal, resource Resource, action Action) (Scope, error) {
	if err := p.Validate(); err != nil {
		return ScopeNone, err
	}
	scope := a.rules[resource][action][p.Role]
	if scope == ScopeNone {
		return ScopeNone, errs.NewForbiddenError(string(action)+" "+string(resource),
			"not permitted for role "+p.Role.String())
	}
	return scope, nil
}

// CheckTenant hides rows of other businesses behind NotFound.
func (a AuthorizationPolicy) CheckTenant(p identity.Principal, resource Resource, id, businessID kernel.UUID) error {
	if !p.BusinessID.IsEqual(businessID) {
		return errs.NewObjectNotFoundError(string(resource), id)
	}
	return nil
}

// AuthorizeOrderUpdate decides whether p may apply change to o and which kind
// of write it is.
func (a AuthorizationPolicy) AuthorizeOrderUpdate(
	p identity.Principal,
	o *order.Order,
	change OrderChange,
) (OrderUpdateKind, error) {
	scope, err := a.Authorize(p, ResourceOrder, ActionUpdate)
	if err != nil {
		return OrderUpdateDenied, err
	}
	if err := a.CheckTenant(p, ResourceOrder, o.ID(), o.BusinessID()); err != nil {
		return OrderUpdateDenied, err
	}

	switch scope {
	case ScopeBusiness:
		return OrderUpdateOverride, nil
	case ScopeClaimOrProgress:
		return a.workerOrderUpdate(p, o, change)
	default:
		return OrderUpdateDenied, errs.NewForbiddenError("update order", "not permitted for role "+p.Role.String())
	}
}

func (a AuthorizationPolicy) workerOrderUpdate(
	p identity.Principal,
	o *order.Order,
	change OrderChange,
) (OrderUpdateKind, error) {
	if change.Details || change.Unassign {
		return OrderUpdateDenied, errs.NewForbiddenError("update order",
			"workers may only claim an order or change its status")
	}
	if change.WorkerID != nil && !change.WorkerID.IsEqual(p.UserID) {
		return OrderUpdateDenied, errs.NewForbiddenError("update order",
			"workers cannot assign orders to someone else")
	}

	switch {
	case !o.IsAssigned():
		if change.WorkerID == nil {
			return OrderUpdateDenied, errs.NewForbiddenErrorWithCause("update order",
				"order must be claimed first", order.ErrOrderNotAssignedToWorker)
		}
		return OrderUpdateClaim, nil
	case o.IsAssignedTo(p.UserID):
		if change.Status == nil {
			return OrderUpdateDenied, errs.NewForbiddenErrorWithCause("claim order",
				"order is already claimed", order.ErrOrderAlreadyClaimed)
		}
		return OrderUpdateProgress, nil
	default:
		if change.WorkerID != nil {
			return OrderUpdateDenied, errs.NewForbiddenErrorWithCause("claim order",
				"order is already claimed", order.ErrOrderAlreadyClaimed)
		}
		return OrderUpdateDenied, errs.NewForbiddenErrorWithCause("update order",
			"order is not assigned to you", order.ErrOrderNotAssignedToWorker)
	}
}

// AuthorizeProductMutation decides whether p may update or delete pr.
func (a AuthorizationPolicy) AuthorizeProductMutation(
	p identity.Principal,
	pr *product.Product,
	action Action,
) error {
	scope, err := a.Authorize(p, ResourceProduct, action)
	if err != nil {
		return err
	}
	if err := a.CheckTenant(p, ResourceProduct, pr.ID(), pr.BusinessID()); err != nil {
		return err
	}
	if scope == ScopeOwn && !pr.CreatedByID().IsEqual(p.UserID) {
		return errs.NewForbiddenError(string(action)+" product", "product was recorded by another user")
	}
	return nil
}
