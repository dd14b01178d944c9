package services

import "vetcare-web/internal/core/domain"

// LoginPath is where anonymous users are sent
const LoginPath = "/login"

// Action is what the guard tells the router to do
type Action int

const (
	// ActionWait means the session is still loading; decide again when it is ready
	ActionWait Action = iota
	ActionRender
	ActionRedirect
)

func (a Action) String() string {
	switch a {
	case ActionWait:
		return "wait"
	case ActionRender:
		return "render"
	case ActionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// RouteRequirement is the static access rule of a guarded route
type RouteRequirement struct {
	RequireAuth bool
	Role        domain.UserType
}

// GuestOnly is for pages only anonymous users may see (login, sign-up)
func GuestOnly() RouteRequirement {
	return RouteRequirement{}
}

// Authenticated is for pages any logged-in user may see
func Authenticated() RouteRequirement {
	return RouteRequirement{RequireAuth: true}
}

// RequireRole is for pages of one role only
func RequireRole(role domain.UserType) RouteRequirement {
	return RouteRequirement{RequireAuth: true, Role: role}
}

// Decision is the guard's verdict. From is set on login redirects so the
// login flow can send the user back afterwards.
type Decision struct {
	Action   Action
	Location string
	From     string
}

// Decide applies the access rules in order:
// loading, auth required, guest only, role mismatch.
func Decide(s Session, req RouteRequirement, requested string) Decision {
	if s.Loading {
		return Decision{Action: ActionWait}
	}

	if req.RequireAuth && !s.Authenticated {
		return Decision{Action: ActionRedirect, Location: LoginPath, From: requested}
	}

	if !req.RequireAuth && s.Authenticated {
		return Decision{Action: ActionRedirect, Location: domain.RoleHome(s.User)}
	}

	if req.Role != "" {
		if !s.Authenticated || s.User == nil {
			return Decision{Action: ActionRedirect, Location: LoginPath, From: requested}
		}
		if s.User.Type() != req.Role {
			return Decision{Action: ActionRedirect, Location: domain.RoleHome(s.User)}
		}
	}

	return Decision{Action: ActionRender}
}
