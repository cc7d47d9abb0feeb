package enum

// Role is a fixed user role gating which parts of the API are reachable.
// This is a UI-level gate, not a data-layer security boundary.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// Valid reports whether the role is one of the three fixed roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// CanManageStock reports whether the role may add products and adjust stock
func (r Role) CanManageStock() bool {
	return r == RoleAdmin || r == RoleManager
}

// CanViewReports reports whether the role may access the reporting endpoints
func (r Role) CanViewReports() bool {
	return r == RoleAdmin || r == RoleManager
}

// CanManageSettings reports whether the role may change store settings,
// manage users, or reset data
func (r Role) CanManageSettings() bool {
	return r == RoleAdmin
}
