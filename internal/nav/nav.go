// Package nav implements the sidebar navigation state machine for the admin
// shell: accordion group expansion, active-link tracking, shell collapse, and
// the horizontal quick-strip position clamp. The package is rendering-free;
// internal/ui reconciles the terminal output to the State record it exposes.
package nav

import "strings"

// Link is a single navigable entry inside a sidebar group. Href is the route
// path the link points at, matching the CRM's URL table.
type Link struct {
	ID    string
	Title string
	Href  string
}

// Group is a top-level sidebar entry. A group with exactly one link renders as
// a plain item; anything larger is an accordion section.
type Group struct {
	ID    string
	Title string
	Icon  string // single-cell glyph shown in the collapsed rail
	Links []Link
}

// IsLeaf reports whether the group is a plain item rather than an accordion
// section.
func (g Group) IsLeaf() bool {
	return len(g.Links) == 1
}

// Registry is the ordered set of sidebar groups. It is built once at startup
// and never mutated afterwards.
type Registry struct {
	groups []Group
}

// NewRegistry creates a registry from an ordered group list.
func NewRegistry(groups []Group) *Registry {
	return &Registry{groups: groups}
}

// Groups returns the groups in display order.
func (r *Registry) Groups() []Group {
	return r.groups
}

// Group returns the group with the given ID.
func (r *Registry) Group(id string) (Group, bool) {
	for _, g := range r.groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// Link returns the link with the given ID along with its containing group.
func (r *Registry) Link(id string) (Link, Group, bool) {
	for _, g := range r.groups {
		for _, l := range g.Links {
			if l.ID == id {
				return l, g, true
			}
		}
	}
	return Link{}, Group{}, false
}

// LinkByPath returns the link whose href matches the given path after
// trailing-slash normalization, along with its containing group.
func (r *Registry) LinkByPath(path string) (Link, Group, bool) {
	norm := NormalizePath(path)
	for _, g := range r.groups {
		for _, l := range g.Links {
			if NormalizePath(l.Href) == norm {
				return l, g, true
			}
		}
	}
	return Link{}, Group{}, false
}

// LinkByFragment returns the first link (in display order) whose href contains
// the given fragment, along with its containing group.
func (r *Registry) LinkByFragment(fragment string) (Link, Group, bool) {
	for _, g := range r.groups {
		for _, l := range g.Links {
			if strings.Contains(l.Href, fragment) {
				return l, g, true
			}
		}
	}
	return Link{}, Group{}, false
}

// NormalizePath strips a trailing slash and guarantees a leading one, so
// "/patients/" and "/patients" compare equal. The bare root path stays "/".
func NormalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		p = "/"
	}
	return p
}

// DefaultRegistry builds the sidebar for the clinic CRM's route table.
func DefaultRegistry() *Registry {
	return NewRegistry([]Group{
		{
			ID: "dashboard", Title: "Dashboard", Icon: "⌂",
			Links: []Link{
				{ID: "dashboard", Title: "Dashboard", Href: "/dashboard/"},
			},
		},
		{
			ID: "patients", Title: "Patients", Icon: "☺",
			Links: []Link{
				{ID: "patient-list", Title: "All Patients", Href: "/patients/"},
				{ID: "patient-new", Title: "New Patient", Href: "/patients/new/"},
			},
		},
		{
			ID: "appointments", Title: "Appointments", Icon: "◷",
			Links: []Link{
				{ID: "appointment-list", Title: "All Appointments", Href: "/appointments/"},
				{ID: "appointment-new", Title: "New Appointment", Href: "/appointments/new/"},
				{ID: "appointment-mine", Title: "My Day", Href: "/appointments/mine/"},
			},
		},
		{
			ID: "billing", Title: "Billing", Icon: "▤",
			Links: []Link{
				{ID: "service-bills", Title: "Service Bills", Href: "/bills/service/"},
				{ID: "pharmacy-bills", Title: "Pharmacy Bills", Href: "/bills/pharmacy/"},
				{ID: "service-bill-new", Title: "New Service Bill", Href: "/bills/new/service/"},
				{ID: "pharmacy-sale-new", Title: "New Pharmacy Sale", Href: "/bills/new/pharmacy/"},
			},
		},
		{
			ID: "pharmacy", Title: "Pharmacy", Icon: "✚",
			Links: []Link{
				{ID: "medicine-list", Title: "Medicines", Href: "/pharmacy/medicines/"},
				{ID: "medicine-new", Title: "New Medicine", Href: "/pharmacy/medicines/new/"},
				{ID: "stock-list", Title: "Stock", Href: "/pharmacy/stock/"},
				{ID: "stock-transactions", Title: "Transactions", Href: "/pharmacy/transactions/"},
			},
		},
		{
			ID: "leads", Title: "Leads", Icon: "◎",
			Links: []Link{
				{ID: "lead-list", Title: "All Leads", Href: "/leads/"},
				{ID: "lead-new", Title: "New Lead", Href: "/leads/new/"},
			},
		},
		{
			ID: "expenses", Title: "Expenses", Icon: "▼",
			Links: []Link{
				{ID: "expense-list", Title: "All Expenses", Href: "/expenses/"},
				{ID: "expense-new", Title: "New Expense", Href: "/expenses/new/"},
			},
		},
		{
			ID: "staff", Title: "Staff", Icon: "☷",
			Links: []Link{
				{ID: "staff-list", Title: "All Staff", Href: "/staff/"},
				{ID: "staff-new", Title: "New Staff", Href: "/staff/new/"},
			},
		},
		{
			ID: "reports", Title: "Reports", Icon: "∿",
			Links: []Link{
				{ID: "finance-report", Title: "Finance Report", Href: "/reports/finance/"},
			},
		},
		{
			ID: "account", Title: "Account", Icon: "⚙",
			Links: []Link{
				{ID: "profile", Title: "My Profile", Href: "/me/"},
				{ID: "password", Title: "Change Password", Href: "/me/password/"},
			},
		},
	})
}
