package application

import "context"

// Contact is the CRM-facing view of a completed survey. The adapter decides
// how these fields map onto the provider's contact schema.
type Contact struct {
	FullName string
	Email    string
	Phone    string
	Website  string
	Products string
	Category string

	MonthlyOrders       string
	SKURange            string
	PackageWeight       string
	PackageSize         string
	CurrentShipping     string
	BiggestProblem      string
	ShippingCost        string
	CustomerLocation    string
	DeliveryExpectation string
}

// SyncResult reports what the CRM did with the contact.
type SyncResult struct {
	Action    string // "created" or "updated"
	ContactID string
}

// ContactSyncer pushes survey contacts into the CRM. Implementations must be
// safe for concurrent use; the service fires syncs off the request path.
type ContactSyncer interface {
	SyncContact(ctx context.Context, contact Contact) (*SyncResult, error)
}
