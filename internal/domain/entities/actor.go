package entities

// Role is the marketplace role of the caller.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleContractor Role = "contractor"
	RoleAdmin      Role = "admin"
)

// Actor identifies who is performing an operation.
type Actor struct {
	ID   string
	Role Role
}
