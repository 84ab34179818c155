package domain

// ID is used across domain entities.
type ID int64

// Role identifies the acting audience for guards and content variants.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Actor carries authenticated user info for policy checks and audit rows.
type Actor struct {
	UserID ID   `json:"userId"`
	Role   Role `json:"role"`
}

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}
