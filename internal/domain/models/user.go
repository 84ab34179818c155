package models

// User mirrors the users table; Role is admin, teacher or student.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"` // active / suspended / deleted
	CreatedAt string `json:"created_at"`
}

// Subject is a teachable subject referenced by bookings.
type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
