package models

// User is a customer who books courses.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact1 string `json:"contact1"`
	Contact2 string `json:"contact2"`
	Address  string `json:"address"`
	Timestamps
}

type UserInput struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Contact1 *string `json:"contact1,omitempty"`
	Contact2 *string `json:"contact2,omitempty"`
	Address  *string `json:"address,omitempty"`
}

type UserFilter struct {
	SchoolID *int64 `json:"schoolId,omitempty"`
}
