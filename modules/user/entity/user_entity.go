package entity

// User is a registered participant. Created on first login with an unseen
// name, never updated or deleted afterwards.
type User struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
