package models

type User struct {
	ID       int64  `json:"id" db:"id" bson:"_id,omitempty"`
	Name     string `json:"name" db:"name" bson:"name"`
	Email    string `json:"email" db:"email" bson:"email"`
	Password string `json:"password,omitempty" db:"password" bson:"password"`
}
