package models

import "time"

// User is a registered account, identified naturally by email.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Avatar    string    `bson:"avatar" json:"avatar"`
	IDGoogle  string    `bson:"id_google" json:"id_google"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// UserUpdate carries the mutable user profile fields. Nil means "leave as is".
type UserUpdate struct {
	Name   *string
	Avatar *string
}

// IsEmpty reports whether the update would touch no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Avatar == nil
}
