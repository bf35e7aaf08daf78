package models

import (
	"fmt"
	"time"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
	RoleRider    UserRole = "rider"
)

// ParseUserRole maps a string tag to its role, rejecting unknown tags.
func ParseUserRole(tag string) (UserRole, error) {
	switch r := UserRole(tag); r {
	case RoleAdmin, RoleCustomer, RoleRider:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", tag)
}

type User struct {
	Username  string
	Password  string
	Role      UserRole
	Name      string
	CreatedAt time.Time
}

// NewUser creates a user, defaulting the display name to the username.
func NewUser(username, password string, role UserRole, name string) *User {
	if name == "" {
		name = username
	}
	return &User{
		Username:  username,
		Password:  password,
		Role:      role,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

func (u *User) ToRecord() Record {
	return Record{
		"username":   u.Username,
		"password":   u.Password,
		"role":       string(u.Role),
		"name":       u.Name,
		"created_at": u.CreatedAt.Format(TimeLayout),
	}
}

func UserFromRecord(rec Record) (*User, error) {
	const entity = "user"

	username, err := recString(rec, entity, "username")
	if err != nil {
		return nil, err
	}
	password, err := recString(rec, entity, "password")
	if err != nil {
		return nil, err
	}
	roleTag, err := recString(rec, entity, "role")
	if err != nil {
		return nil, err
	}
	role, err := ParseUserRole(roleTag)
	if err != nil {
		return nil, &MalformedRecordError{Entity: entity, Field: "role", Reason: err.Error()}
	}
	name, err := recString(rec, entity, "name")
	if err != nil {
		return nil, err
	}
	createdAt, err := recTime(rec, entity, "created_at")
	if err != nil {
		return nil, err
	}

	return &User{
		Username:  username,
		Password:  password,
		Role:      role,
		Name:      name,
		CreatedAt: createdAt,
	}, nil
}
