// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

// Package models defines the persisted records.
package models

import "time"

// Roles assigned to accounts. The platform predates English role names.
const (
	RoleStudent    = "estudiante"
	RoleInstructor = "instructor"
)

// User is an account record. The username doubles as the login handle and
// the notification address for password reset mail.
type User struct { //nolint:govet // fieldalignment: readability over optimization
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
