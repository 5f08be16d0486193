// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package models

// Course is a catalog entry taught by an instructor user.
type Course struct { //nolint:govet // fieldalignment: readability over optimization
	ID           int64  `db:"id" json:"id"`
	Title        string `db:"title" json:"title"`
	Description  string `db:"description" json:"description"`
	InstructorID int64  `db:"instructor_id" json:"-"`
}

// CourseListing is a course joined with its instructor's username, the
// shape the courses endpoint returns.
type CourseListing struct { //nolint:govet // fieldalignment: readability over optimization
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Instructor  string `db:"instructor" json:"instructor"`
}
