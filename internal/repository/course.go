// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/saviare/campus-api/internal/models"
)

// CreateCourse creates a new course taught by the given instructor.
func (r *Repository) CreateCourse(ctx context.Context, title, description string, instructorID int64) (*models.Course, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (title, description, instructor_id) VALUES (?, ?, ?)`,
		title, description, instructorID)
	if err != nil {
		return nil, wrapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var course models.Course
	if err := r.db.GetContext(ctx, &course, `SELECT * FROM courses WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return &course, nil
}

// ListCourses returns every course with the instructor's username resolved.
func (r *Repository) ListCourses(ctx context.Context) ([]models.CourseListing, error) {
	courses := []models.CourseListing{}
	err := r.db.SelectContext(ctx, &courses,
		`SELECT c.id, c.title, c.description, u.username AS instructor
		 FROM courses c
		 JOIN users u ON u.id = c.instructor_id
		 ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// CountCourses returns the total number of courses.
func (r *Repository) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM courses`); err != nil {
		return 0, err
	}
	return count, nil
}
