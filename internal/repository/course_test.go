// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saviare/campus-api/internal/models"
	"github.com/saviare/campus-api/internal/testutil"
)

func TestCreateCourse(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	instructor := testutil.NewTestUser(t, repo, "profe", "secret", models.RoleInstructor)

	course, err := repo.CreateCourse(context.Background(), "Seguridad Operacional", "Fundamentos.", instructor.ID)

	require.NoError(t, err)
	assert.NotZero(t, course.ID)
	assert.Equal(t, "Seguridad Operacional", course.Title)
	assert.Equal(t, instructor.ID, course.InstructorID)
}

func TestListCourses_Empty(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	courses, err := repo.ListCourses(context.Background())

	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestListCourses_ResolvesInstructorUsername(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	instructor := testutil.NewTestUser(t, repo, "profe", "secret", models.RoleInstructor)
	testutil.NewTestCourse(t, repo, "Factores Humanos", instructor.ID)
	testutil.NewTestCourse(t, repo, "Gestión de Riesgos", instructor.ID)

	courses, err := repo.ListCourses(context.Background())

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Factores Humanos", courses[0].Title)
	assert.Equal(t, "profe", courses[0].Instructor)
	assert.Equal(t, "profe", courses[1].Instructor)
}

func TestCountCourses(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	instructor := testutil.NewTestUser(t, repo, "profe", "secret", models.RoleInstructor)

	count, err := repo.CountCourses(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	testutil.NewTestCourse(t, repo, "Factores Humanos", instructor.ID)

	count, err = repo.CountCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
