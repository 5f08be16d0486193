// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/saviare/campus-api/internal/models"
	"github.com/saviare/campus-api/internal/repository"
	"github.com/saviare/campus-api/internal/services/auth"
)

const (
	seedInstructorUsername = "profe_saviare"
	seedInstructorPassword = "profe123"
)

var seedCourses = []struct {
	title       string
	description string
}{
	{
		"Introducción a la Seguridad Operacional",
		"Conoce los fundamentos de la gestión de la seguridad en la aviación.",
	},
	{
		"Factores Humanos en la Aviación",
		"Analiza cómo la conducta humana impacta en la seguridad de las operaciones.",
	},
	{
		"Gestión de Riesgos Aeronáuticos",
		"Aprende a identificar, evaluar y mitigar los riesgos en el entorno aéreo.",
	},
}

// seedData creates the demo instructor and courses if they are absent.
// Safe to run on every startup.
func seedData(ctx context.Context, repo *repository.Repository) error {
	exists, err := repo.UserExists(ctx, seedInstructorUsername)
	if err != nil {
		return fmt.Errorf("checking seed instructor: %w", err)
	}

	if !exists {
		hash, err := auth.HashPassword(seedInstructorPassword)
		if err != nil {
			return err
		}
		if _, err := repo.CreateUser(ctx, seedInstructorUsername, hash, models.RoleInstructor); err != nil {
			return fmt.Errorf("creating seed instructor: %w", err)
		}
		slog.Info("seed_instructor_created", "username", seedInstructorUsername)
	}

	count, err := repo.CountCourses(ctx)
	if err != nil {
		return fmt.Errorf("counting courses: %w", err)
	}
	if count > 0 {
		return nil
	}

	instructor, err := repo.GetUserByUsername(ctx, seedInstructorUsername)
	if err != nil {
		return fmt.Errorf("loading seed instructor: %w", err)
	}

	for _, course := range seedCourses {
		if _, err := repo.CreateCourse(ctx, course.title, course.description, instructor.ID); err != nil {
			return fmt.Errorf("creating seed course %q: %w", course.title, err)
		}
	}
	slog.Info("seed_courses_created", "count", len(seedCourses))

	return nil
}
