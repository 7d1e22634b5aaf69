package pgsql

import (
	"github.com/ecodeed/academy_backend/internal/core/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) ports.RepositoryProvider {
	return ports.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		BlacklistRepo:  newPgxTokenBlacklistRepository(dbPool),
		DeletionRepo:   newPgxDeletionRequestRepository(dbPool),
		CourseRepo:     newPgxCourseRepository(dbPool),
		EnrollmentRepo: newPgxEnrollmentRepository(dbPool),
	}
}
