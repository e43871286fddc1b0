package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates the per-aggregate data access interfaces.
type Repository struct {
	Student    StudentRepository
	Assignment AssignmentRepository
	Faculty    FacultyRepository
	Admin      AdminRepository
	Catalog    CatalogRepository

	db *gorm.DB
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Student:    NewStudentRepo(db),
		Assignment: NewAssignmentRepo(db),
		Faculty:    NewFacultyRepo(db),
		Admin:      NewAdminRepo(db),
		Catalog:    NewCatalogRepo(db),
		db:         db,
	}
}

// BeginTx opens a storage transaction. Returns a nil transaction when the
// repository is not backed by a database (unit tests with mock repos).
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns a Repository whose implementations run inside tx.
// A nil tx returns the receiver unchanged.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{
		Student:    NewStudentRepo(tx),
		Assignment: NewAssignmentRepo(tx),
		Faculty:    NewFacultyRepo(tx),
		Admin:      NewAdminRepo(tx),
		Catalog:    NewCatalogRepo(tx),
		db:         tx,
	}
}
