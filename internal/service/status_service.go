package service

import (
	"context"
	"fmt"

	"galleryhub/internal/repository"
)

type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Status reports whether the database answers and how much of the schema is present.
type Status struct {
	Database    bool `json:"database"`
	Tables      int  `json:"tables"`
	TablesTotal int  `json:"tables_total"`
}

func (s Status) Ready() bool {
	return s.Database && s.Tables == s.TablesTotal
}

type StatusService interface {
	Check(ctx context.Context) (Status, error)
}

type statusService struct {
	db         Pinger
	statusRepo repository.StatusRepository
}

func NewStatusService(db Pinger, statusRepo repository.StatusRepository) StatusService {
	return &statusService{db: db, statusRepo: statusRepo}
}

func (s *statusService) Check(ctx context.Context) (Status, error) {
	status := Status{TablesTotal: len(repository.SchemaTables)}

	if err := s.db.HealthCheck(ctx); err != nil {
		return status, fmt.Errorf("database unreachable: %w", err)
	}
	status.Database = true

	count, err := s.statusRepo.CountTables(ctx)
	if err != nil {
		return status, err
	}
	status.Tables = count

	return status, nil
}
