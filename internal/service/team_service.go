package service

import (
	"context"

	"github.com/yourusername/paddock/internal/logger"
	"github.com/yourusername/paddock/internal/metrics"
	"github.com/yourusername/paddock/internal/models"
	"github.com/yourusername/paddock/internal/repository"
)

// TeamService saves teams together with their driver associations.
type TeamService struct {
	teams   repository.TeamRepository
	drivers repository.DriverRepository
	audit   *logger.AuditLogger
}

// NewTeamService creates a new team service
func NewTeamService(teams repository.TeamRepository, drivers repository.DriverRepository, audit *logger.AuditLogger) *TeamService {
	return &TeamService{
		teams:   teams,
		drivers: drivers,
		audit:   audit,
	}
}

// Save persists team. When team.DriverIDs is non-empty the ids are resolved
// to stored drivers first, unknown ids dropped, and the resolved set
// replaces the team's associations. Otherwise associations are left alone.
func (s *TeamService) Save(ctx context.Context, team *models.Team) (*models.Team, error) {
	team.Drivers = nil
	if len(team.DriverIDs) > 0 {
		drivers, err := s.drivers.FindByIDs(ctx, team.DriverIDs, repository.NoRelations)
		if err != nil {
			return nil, err
		}
		if drivers == nil {
			drivers = []*models.Driver{}
		}
		team.Drivers = drivers
	}

	saved, err := s.teams.Save(ctx, team)
	if err != nil {
		return nil, err
	}

	if saved.Drivers != nil {
		s.audit.LogTeamDriversResolved(saved.ID.String(), len(team.DriverIDs), len(saved.Drivers))
		metrics.RecordTeamDriversDropped(len(team.DriverIDs) - len(saved.Drivers))
	}

	return saved, nil
}
