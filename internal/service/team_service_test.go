package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/paddock/internal/models"
	"github.com/yourusername/paddock/internal/repository"
	"github.com/yourusername/paddock/internal/repository/mocks"
)

func TestTeamSaveResolvesDrivers(t *testing.T) {
	ctx := context.Background()
	teams := &mocks.TeamRepository{}
	drivers := &mocks.DriverRepository{}
	svc := NewTeamService(teams, drivers, quietAudit())

	known1, known2, unknown := uuid.New(), uuid.New(), uuid.New()
	resolved := []*models.Driver{{ID: known1}, {ID: known2}}
	team := &models.Team{Name: "Action Express", Nationality: models.NationalityUSA, DriverIDs: []uuid.UUID{known1, unknown, known2}}

	drivers.On("FindByIDs", ctx, team.DriverIDs, repository.NoRelations).Return(resolved, nil)
	teams.On("Save", ctx, team).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Team).ID = uuid.New()
	}).Return(team, nil)

	saved, err := svc.Save(ctx, team)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.ElementsMatch(t, []uuid.UUID{known1, known2}, saved.DriverIDsOf())
	teams.AssertExpectations(t)
}

func TestTeamSaveWithoutDriverIDsLeavesAssociations(t *testing.T) {
	ctx := context.Background()
	teams := &mocks.TeamRepository{}
	drivers := &mocks.DriverRepository{}
	svc := NewTeamService(teams, drivers, quietAudit())

	team := &models.Team{ID: uuid.New(), Name: "Ganassi", Nationality: models.NationalityUSA}
	teams.On("Save", ctx, team).Return(team, nil)

	saved, err := svc.Save(ctx, team)
	require.NoError(t, err)
	assert.Nil(t, saved.Drivers, "nil drivers leave stored associations untouched")
	drivers.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamSaveAllUnknownDriversClearsAssociations(t *testing.T) {
	ctx := context.Background()
	teams := &mocks.TeamRepository{}
	drivers := &mocks.DriverRepository{}
	svc := NewTeamService(teams, drivers, quietAudit())

	team := &models.Team{Name: "Ghost", Nationality: models.NationalityVietNam, DriverIDs: []uuid.UUID{uuid.New()}}
	drivers.On("FindByIDs", ctx, team.DriverIDs, repository.NoRelations).Return(nil, nil)
	teams.On("Save", ctx, team).Return(team, nil)

	saved, err := svc.Save(ctx, team)
	require.NoError(t, err)
	require.NotNil(t, saved.Drivers)
	assert.Empty(t, saved.Drivers)
}

func TestTeamSaveDriverLookupFailure(t *testing.T) {
	ctx := context.Background()
	teams := &mocks.TeamRepository{}
	drivers := &mocks.DriverRepository{}
	svc := NewTeamService(teams, drivers, quietAudit())

	team := &models.Team{Name: "Broken", Nationality: models.NationalityUSA, DriverIDs: []uuid.UUID{uuid.New()}}
	drivers.On("FindByIDs", ctx, team.DriverIDs, repository.NoRelations).Return(nil, assert.AnError)

	_, err := svc.Save(ctx, team)
	assert.ErrorIs(t, err, assert.AnError)
	teams.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
