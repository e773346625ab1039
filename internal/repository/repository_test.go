package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/paddock/internal/database"
	"github.com/yourusername/paddock/internal/models"
)

// fixture holds one of everything a race result needs.
type fixture struct {
	address *models.Address
	class   *models.Class
	team    *models.Team
	car     *models.Car
	driver  *models.Driver
	race    *models.Race
}

func setupRepos(t *testing.T) (*Repositories, context.Context) {
	t.Helper()

	db := database.SetupTestDB(t)
	repos, err := NewRepositories(db)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return repos, ctx
}

func strPtr(s string) *string { return &s }

func seed(t *testing.T, ctx context.Context, repos *Repositories) fixture {
	t.Helper()

	var f fixture
	var err error

	f.address, err = repos.Address.Save(ctx, &models.Address{
		Street: strPtr("1 Pit Lane"), City: "Sebring", State: "FL", Zipcode: "33870", Country: "USA",
	})
	require.NoError(t, err)

	f.class, err = repos.Class.Save(ctx, &models.Class{Name: "LM GTE AM"})
	require.NoError(t, err)

	f.team, err = repos.Team.Save(ctx, &models.Team{
		Name: "Risi Competizione", Nationality: models.NationalityUSA, BusinessAddressID: &f.address.ID,
	})
	require.NoError(t, err)

	f.car, err = repos.Car.Save(ctx, &models.Car{
		Make: "Ferrari", Model: "488 GTE", ClassID: f.class.ID, TeamID: f.team.ID,
	})
	require.NoError(t, err)

	f.driver, err = repos.Driver.Save(ctx, &models.Driver{
		FirstName: "Pipo", LastName: "Derani", Nationality: models.NationalityUSA, HomeAddressID: &f.address.ID,
	})
	require.NoError(t, err)

	f.race, err = repos.Race.Save(ctx, &models.Race{Name: "12 Hours of Sebring"})
	require.NoError(t, err)

	return f
}

func result(f fixture, number string) *models.RaceResult {
	return &models.RaceResult{
		RaceID: f.race.ID, CarID: f.car.ID, DriverID: f.driver.ID, ClassID: f.class.ID,
		RaceNumber: number, StartPosition: 3,
	}
}

func TestAddressRoundTrip(t *testing.T) {
	repos, ctx := setupRepos(t)

	saved, err := repos.Address.Save(ctx, &models.Address{City: "Hanoi", State: "HN", Zipcode: "100000", Country: "Viet Nam"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saved.ID)

	found, err := repos.Address.FindByID(ctx, saved.ID, AddressRelations)
	require.NoError(t, err)
	assert.Equal(t, saved, found)
	assert.Nil(t, found.Street)
}

func TestSaveWithIDOverwritesWholeRow(t *testing.T) {
	repos, ctx := setupRepos(t)

	saved, err := repos.Address.Save(ctx, &models.Address{
		Street: strPtr("Main"), Street2: strPtr("Unit 4"), City: "Austin", State: "TX", Zipcode: "78701", Country: "USA",
	})
	require.NoError(t, err)

	_, err = repos.Address.Save(ctx, &models.Address{ID: saved.ID, City: "Dallas", State: "TX", Zipcode: "75201", Country: "USA"})
	require.NoError(t, err)

	found, err := repos.Address.FindByID(ctx, saved.ID, AddressRelations)
	require.NoError(t, err)
	assert.Equal(t, "Dallas", found.City)
	assert.Nil(t, found.Street, "omitted fields are overwritten, not merged")
	assert.Nil(t, found.Street2)
}

func TestNotFoundSemantics(t *testing.T) {
	repos, ctx := setupRepos(t)
	missing := uuid.New()

	car, err := repos.Car.FindByID(ctx, missing, CarRelations)
	require.NoError(t, err)
	assert.Nil(t, car)

	race, err := repos.Race.FindByID(ctx, missing, RaceRelations)
	require.NoError(t, err)
	assert.Nil(t, race)

	outcome, err := repos.Driver.Delete(ctx, missing)
	require.NoError(t, err)
	assert.Equal(t, int64(0), outcome.Affected)
	assert.False(t, outcome.Found())
}

func TestFindByIDsOmitsMissing(t *testing.T) {
	repos, ctx := setupRepos(t)
	f := seed(t, ctx, repos)

	classes, err := repos.Class.FindByIDs(ctx, []uuid.UUID{f.class.ID, uuid.New()}, ClassRelations)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, f.class.ID, classes[0].ID)

	none, err := repos.Class.FindByIDs(ctx, nil, ClassRelations)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCarRelationsLoaded(t *testing.T) {
	repos, ctx := setupRepos(t)
	f := seed(t, ctx, repos)

	car, err := repos.Car.FindByID(ctx, f.car.ID, CarRelations)
	require.NoError(t, err)
	require.NotNil(t, car)
	require.NotNil(t, car.Class)
	require.NotNil(t, car.Team)
	assert.Equal(t, "LM GTE AM", car.Class.Name)
	assert.Equal(t, f.team.ID, car.Team.ID)
	require.NotNil(t, car.Team.BusinessAddress)
	assert.Equal(t, "Sebring", car.Team.BusinessAddress.City)

	bare, err := repos.Car.FindByID(ctx, f.car.ID, NoRelations)
	require.NoError(t, err)
	assert.Nil(t, bare.Class)
	assert.Nil(t, bare.Team)
}

func TestCarSubstringQuery(t *testing.T) {
	repos, ctx := setupRepos(t)
	f := seed(t, ctx, repos)

	for _, mk := range []string{"Ferrari SpA", "Porsche", "ferrari"} {
		_, err := repos.Car.Save(ctx, &models.Car{Make: mk, Model: "GT", ClassID: f.class.ID, TeamID: f.team.ID})
		require.NoError(t, err)
	}

	ferrari := "Ferrari"
	cars, err := repos.Car.FindAllByQuery(ctx, models.CarQuery{Make: &ferrari}, NoRelations)
	require.NoError(t, err)
	makes := make([]string, 0, len(cars))
	for _, c := range cars {
		makes = append(makes, c.Make)
	}
	assert.ElementsMatch(t, []string{"Ferrari", "Ferrari SpA"}, makes)

	gte := "GTE"
	cars, err = repos.Car.FindAllByQuery(ctx, models.CarQuery{Make: &ferrari, Model: &gte}, NoRelations)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, f.car.ID, cars[0].ID)

	all, err := repos.Car.FindAllByQuery(ctx, models.CarQuery{}, NoRelations)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRaceResultUniqueness(t *testing.T) {
	repos, ctx := setupRepos(t)
	f := seed(t, ctx, repos)

	_, err := repos.RaceResult.Save(ctx, result(f, "62"))
	require.NoError(t, err)

	_, err = repos.RaceResult.Save(ctx, result(f, "63"))
	require.Error(t, err)
	assert.True(t, models.IsUniqueViolation(err))

	otherDriver, err := repos.Driver.Save(ctx, &models.Driver{FirstName: "Davide", LastName: "Rigon", Nationality: models.NationalityUSA})
	require.NoError(t, err)

	differing := result(f, "62")
	differing.DriverID = otherDriver.ID
	_, err = repos.RaceResult.Save(ctx, differing)
	assert.NoError(t, err)
}

func TestRaceResultForeignKeyViolation(t *testing.T) {
	repos, ctx := setupRepos(t)
	f := seed(t, ctx, repos)

	rr := result(f, "1")
	rr.ClassID = uuid.New()
	_, err := repos.RaceResult.Save(ctx, rr)
	require.Error(t, err)
	assert.True(t, models.IsForeignKeyViolation(err))
}

func TestRaceResultQueryAndRelations(t *testing.T) {
	repos, ctx := setupRepos(t)
	f := seed(t, ctx, repos)

	finish := 0
	rr := result(f, "62")
	rr.FinishPosition = &finish
	saved, err := repos.RaceResult.Save(ctx, rr)
	require.NoError(t, err)

	results, err := repos.RaceResult.FindByQuery(ctx, models.RaceResultQuery{Driver: &f.driver.ID}, RaceResultRelations)
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, saved.ID, got.ID)
	require.NotNil(t, got.FinishPosition, "zero is a finishing position, not absent")
	assert.Equal(t, 0, *got.FinishPosition)
	require.NotNil(t, got.Race)
	assert.Equal(t, "12 Hours of Sebring", got.Race.Name)
	require.NotNil(t, got.Car)
	require.NotNil(t, got.Car.Class)
	require.NotNil(t, got.Driver)
	require.NotNil(t, got.Driver.HomeAddress)
	assert.Nil(t, got.Driver.ManagementAddress)
	require.NotNil(t, got.Class)

	otherRace := uuid.New()
	empty, err := repos.RaceResult.FindByQuery(ctx, models.RaceResultQuery{Race: &otherRace}, NoRelations)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTeamDriverAssociation(t *testing.T) {
	repos, ctx := setupRepos(t)
	f := seed(t, ctx, repos)

	second, err := repos.Driver.Save(ctx, &models.Driver{FirstName: "Phan", LastName: "Minh", Nationality: models.NationalityVietNam})
	require.NoError(t, err)

	f.team.Drivers = []*models.Driver{f.driver, second}
	_, err = repos.Team.Save(ctx, f.team)
	require.NoError(t, err)

	team, err := repos.Team.FindByID(ctx, f.team.ID, TeamRelations)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{f.driver.ID, second.ID}, team.DriverIDsOf())
	require.Len(t, team.Cars, 1)
	assert.NotNil(t, team.Cars[0].Class)

	// A nil driver list leaves the association untouched.
	team.Name = "Risi"
	team.Drivers = nil
	_, err = repos.Team.Save(ctx, team)
	require.NoError(t, err)

	driver, err := repos.Driver.FindByID(ctx, second.ID, DriverRelations)
	require.NoError(t, err)
	require.Len(t, driver.Teams, 1)
	assert.Equal(t, "Risi", driver.Teams[0].Name)
	assert.NotNil(t, driver.Teams[0].BusinessAddress)

	outcome, err := repos.Driver.Delete(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), outcome.Affected)

	team, err = repos.Team.FindByID(ctx, f.team.ID, Relations{"drivers"})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{f.driver.ID}, team.DriverIDsOf())
}

func TestDeletingAddressClearsReferences(t *testing.T) {
	repos, ctx := setupRepos(t)
	f := seed(t, ctx, repos)

	outcome, err := repos.Address.Delete(ctx, f.address.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Found())

	driver, err := repos.Driver.FindByID(ctx, f.driver.ID, DriverRelations)
	require.NoError(t, err)
	require.NotNil(t, driver)
	assert.Nil(t, driver.HomeAddressID)
	assert.Nil(t, driver.HomeAddress)

	team, err := repos.Team.FindByID(ctx, f.team.ID, NoRelations)
	require.NoError(t, err)
	require.NotNil(t, team)
	assert.Nil(t, team.BusinessAddressID)
}

func TestDeletingReferencedClassFails(t *testing.T) {
	repos, ctx := setupRepos(t)
	f := seed(t, ctx, repos)

	_, err := repos.Class.Delete(ctx, f.class.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConstraint)
}
