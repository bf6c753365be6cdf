package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/BusinessFinder/pkg/geo"
	"droscher.com/BusinessFinder/pkg/model"
	"droscher.com/BusinessFinder/pkg/repository"
)

var businessColumns = []string{"id", "name", "category", "address", "phone", "latitude", "longitude", "opening_hours", "created_at", "updated_at"}

type BusinessTestSuite struct {
	RepositorySuite
}

func TestBusinessTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessTestSuite))
}

func (suite *BusinessTestSuite) TestAddBusiness_AssignsID() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "businesses" (.+)`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	business, err := suite.repository.AddBusiness(context.Background(), model.Business{
		Name:      "Padaria Sol",
		Category:  "Bakery",
		Address:   "Rua A, 1",
		Latitude:  pointy.Float64(-22.371),
		Longitude: pointy.Float64(-41.786),
	})
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, business.ID)
	suite.Equal("Padaria Sol", business.Name)
}

func (suite *BusinessTestSuite) TestAddBusiness_LogsStoreFailure() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "businesses" (.+)`).WillReturnError(context.DeadlineExceeded)
	suite.mock.ExpectRollback()

	business, err := suite.repository.AddBusiness(context.Background(), model.Business{Name: "Padaria Sol"})
	suite.Require().Error(err)
	suite.Nil(business)
	suite.Equal(1, suite.observedLogs.FilterMessage("error adding business").Len())
}

func (suite *BusinessTestSuite) TestListBusinesses_OrdersByName() {
	now := time.Now()
	suite.mock.ExpectQuery(`^SELECT \* FROM "businesses" ORDER BY name asc`).
		WillReturnRows(sqlmock.NewRows(businessColumns).
			AddRow(uuid.NewString(), "Academia Forte", "Gym", "Rua B, 2", nil, nil, nil, nil, now, now).
			AddRow(uuid.NewString(), "Padaria Sol", "Bakery", "Rua A, 1", "2222-0000", -22.371, -41.786, "7-19", now, now))

	businesses, err := suite.repository.ListBusinesses(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(businesses, 2)
	suite.Equal("Academia Forte", businesses[0].Name)
	suite.False(businesses[0].HasLocation())
	suite.True(businesses[1].HasLocation())
	suite.Equal("2222-0000", *businesses[1].Phone)
}

func (suite *BusinessTestSuite) TestGetBusinessByID_FindsBusiness() {
	id := uuid.New()
	suite.mock.ExpectQuery(`^SELECT \* FROM "businesses" WHERE id = \$1 (.+)`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id.String(), "Padaria Sol"))

	business, err := suite.repository.GetBusinessByID(context.Background(), id)
	suite.Require().NoError(err)
	suite.Equal(id, business.ID)
	suite.Equal("Padaria Sol", business.Name)
}

func (suite *BusinessTestSuite) TestGetBusinessByID_ReturnsNotFound() {
	suite.mock.ExpectQuery(`^SELECT (.+)`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	business, err := suite.repository.GetBusinessByID(context.Background(), uuid.New())
	suite.Require().ErrorIs(err, repository.ErrBusinessNotFound)
	suite.Require().ErrorIs(err, model.ErrNotFound)
	suite.Nil(business)
}

func (suite *BusinessTestSuite) TestUpdateBusiness_ReplacesFields() {
	id := uuid.New()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT \* FROM "businesses" WHERE id = \$1 (.+)`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows(businessColumns).
			AddRow(id.String(), "Old", "Cafe", "Rua C, 3", "1111", 1.0, 2.0, "8-18", created, created))
	suite.mock.ExpectExec(`^UPDATE "businesses" SET (.+) WHERE "id" = (.+)`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	business, err := suite.repository.UpdateBusiness(context.Background(), model.Business{
		ID:       id,
		Name:     "Padaria Sol",
		Category: "Bakery",
		Address:  "Rua A, 1",
	})
	suite.Require().NoError(err)
	suite.Equal("Padaria Sol", business.Name)
	suite.Nil(business.Phone)
	suite.Nil(business.Latitude)
	suite.Nil(business.OpeningHours)
	suite.Equal(created, business.CreatedAt)
}

func (suite *BusinessTestSuite) TestUpdateBusiness_ReturnsNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT (.+)`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	suite.mock.ExpectRollback()

	business, err := suite.repository.UpdateBusiness(context.Background(), model.Business{ID: uuid.New(), Name: "Ghost"})
	suite.Require().ErrorIs(err, repository.ErrBusinessNotFound)
	suite.Nil(business)
}

func (suite *BusinessTestSuite) TestDeleteBusiness_DeletesBusiness() {
	id := uuid.New()
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^DELETE FROM "businesses" WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.Require().NoError(suite.repository.DeleteBusiness(context.Background(), id))
}

func (suite *BusinessTestSuite) TestDeleteBusiness_ReturnsNotFoundWhenNothingDeleted() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^DELETE FROM "businesses"`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	suite.Require().ErrorIs(suite.repository.DeleteBusiness(context.Background(), uuid.New()), repository.ErrBusinessNotFound)
}

func (suite *BusinessTestSuite) TestFindBusinessCandidates_EscapesWildcards() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "businesses" WHERE (.+)latitude IS NOT NULL AND longitude IS NOT NULL(.+)name ILIKE \$1 OR category ILIKE \$2(.+)ORDER BY name asc`).
		WithArgs(`%50\%\_off%`, `%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(uuid.NewString(), "50%_off Store"))

	businesses, err := suite.repository.FindBusinessCandidates(context.Background(), "50%_off")
	suite.Require().NoError(err)
	suite.Len(businesses, 1)
}

func (suite *BusinessTestSuite) TestFindBusinessCandidates_EmptyQuerySkipsTextFilter() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "businesses" WHERE latitude IS NOT NULL AND longitude IS NOT NULL ORDER BY name asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	businesses, err := suite.repository.FindBusinessCandidates(context.Background(), "")
	suite.Require().NoError(err)
	suite.Empty(businesses)
}

func (suite *BusinessTestSuite) TestFindNearbyBusinesses_ScansDistance() {
	suite.mock.ExpectQuery(`^SELECT b\.\*,(.+)ST_DWithin(.+)ORDER BY distance ASC, b\.name ASC, b\.id ASC(.+)LIMIT`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 5000.0, "%pad%", "%pad%", 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "address", "latitude", "longitude", "distance"}).
			AddRow(uuid.NewString(), "Padaria Sol", "Bakery", "Rua A, 1", -22.371, -41.786, 0.0).
			AddRow(uuid.NewString(), "Padaria Lua", "Bakery", "Rua D, 4", -22.38, -41.79, 1.07))

	businesses, err := suite.repository.FindNearbyBusinesses(context.Background(), "pad", geo.Point{Lat: -22.371, Lng: -41.786}, 5, 50)
	suite.Require().NoError(err)
	suite.Require().Len(businesses, 2)
	suite.Equal("Padaria Sol", businesses[0].Business.Name)
	suite.InDelta(0.0, businesses[0].Distance, 1e-9)
	suite.InDelta(1.07, businesses[1].Distance, 1e-9)
}
