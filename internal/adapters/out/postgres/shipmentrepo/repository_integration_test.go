package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
	intake     time.Time
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.HistoryEntryDTO{}))
	suite.intake = time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_history, shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsEveryField() {
	ctx := context.Background()
	s := suite.newShipment("BB-RT001", suite.intake)

	suite.Require().NoError(suite.repository.Add(ctx, s))

	got, err := suite.repository.GetByTrackingCode(ctx, s.TrackingCode())
	suite.Require().NoError(err)
	suite.Equal(s.ID(), got.ID())
	suite.Equal(s.TrackingCode(), got.TrackingCode())
	suite.True(s.CreatedAt().Equal(got.CreatedAt()))
	suite.Equal(s.Details().DeclaredPrice, got.Details().DeclaredPrice)
	suite.Equal(s.Details().Mode, got.Details().Mode)
	suite.InDelta(s.Details().WeightKg, got.Details().WeightKg, 0.0001)
	suite.Equal(shipment.Pending, got.Status())
	suite.Require().Len(got.History(), 1)
	suite.Equal("intake", got.History()[0].ActorID)
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", s.ID(), s)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingCode() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newShipment("BB-DUP01", suite.intake)))

	err := suite.repository.Add(ctx, suite.newShipment("BB-DUP01", suite.intake))

	suite.Require().ErrorIs(err, shipment.ErrTrackingCodeTaken)
	suite.assertShipmentCount(1)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ZeroValueShipment() {
	err := suite.repository.Add(context.Background(), &shipment.Shipment{})

	suite.Require().ErrorIs(err, shipment.ErrShipmentIsNotConstructed)
	suite.assertShipmentCount(0)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_AppendsHistoryOnly() {
	ctx := context.Background()
	s := suite.newShipment("BB-UPD01", suite.intake)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	suite.Require().NoError(s.SetStatus(shipment.Collected, suite.intake.Add(time.Hour), "op", shipment.TransitionForwardOnly))
	suite.Require().NoError(suite.repository.Update(ctx, s))
	suite.Require().NoError(s.SetStatus(shipment.InTransit, suite.intake.Add(2*time.Hour), "op", shipment.TransitionForwardOnly))
	suite.Require().NoError(suite.repository.Update(ctx, s))

	got, err := suite.repository.GetByTrackingCode(ctx, s.TrackingCode())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, got.Status())
	suite.Require().Len(got.History(), 3)
	suite.Equal(shipment.Collected, got.History()[1].Status)
	suite.True(suite.intake.Add(2 * time.Hour).Equal(got.History()[2].Timestamp))
	suite.assertHistoryCount(3)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StaleAggregateIsRejected() {
	ctx := context.Background()
	s := suite.newShipment("BB-STA01", suite.intake)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	fresh, err := suite.repository.GetByTrackingCode(ctx, s.TrackingCode())
	suite.Require().NoError(err)
	suite.Require().NoError(fresh.SetStatus(shipment.Collected, suite.intake, "op", shipment.TransitionForwardOnly))
	suite.Require().NoError(fresh.SetStatus(shipment.InTransit, suite.intake, "op", shipment.TransitionForwardOnly))
	suite.Require().NoError(suite.repository.Update(ctx, fresh))

	suite.Require().NoError(s.SetStatus(shipment.Collected, suite.intake, "other", shipment.TransitionForwardOnly))
	err = suite.repository.Update(ctx, s)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.assertHistoryCount(3)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetForUpdate_NotFound() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingCode() {
	ctx := context.Background()
	s := suite.newShipment("BB-TRK01", suite.intake)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	got, err := suite.repository.GetByTrackingCode(ctx, s.TrackingCode())
	suite.Require().NoError(err)
	suite.Equal(s.ID(), got.ID())

	unknown, err := kernel.ParseTrackingCode("BB-NONE0")
	suite.Require().NoError(err)
	_, err = suite.repository.GetByTrackingCode(ctx, unknown)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestList_HidesTerminalUnlessAsked() {
	ctx := context.Background()
	second := suite.newShipment("BB-LST02", suite.intake.Add(time.Hour))
	first := suite.newShipment("BB-LST01", suite.intake)
	done := suite.newShipment("BB-LST03", suite.intake.Add(2*time.Hour))
	suite.Require().NoError(done.SetStatus(shipment.Delivered, suite.intake.Add(3*time.Hour), "op", shipment.TransitionForwardOnly))
	for _, s := range []*shipment.Shipment{second, first, done} {
		suite.Require().NoError(suite.repository.Add(ctx, s))
	}

	active, err := suite.repository.List(ctx, ports.ShipmentFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.Equal("BB-LST01", active[0].TrackingCode().String())
	suite.Equal("BB-LST02", active[1].TrackingCode().String())

	all, err := suite.repository.List(ctx, ports.ShipmentFilter{IncludeTerminal: true})
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) newShipment(code string, createdAt time.Time) *shipment.Shipment {
	tc, err := kernel.ParseTrackingCode(code)
	suite.Require().NoError(err)
	price, err := kernel.NewMoney(45000, "XAF")
	suite.Require().NoError(err)
	s, err := shipment.NewShipment(kernel.NewUUID(), tc, shipment.Details{
		SenderName:        "María Obiang",
		RecipientName:     "Pedro Nsue",
		OriginRegion:      "Madrid",
		DestinationRegion: "Malabo",
		WeightKg:          12.5,
		DeclaredPrice:     price,
		Mode:              schedule.Air,
	}, createdAt, "intake")
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) assertHistoryCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.HistoryEntryDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
