package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/transfer"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) List(ctx context.Context, filter ports.ShipmentFilter) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockTransferRepository struct{ mock.Mock }

func (m *MockTransferRepository) Add(ctx context.Context, t *transfer.Transfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransferRepository) List(ctx context.Context) ([]*transfer.Transfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transfer.Transfer), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) TransferRepository() ports.TransferRepository {
	args := m.Called()
	return args.Get(0).(ports.TransferRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockTransferUoWFactory struct{ mock.Mock }

func (m *MockTransferUoWFactory) Create() commands.TransferUoW {
	args := m.Called()
	return args.Get(0).(commands.TransferUoW)
}

type MockStatusMetrics struct{ mock.Mock }

func (m *MockStatusMetrics) RecordTransition(status shipment.Status) {
	m.Called(status)
}

func (m *MockStatusMetrics) RecordShipmentCreated(mode schedule.Mode) {
	m.Called(mode)
}

type MockScheduleStore struct{ mock.Mock }

func (m *MockScheduleStore) Load(ctx context.Context) (schedule.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(schedule.Settings), args.Error(1)
}

func (m *MockScheduleStore) Save(ctx context.Context, settings schedule.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

var now = time.Date(2026, time.January, 12, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return now }

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor("user-"+string(role), role)
	require.NoError(t, err)
	return a
}

func newDetails(t *testing.T) shipment.Details {
	t.Helper()
	price, err := kernel.NewMoney(30000, "EUR")
	require.NoError(t, err)
	return shipment.Details{
		SenderName:        "Ana Nchama",
		RecipientName:     "Luis Esono",
		OriginRegion:      "Madrid",
		DestinationRegion: "Malabo",
		WeightKg:          8,
		DeclaredPrice:     price,
		Mode:              schedule.Air,
	}
}

func newPendingShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	code, err := kernel.ParseTrackingCode("BB-7K2QX")
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), code, newDetails(t), now.Add(-time.Hour), "intake")
	require.NoError(t, err)
	return s
}

func sequence(t *testing.T, raw ...string) func() (kernel.TrackingCode, error) {
	t.Helper()
	codes := make([]kernel.TrackingCode, 0, len(raw))
	for _, r := range raw {
		c, err := kernel.ParseTrackingCode(r)
		require.NoError(t, err)
		codes = append(codes, c)
	}
	i := 0
	return func() (kernel.TrackingCode, error) {
		c := codes[i%len(codes)]
		i++
		return c, nil
	}
}
