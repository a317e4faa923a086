package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/transfer"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentReader struct{ mock.Mock }

func (m *MockShipmentReader) List(ctx context.Context, filter ports.ShipmentFilter) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentReader) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockTransferReader struct{ mock.Mock }

func (m *MockTransferReader) List(ctx context.Context) ([]*transfer.Transfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transfer.Transfer), args.Error(1)
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

var now = time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func newResolver() *schedule.Resolver {
	return schedule.NewResolver(time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)), clock)
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor("user-"+string(role), role)
	require.NoError(t, err)
	return a
}

func newShipment(t *testing.T, code, recipient string, createdAt time.Time) *shipment.Shipment {
	t.Helper()
	tc, err := kernel.ParseTrackingCode(code)
	require.NoError(t, err)
	price, err := kernel.NewMoney(9000, "EUR")
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), tc, shipment.Details{
		SenderName:        "Ana Nchama",
		RecipientName:     recipient,
		OriginRegion:      "Madrid",
		DestinationRegion: "Malabo",
		WeightKg:          4,
		DeclaredPrice:     price,
		Mode:              schedule.Air,
	}, createdAt, "intake")
	require.NoError(t, err)
	return s
}
