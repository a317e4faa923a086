package shipment_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var intake = time.Date(2025, time.December, 20, 9, 0, 0, 0, time.UTC)

func validDetails(t *testing.T) shipment.Details {
	t.Helper()
	price, err := kernel.NewMoney(45000, "XAF")
	require.NoError(t, err)
	return shipment.Details{
		SenderName:        "María Obiang",
		RecipientName:     "Pedro Nsue",
		OriginRegion:      "Madrid",
		DestinationRegion: "Malabo",
		WeightKg:          12.5,
		DeclaredPrice:     price,
		Mode:              schedule.Air,
	}
}

func newShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	code, err := kernel.ParseTrackingCode("BB-4F7QX")
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), code, validDetails(t), intake, "ana")
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("should start pending with one history entry", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Equal(t, "BB-4F7QX", s.TrackingCode().String())
		assert.Equal(t, intake, s.CreatedAt())
		require.Len(t, s.History(), 1)
		assert.Equal(t, shipment.HistoryEntry{Status: shipment.Pending, Timestamp: intake, ActorID: "ana"}, s.History()[0])
	})

	t.Run("should join every validation error", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.UUID{}, kernel.TrackingCode{}, shipment.Details{}, time.Time{}, "ana")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "tracking code")
		assert.Contains(t, err.Error(), "senderName")
		assert.Contains(t, err.Error(), "recipientName")
		assert.Contains(t, err.Error(), "weightKg")
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should reject the zero value as not constructed", func(t *testing.T) {
		var s shipment.Shipment
		assert.Equal(t, shipment.ErrShipmentIsNotConstructed, s.Validate())

		var nilShipment *shipment.Shipment
		assert.Equal(t, shipment.ErrShipmentIsNotConstructed, nilShipment.Validate())
	})
}

func TestShipment_SetStatus(t *testing.T) {
	t.Run("should record the documented sequence in order", func(t *testing.T) {
		s := newShipment(t)
		steps := []shipment.Status{shipment.Collected, shipment.InTransit, shipment.Delivered}

		for i, next := range steps {
			require.NoError(t, s.SetStatus(next, intake.Add(time.Duration(i+1)*time.Hour), "luis", shipment.TransitionForwardOnly))
		}

		history := s.History()
		require.Len(t, history, 4)
		want := []shipment.Status{shipment.Pending, shipment.Collected, shipment.InTransit, shipment.Delivered}
		for i, entry := range history {
			assert.Equal(t, want[i], entry.Status)
			if i > 0 {
				assert.False(t, entry.Timestamp.Before(history[i-1].Timestamp))
			}
		}
		assert.Equal(t, history[len(history)-1].Status, s.Status())
	})

	t.Run("should reject changes after delivery without mutating", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.SetStatus(shipment.Delivered, intake.Add(time.Hour), "luis", shipment.TransitionForwardOnly))

		err := s.SetStatus(shipment.Cancelled, intake.Add(2*time.Hour), "luis", shipment.TransitionOverride)

		require.ErrorIs(t, err, shipment.ErrTerminalStateViolation)
		assert.Len(t, s.History(), 2)
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("should reject unknown statuses without mutating", func(t *testing.T) {
		s := newShipment(t)

		err := s.SetStatus(shipment.Status("Perdido"), intake.Add(time.Hour), "luis", shipment.TransitionForwardOnly)

		require.ErrorIs(t, err, shipment.ErrInvalidStatus)
		assert.Len(t, s.History(), 1)
	})

	t.Run("should clamp timestamps that go back in time", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.SetStatus(shipment.Collected, intake.Add(-time.Minute), "luis", shipment.TransitionForwardOnly))

		assert.Equal(t, intake, s.History()[1].Timestamp)
	})

	t.Run("should not leak history through copies", func(t *testing.T) {
		s := newShipment(t)
		h := s.History()
		h[0].Status = shipment.Cancelled

		assert.Equal(t, shipment.Pending, s.Status())
	})
}

func TestShipment_LastTimestampFor(t *testing.T) {
	s := newShipment(t)
	collectedAt := intake.Add(time.Hour)
	correctedAt := intake.Add(3 * time.Hour)
	require.NoError(t, s.SetStatus(shipment.Collected, collectedAt, "luis", shipment.TransitionForwardOnly))
	require.NoError(t, s.SetStatus(shipment.InTransit, intake.Add(2*time.Hour), "luis", shipment.TransitionForwardOnly))
	require.NoError(t, s.SetStatus(shipment.Collected, correctedAt, "ana", shipment.TransitionOverride))

	ts, ok := s.LastTimestampFor(shipment.Collected)
	require.True(t, ok)
	assert.Equal(t, correctedAt, ts)

	_, ok = s.LastTimestampFor(shipment.InCustoms)
	assert.False(t, ok)
}

func TestRestoreShipment(t *testing.T) {
	code, err := kernel.ParseTrackingCode("BB-00001")
	require.NoError(t, err)

	t.Run("should restore a consistent history", func(t *testing.T) {
		history := []shipment.HistoryEntry{
			{Status: shipment.Pending, Timestamp: intake},
			{Status: shipment.Collected, Timestamp: intake.Add(time.Hour)},
		}

		s, err := shipment.RestoreShipment(kernel.NewUUID(), code, validDetails(t), intake, history)

		require.NoError(t, err)
		assert.Equal(t, shipment.Collected, s.Status())
	})

	t.Run("should reject empty history", func(t *testing.T) {
		_, err := shipment.RestoreShipment(kernel.NewUUID(), code, validDetails(t), intake, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject decreasing timestamps", func(t *testing.T) {
		history := []shipment.HistoryEntry{
			{Status: shipment.Pending, Timestamp: intake},
			{Status: shipment.Collected, Timestamp: intake.Add(-time.Hour)},
		}

		_, err := shipment.RestoreShipment(kernel.NewUUID(), code, validDetails(t), intake, history)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown stored statuses", func(t *testing.T) {
		history := []shipment.HistoryEntry{{Status: shipment.Status("Lost"), Timestamp: intake}}

		_, err := shipment.RestoreShipment(kernel.NewUUID(), code, validDetails(t), intake, history)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_SearchFields(t *testing.T) {
	s := newShipment(t)
	assert.Equal(t, []string{"BB-4F7QX", "María Obiang", "Pedro Nsue", "Madrid", "Malabo"}, s.SearchFields())
}
