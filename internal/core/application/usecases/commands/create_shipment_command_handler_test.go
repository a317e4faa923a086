package commands_test

import (
	"errors"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingWithCode(code string) any {
	return mock.MatchedBy(func(s *shipment.Shipment) bool {
		return s.TrackingCode().String() == code &&
			s.Status() == shipment.Pending &&
			s.CreatedAt().Equal(now) &&
			len(s.History()) == 1
	})
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(newActor(t, kernel.RoleOperator), kernel.NewUUID(), newDetails(t))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	factory := new(MockShipmentUoWFactory)
	metrics := new(MockStatusMetrics)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", ctx, pendingWithCode("BB-AAAA1")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		metrics.On("RecordShipmentCreated", schedule.Air).Once(),
	)

	handler := commands.NewCreateShipmentCommandHandler(factory, metrics, clock, sequence(t, "BB-AAAA1"))
	code, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "BB-AAAA1", code.String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_RetriesOnCodeCollision(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(newActor(t, kernel.RoleAdmin), kernel.NewUUID(), newDetails(t))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	factory := new(MockShipmentUoWFactory)
	metrics := new(MockStatusMetrics)

	factory.On("Create").Return(uow).Twice()
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("ShipmentRepository").Return(repo).Twice()
	repo.On("Add", ctx, pendingWithCode("BB-TAKEN")).Return(shipment.ErrTrackingCodeTaken).Once()
	repo.On("Add", ctx, pendingWithCode("BB-FREE1")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()
	metrics.On("RecordShipmentCreated", schedule.Air).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory, metrics, clock, sequence(t, "BB-TAKEN", "BB-FREE1"))
	code, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "BB-FREE1", code.String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_GivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(newActor(t, kernel.RoleAdmin), kernel.NewUUID(), newDetails(t))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	factory := new(MockShipmentUoWFactory)
	metrics := new(MockStatusMetrics)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ShipmentRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Add", ctx, mock.Anything).Return(shipment.ErrTrackingCodeTaken)

	handler := commands.NewCreateShipmentCommandHandler(factory, metrics, clock, sequence(t, "BB-TAKEN"))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCodeSpaceExhausted)
	uow.AssertNotCalled(t, "Commit", ctx)
	metrics.AssertNotCalled(t, "RecordShipmentCreated", mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_RejectsCustomer(t *testing.T) {
	cmd, err := commands.NewCreateShipmentCommand(newActor(t, kernel.RoleCustomer), kernel.NewUUID(), newDetails(t))
	require.NoError(t, err)

	factory := new(MockShipmentUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(factory, new(MockStatusMetrics), clock, nil)
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, services.ErrActorNotPrivileged)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_InvalidDetails(t *testing.T) {
	details := newDetails(t)
	details.WeightKg = 0
	cmd, err := commands.NewCreateShipmentCommand(newActor(t, kernel.RoleAdmin), kernel.NewUUID(), details)
	require.NoError(t, err)

	factory := new(MockShipmentUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(factory, new(MockStatusMetrics), clock, nil)
	_, err = handler.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "weightKg")
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(newActor(t, kernel.RoleAdmin), kernel.NewUUID(), newDetails(t))
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateShipmentCommandHandler(factory, new(MockStatusMetrics), clock, nil)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
