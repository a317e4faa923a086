// Package http exposes the use cases over a JSON API on echo.
//
// Routes under /api/v1 that change state or show the operations views need a
// bearer token (see BearerAuth). Tracking lookup and the schedule view are public.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/transfer"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	CreateShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (kernel.TrackingCode, error)
	}
	SetShipmentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.SetShipmentStatusCommand) error
	}
	CreateTransferHandler interface {
		Handle(ctx context.Context, cmd commands.CreateTransferCommand) (transfer.Reference, error)
	}
	UpdateScheduleHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateScheduleCommand) error
	}
	ShipmentBucketsHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentsGroupedByBucketQuery) ([]queries.ShipmentBucketResponse, error)
	}
	TransferBucketsHandler interface {
		Handle(ctx context.Context, query queries.GetTransfersGroupedQuery) ([]queries.TransferBucketResponse, error)
	}
	TrackingLookupHandler interface {
		Handle(ctx context.Context, query queries.TrackingLookupQuery) (queries.TrackingLookupResponse, error)
	}
	GetScheduleHandler interface {
		Handle(ctx context.Context, query queries.GetScheduleQuery) (queries.GetScheduleQueryResponse, error)
	}
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateShipment    CreateShipmentHandler
	SetShipmentStatus SetShipmentStatusHandler
	CreateTransfer    CreateTransferHandler
	UpdateSchedule    UpdateScheduleHandler
	ShipmentBuckets   ShipmentBucketsHandler
	TransferBuckets   TransferBucketsHandler
	TrackingLookup    TrackingLookupHandler
	GetSchedule       GetScheduleHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
	location *time.Location
	logger   *slog.Logger
}

// NewServer creates the server. Schedule dates in requests are read in location.
func NewServer(handlers Handlers, location *time.Location, logger *slog.Logger) *Server {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		location: location,
		logger:   logger.With("component", "http_server"),
	}
}

// Register mounts the API on e. auth guards the private routes.
func (s *Server) Register(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	api.GET("/tracking/:code", s.TrackingLookup)
	api.GET("/schedule", s.GetSchedule)

	api.POST("/shipments", s.CreateShipment, auth)
	api.POST("/shipments/:id/status", s.SetShipmentStatus, auth)
	api.GET("/shipments/buckets", s.GetShipmentBuckets, auth)
	api.POST("/transfers", s.CreateTransfer, auth)
	api.GET("/transfers/buckets", s.GetTransferBuckets, auth)
	api.PUT("/schedule", s.UpdateSchedule, auth)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	var body NewShipment
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	mode, modeErr := schedule.ParseMode(body.Mode)
	price, priceErr := body.DeclaredPrice.toDomain()
	if err := errors.Join(modeErr, priceErr); err != nil {
		return s.writeError(c, err, "Invalid shipment data")
	}

	cmd, err := commands.NewCreateShipmentCommand(actor, kernel.NewUUID(), shipment.Details{
		SenderName:        body.SenderName,
		RecipientName:     body.RecipientName,
		OriginRegion:      body.OriginRegion,
		DestinationRegion: body.DestinationRegion,
		WeightKg:          body.WeightKg,
		DeclaredPrice:     price,
		Mode:              mode,
	})
	if err != nil {
		return s.writeError(c, err, "Invalid shipment data")
	}

	code, err := s.handlers.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err, "Failed to create shipment")
	}

	return c.JSON(http.StatusCreated, CreatedShipment{
		ID:           cmd.ShipmentID().String(),
		TrackingCode: code.String(),
	})
}

// SetShipmentStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) SetShipmentStatus(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err, "Invalid shipment id")
	}

	var body StatusChange
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSetShipmentStatusCommand(actor, id, body.Status)
	if err != nil {
		return s.writeError(c, err, "Invalid status change")
	}

	if err := s.handlers.SetShipmentStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err, "Failed to change status")
	}

	return c.NoContent(http.StatusNoContent)
}

// GetShipmentBuckets handles GET /api/v1/shipments/buckets?q=&includeTerminal=.
func (s *Server) GetShipmentBuckets(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	includeTerminal := false
	if raw := c.QueryParam("includeTerminal"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "includeTerminal must be a boolean")
		}
		includeTerminal = v
	}

	query := queries.NewGetShipmentsGroupedByBucketQuery(actor, c.QueryParam("q"), includeTerminal)
	buckets, err := s.handlers.ShipmentBuckets.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve shipments")
	}

	return c.JSON(http.StatusOK, shipmentBuckets(buckets))
}

// CreateTransfer handles POST /api/v1/transfers.
func (s *Server) CreateTransfer(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	var body NewTransfer
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	amount, err := body.Amount.toDomain()
	if err != nil {
		return s.writeError(c, err, "Invalid transfer data")
	}

	cmd, err := commands.NewCreateTransferCommand(actor, kernel.NewUUID(), transfer.Parties{
		SenderName:      body.SenderName,
		BeneficiaryName: body.BeneficiaryName,
		Origin:          body.Origin,
		Destination:     body.Destination,
	}, amount)
	if err != nil {
		return s.writeError(c, err, "Invalid transfer data")
	}

	ref, err := s.handlers.CreateTransfer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err, "Failed to create transfer")
	}

	return c.JSON(http.StatusCreated, CreatedTransfer{
		ID:        cmd.TransferID().String(),
		Reference: ref.String(),
	})
}

// GetTransferBuckets handles GET /api/v1/transfers/buckets?q=.
func (s *Server) GetTransferBuckets(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	query := queries.NewGetTransfersGroupedQuery(actor, c.QueryParam("q"))
	buckets, err := s.handlers.TransferBuckets.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve transfers")
	}

	return c.JSON(http.StatusOK, transferBuckets(buckets))
}

// TrackingLookup handles GET /api/v1/tracking/:code. No authentication.
func (s *Server) TrackingLookup(c echo.Context) error {
	query, err := queries.NewTrackingLookupQuery(c.Param("code"))
	if err != nil {
		return s.writeError(c, err, "Invalid tracking code")
	}

	res, err := s.handlers.TrackingLookup.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err, "Failed to look up shipment")
	}

	return c.JSON(http.StatusOK, tracking(res))
}

// GetSchedule handles GET /api/v1/schedule. No authentication.
func (s *Server) GetSchedule(c echo.Context) error {
	res, err := s.handlers.GetSchedule.Handle(c.Request().Context(), queries.NewGetScheduleQuery())
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve schedule")
	}

	return c.JSON(http.StatusOK, scheduleView(res))
}

// UpdateSchedule handles PUT /api/v1/schedule.
func (s *Server) UpdateSchedule(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	var body ScheduleBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	windows, blocks, err := s.scheduleFromBody(body)
	if err != nil {
		return s.writeError(c, err, "Invalid schedule")
	}

	cmd, err := commands.NewUpdateScheduleCommand(actor, windows, blocks)
	if err != nil {
		return s.writeError(c, err, "Invalid schedule")
	}

	if err := s.handlers.UpdateSchedule.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err, "Failed to update schedule")
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) scheduleFromBody(body ScheduleBody) ([]schedule.Window, []schedule.Block, error) {
	var all []error

	windows := make([]schedule.Window, 0, len(body.Windows))
	for i, w := range body.Windows {
		date, err := time.ParseInLocation(dateLayout, w.Date, s.location)
		if err != nil {
			all = append(all, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("windows[%d].date", i), err))
			continue
		}
		mode, err := schedule.ParseMode(w.Mode)
		if err != nil {
			all = append(all, err)
			continue
		}
		windows = append(windows, schedule.Window{Date: date, Mode: mode})
	}

	blocks := make([]schedule.Block, 0, len(body.Blocks))
	for _, b := range body.Blocks {
		mode, err := schedule.ParseMode(b.Mode)
		if err != nil {
			all = append(all, err)
			continue
		}
		blocks = append(blocks, schedule.Block{MonthLabel: b.MonthLabel, DaysText: b.DaysText, Mode: mode})
	}

	return windows, blocks, errors.Join(all...)
}
