// Package http exposes the application use cases over the generated REST API.
package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/generated/servers"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobHandler      commands.CreateJobCommandHandler
	submitBidHandler      commands.SubmitBidCommandHandler
	acceptBidHandler      commands.AcceptBidCommandHandler
	rejectBidHandler      commands.RejectBidCommandHandler
	advanceJobHandler     commands.AdvanceJobCommandHandler
	cancelJobHandler      commands.CancelJobCommandHandler
	reportPositionHandler commands.ReportPositionCommandHandler

	// Query handlers
	getActiveJobsHandler       queries.GetActiveJobsQueryHandler
	getJobBidsHandler          queries.GetJobBidsQueryHandler
	getCarrierPositionHandler  queries.GetCarrierPositionQueryHandler
	getCarrierPositionsHandler queries.GetCarrierPositionsQueryHandler
	getNotificationsHandler    queries.GetNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	submitBidHandler commands.SubmitBidCommandHandler,
	acceptBidHandler commands.AcceptBidCommandHandler,
	rejectBidHandler commands.RejectBidCommandHandler,
	advanceJobHandler commands.AdvanceJobCommandHandler,
	cancelJobHandler commands.CancelJobCommandHandler,
	reportPositionHandler commands.ReportPositionCommandHandler,
	getActiveJobsHandler queries.GetActiveJobsQueryHandler,
	getJobBidsHandler queries.GetJobBidsQueryHandler,
	getCarrierPositionHandler queries.GetCarrierPositionQueryHandler,
	getCarrierPositionsHandler queries.GetCarrierPositionsQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
) *Server {
	return &Server{
		createJobHandler:           createJobHandler,
		submitBidHandler:           submitBidHandler,
		acceptBidHandler:           acceptBidHandler,
		rejectBidHandler:           rejectBidHandler,
		advanceJobHandler:          advanceJobHandler,
		cancelJobHandler:           cancelJobHandler,
		reportPositionHandler:      reportPositionHandler,
		getActiveJobsHandler:       getActiveJobsHandler,
		getJobBidsHandler:          getJobBidsHandler,
		getCarrierPositionHandler:  getCarrierPositionHandler,
		getCarrierPositionsHandler: getCarrierPositionsHandler,
		getNotificationsHandler:    getNotificationsHandler,
	}
}

// CreateJob handles POST /api/v1/jobs - posts a new job.
func (s *Server) CreateJob(ctx echo.Context) error {
	var newJob servers.NewJob
	if err := ctx.Bind(&newJob); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipperID, err := kernel.UUIDFromBytes(newJob.ShipperId[:])
	if err != nil {
		return badRequest(ctx, "Invalid shipper id")
	}

	pickup, err := waypointFromAPI(newJob.Pickup)
	if err != nil {
		return badRequest(ctx, "Invalid pickup waypoint: "+err.Error())
	}

	delivery, err := waypointFromAPI(newJob.Delivery)
	if err != nil {
		return badRequest(ctx, "Invalid delivery waypoint: "+err.Error())
	}

	equipmentType := ""
	if newJob.EquipmentType != nil {
		equipmentType = *newJob.EquipmentType
	}

	cmd, err := commands.NewCreateJobCommand(
		kernel.NewUUID(),
		shipperID,
		pickup,
		delivery,
		newJob.RequestedDate,
		newJob.WeightKg,
		equipmentType,
	)
	if err != nil {
		return badRequest(ctx, "Invalid job data: "+err.Error())
	}

	if handleErr := s.createJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveJobs handles GET /api/v1/jobs/active - lists non-terminal jobs.
func (s *Server) GetActiveJobs(ctx echo.Context) error {
	query := queries.NewGetActiveJobsQuery()

	jobs, err := s.getActiveJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve jobs")
	}

	response := make([]servers.Job, len(jobs))
	for i, j := range jobs {
		jobResp := servers.Job{
			Id:        j.ID.Bytes(),
			ShipperId: j.ShipperID.Bytes(),
			Pickup: servers.Waypoint{
				Latitude:  j.PickupLatitude,
				Longitude: j.PickupLongitude,
				Address:   j.PickupAddress,
			},
			Delivery: servers.Waypoint{
				Latitude:  j.DeliveryLatitude,
				Longitude: j.DeliveryLongitude,
				Address:   j.DeliveryAddress,
			},
			RequestedDate: j.RequestedDate,
			WeightKg:      j.WeightKg,
			Status:        j.Status,
		}
		if j.EquipmentType != "" {
			equipmentType := j.EquipmentType
			jobResp.EquipmentType = &equipmentType
		}
		if j.AcceptedBidID != nil {
			acceptedBidID := j.AcceptedBidID.Bytes()
			jobResp.AcceptedBidId = &acceptedBidID
		}
		response[i] = jobResp
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitBid handles POST /api/v1/jobs/{jobId}/bids - places a carrier's bid.
func (s *Server) SubmitBid(ctx echo.Context, jobId openapi_types.UUID) error {
	var newBid servers.NewBid
	if err := ctx.Bind(&newBid); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	carrierID, err := kernel.UUIDFromBytes(newBid.CarrierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	notes := ""
	if newBid.Notes != nil {
		notes = *newBid.Notes
	}

	cmd, err := commands.NewSubmitBidCommand(kernel.NewUUID(), jobID, carrierID, newBid.Price, notes)
	if err != nil {
		return badRequest(ctx, "Invalid bid data: "+err.Error())
	}

	if handleErr := s.submitBidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetJobBids handles GET /api/v1/jobs/{jobId}/bids - lists a job's bids.
func (s *Server) GetJobBids(ctx echo.Context, jobId openapi_types.UUID) error {
	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	query, err := queries.NewGetJobBidsQuery(jobID)
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	bids, err := s.getJobBidsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve bids")
	}

	response := make([]servers.Bid, len(bids))
	for i, b := range bids {
		bidResp := servers.Bid{
			Id:        b.ID.Bytes(),
			JobId:     b.JobID.Bytes(),
			CarrierId: b.CarrierID.Bytes(),
			Price:     b.Price,
			Status:    b.Status,
		}
		if b.Notes != "" {
			notes := b.Notes
			bidResp.Notes = &notes
		}
		response[i] = bidResp
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptBid handles POST /api/v1/jobs/{jobId}/bids/{bidId}/accept.
func (s *Server) AcceptBid(ctx echo.Context, jobId openapi_types.UUID, bidId openapi_types.UUID) error {
	var action servers.ShipperAction
	if err := ctx.Bind(&action); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := newShipperBidCommand(jobId, bidId, action, commands.NewAcceptBidCommand)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.acceptBidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectBid handles POST /api/v1/jobs/{jobId}/bids/{bidId}/reject.
func (s *Server) RejectBid(ctx echo.Context, jobId openapi_types.UUID, bidId openapi_types.UUID) error {
	var action servers.ShipperAction
	if err := ctx.Bind(&action); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := newShipperBidCommand(jobId, bidId, action, commands.NewRejectBidCommand)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.rejectBidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceJob handles POST /api/v1/jobs/{jobId}/advance - carrier lifecycle moves.
func (s *Server) AdvanceJob(ctx echo.Context, jobId openapi_types.UUID) error {
	var advance servers.AdvanceJob
	if err := ctx.Bind(&advance); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	from := job.StatusFromString(advance.From)
	to := job.StatusFromString(advance.To)

	cmd, err := commands.NewAdvanceJobCommand(jobID, from, to)
	if err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	if handleErr := s.advanceJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelJob handles POST /api/v1/jobs/{jobId}/cancel.
func (s *Server) CancelJob(ctx echo.Context, jobId openapi_types.UUID) error {
	var action servers.ShipperAction
	if err := ctx.Bind(&action); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	shipperID, err := kernel.UUIDFromBytes(action.ShipperId[:])
	if err != nil {
		return badRequest(ctx, "Invalid shipper id")
	}

	cmd, err := commands.NewCancelJobCommand(jobID, shipperID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.cancelJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportPosition handles PUT /api/v1/carriers/{carrierId}/position.
func (s *Server) ReportPosition(ctx echo.Context, carrierId openapi_types.UUID) error {
	var report servers.PositionReport
	if err := ctx.Bind(&report); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	carrierID, err := kernel.UUIDFromBytes(carrierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	point, err := kernel.NewGeoPoint(report.Latitude, report.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates: "+err.Error())
	}

	headingDeg := 0.0
	if report.HeadingDeg != nil {
		headingDeg = *report.HeadingDeg
	}
	speedKmh := 0.0
	if report.SpeedKmh != nil {
		speedKmh = *report.SpeedKmh
	}
	online := true
	if report.Online != nil {
		online = *report.Online
	}

	cmd, err := commands.NewReportPositionCommand(carrierID, point, headingDeg, speedKmh, online, report.RecordedAt)
	if err != nil {
		return badRequest(ctx, "Invalid position report: "+err.Error())
	}

	if handleErr := s.reportPositionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCarrierPosition handles GET /api/v1/carriers/{carrierId}/position.
func (s *Server) GetCarrierPosition(ctx echo.Context, carrierId openapi_types.UUID) error {
	carrierID, err := kernel.UUIDFromBytes(carrierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	query, err := queries.NewGetCarrierPositionQuery(carrierID)
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	pos, err := s.getCarrierPositionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Carrier has never reported a position",
			})
		}
		return internalError(ctx, "Failed to retrieve position")
	}

	return ctx.JSON(http.StatusOK, positionToAPI(pos))
}

// GetCarrierPositions handles GET /api/v1/carriers/positions.
func (s *Server) GetCarrierPositions(ctx echo.Context) error {
	query := queries.NewGetCarrierPositionsQuery()

	positions, err := s.getCarrierPositionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve positions")
	}

	response := make([]servers.CarrierPosition, len(positions))
	for i, pos := range positions {
		response[i] = positionToAPI(pos)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/v1/notifications/{recipientId}.
func (s *Server) GetNotifications(ctx echo.Context, recipientId openapi_types.UUID) error {
	recipientID, err := kernel.UUIDFromBytes(recipientId[:])
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	query, err := queries.NewGetNotificationsQuery(recipientID)
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	records, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve notifications")
	}

	response := make([]servers.Notification, len(records))
	for i, record := range records {
		response[i] = servers.Notification{
			RecipientId: record.RecipientID.Bytes(),
			Kind:        record.Notification.Kind,
			Subject:     record.Notification.Subject,
			Message:     record.Notification.Message,
			SentAt:      record.SentAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func positionToAPI(pos queries.GetCarrierPositionQueryResponse) servers.CarrierPosition {
	headingDeg := pos.HeadingDeg
	speedKmh := pos.SpeedKmh
	return servers.CarrierPosition{
		CarrierId:  pos.CarrierID.Bytes(),
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
		HeadingDeg: &headingDeg,
		SpeedKmh:   &speedKmh,
		Online:     pos.Online,
		RecordedAt: pos.RecordedAt,
	}
}

func waypointFromAPI(wp servers.Waypoint) (job.Waypoint, error) {
	point, err := kernel.NewGeoPoint(wp.Latitude, wp.Longitude)
	if err != nil {
		return job.Waypoint{}, err
	}

	return job.NewWaypoint(point, wp.Address)
}

// newShipperBidCommand builds an accept or reject command from the shared
// path parameters and request body.
func newShipperBidCommand[T any](
	jobId openapi_types.UUID,
	bidId openapi_types.UUID,
	action servers.ShipperAction,
	construct func(jobID, bidID, shipperID kernel.UUID) (T, error),
) (T, error) {
	var zero T

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return zero, err
	}

	bidID, err := kernel.UUIDFromBytes(bidId[:])
	if err != nil {
		return zero, err
	}

	shipperID, err := kernel.UUIDFromBytes(action.ShipperId[:])
	if err != nil {
		return zero, err
	}

	return construct(jobID, bidID, shipperID)
}

// mapCommandError translates application errors to HTTP statuses.
func mapCommandError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError

	switch {
	case errors.Is(err, commands.ErrTimeout):
		return ctx.JSON(http.StatusGatewayTimeout, servers.Error{
			Code:    http.StatusGatewayTimeout,
			Message: "Operation timed out",
		})
	case errors.Is(err, commands.ErrNotJobShipper):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Only the job's shipper may perform this action",
		})
	case errors.Is(err, commands.ErrDuplicateBid):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Carrier already has a bid on this job",
		})
	case errors.Is(err, commands.ErrBidNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Bid not found on this job",
		})
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Object not found",
		})
	case errors.Is(err, job.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
