package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a shipper's request to post a new freight job.
// Encapsulates the route, the requested haul date and the load details.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateJobCommand(jobID, shipperID, pickup, delivery, date, 1200, "flatbed")
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID         kernel.UUID
	shipperID     kernel.UUID
	pickup        job.Waypoint
	delivery      job.Waypoint
	requestedDate time.Time
	weightKg      float64
	equipmentType string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to post a new job.
// Validates identifiers, both waypoints, the requested date and the weight.
func NewCreateJobCommand(
	jobID kernel.UUID,
	shipperID kernel.UUID,
	pickup job.Waypoint,
	delivery job.Waypoint,
	requestedDate time.Time,
	weightKg float64,
	equipmentType string,
) (CreateJobCommand, error) {
	command := CreateJobCommand{
		equipmentType: equipmentType,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setShipperID(shipperID),
		command.setPickup(pickup),
		command.setDelivery(delivery),
		command.setRequestedDate(requestedDate),
		command.setWeight(weightKg),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the identifier assigned to the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ShipperID returns the identifier of the posting shipper.
func (c CreateJobCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// Pickup returns the pickup waypoint.
func (c CreateJobCommand) Pickup() job.Waypoint {
	return c.pickup
}

// Delivery returns the delivery waypoint.
func (c CreateJobCommand) Delivery() job.Waypoint {
	return c.delivery
}

// RequestedDate returns the requested haul date.
func (c CreateJobCommand) RequestedDate() time.Time {
	return c.requestedDate
}

// WeightKg returns the load weight in kilograms.
func (c CreateJobCommand) WeightKg() float64 {
	return c.weightKg
}

// EquipmentType returns the required equipment type, may be empty.
func (c CreateJobCommand) EquipmentType() string {
	return c.equipmentType
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}

func (c *CreateJobCommand) setPickup(pickup job.Waypoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateJobCommand) setDelivery(delivery job.Waypoint) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}

func (c *CreateJobCommand) setRequestedDate(requestedDate time.Time) error {
	if requestedDate.IsZero() {
		return errs.NewValueIsRequiredError("requestedDate")
	}

	c.requestedDate = requestedDate
	return nil
}

func (c *CreateJobCommand) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}

	c.weightKg = weightKg
	return nil
}
