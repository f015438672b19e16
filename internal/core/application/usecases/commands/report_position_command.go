package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrReportPositionCommandIsNotConstructed = errors.New(
	"ReportPositionCommand must be created via NewReportPositionCommand constructor",
)

// ReportPositionCommand carries a single position report from a carrier's
// device. Reports arrive at high frequency; only the latest one per carrier
// is kept.
type ReportPositionCommand struct { //nolint:recvcheck //using for validation
	carrierID  kernel.UUID
	point      kernel.GeoPoint
	headingDeg float64
	speedKmh   float64
	online     bool
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewReportPositionCommand creates a command to record a position report.
// Coordinate validation happens when the GeoPoint is built; this constructor
// validates the identifier, heading, speed and timestamp. A report with
// online set to false is the carrier signing off: the coordinates are still
// stored, and the carrier stops being considered for proximity evaluation.
func NewReportPositionCommand(
	carrierID kernel.UUID,
	point kernel.GeoPoint,
	headingDeg float64,
	speedKmh float64,
	online bool,
	recordedAt time.Time,
) (ReportPositionCommand, error) {
	command := ReportPositionCommand{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(carrierID),
		command.setPoint(point),
		command.setHeading(headingDeg),
		command.setSpeed(speedKmh),
		command.setRecordedAt(recordedAt),
	); err != nil {
		return ReportPositionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportPositionCommand) Validate() error {
	return c.guard.Validate(ErrReportPositionCommandIsNotConstructed)
}

// CarrierID returns the identifier of the reporting carrier.
func (c ReportPositionCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Point returns the reported coordinates.
func (c ReportPositionCommand) Point() kernel.GeoPoint {
	return c.point
}

// HeadingDeg returns the reported heading in degrees.
func (c ReportPositionCommand) HeadingDeg() float64 {
	return c.headingDeg
}

// SpeedKmh returns the reported speed in kilometers per hour.
func (c ReportPositionCommand) SpeedKmh() float64 {
	return c.speedKmh
}

// Online reports whether the carrier considers itself available.
func (c ReportPositionCommand) Online() bool {
	return c.online
}

// RecordedAt returns the device timestamp of the report.
func (c ReportPositionCommand) RecordedAt() time.Time {
	return c.recordedAt
}

func (c *ReportPositionCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *ReportPositionCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *ReportPositionCommand) setHeading(headingDeg float64) error {
	if headingDeg < 0 || headingDeg > 360 {
		return errs.NewValueIsOutOfRangeError("headingDeg", headingDeg, 0, 360)
	}

	c.headingDeg = headingDeg
	return nil
}

func (c *ReportPositionCommand) setSpeed(speedKmh float64) error {
	if speedKmh < 0 {
		return errs.NewValueIsInvalidError("speedKmh")
	}

	c.speedKmh = speedKmh
	return nil
}

func (c *ReportPositionCommand) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}

	c.recordedAt = recordedAt
	return nil
}
