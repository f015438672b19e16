package position

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrPositionIsNotConstructed is returned when a CarrierPosition instance was
// not created through NewCarrierPosition or RestoreCarrierPosition.
var ErrPositionIsNotConstructed = errors.New(
	"CarrierPosition must be created via NewCarrierPosition or RestoreCarrierPosition constructor")

// CarrierPosition is the latest known location of a carrier. The aggregate is
// keyed by carrier identifier; every new report replaces the previous one, so
// reads never see movement history.
type CarrierPosition struct {
	carrierID  kernel.UUID
	point      kernel.GeoPoint
	headingDeg float64
	speedKmh   float64
	online     bool
	recordedAt time.Time

	isConstructed bool
}

// NewCarrierPosition creates the first position record for a carrier.
// The carrier is considered online from its first report.
func NewCarrierPosition(
	carrierID kernel.UUID,
	point kernel.GeoPoint,
	headingDeg float64,
	speedKmh float64,
	recordedAt time.Time,
) (*CarrierPosition, error) {
	p := &CarrierPosition{
		online:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setCarrierID(carrierID),
		p.setPoint(point),
		p.setHeading(headingDeg),
		p.setSpeed(speedKmh),
		p.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreCarrierPosition reconstructs a position record from persistence.
func RestoreCarrierPosition(
	carrierID kernel.UUID,
	point kernel.GeoPoint,
	headingDeg float64,
	speedKmh float64,
	online bool,
	recordedAt time.Time,
) (*CarrierPosition, error) {
	p, err := NewCarrierPosition(carrierID, point, headingDeg, speedKmh, recordedAt)
	if err != nil {
		return nil, err
	}

	p.online = online
	return p, nil
}

// Validate ensures the CarrierPosition was created through a constructor.
func (p *CarrierPosition) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPositionIsNotConstructed
	}
	return nil
}

// CarrierID returns the identifier of the carrier this position belongs to.
func (p *CarrierPosition) CarrierID() kernel.UUID {
	return p.carrierID
}

// Point returns the recorded coordinates.
func (p *CarrierPosition) Point() kernel.GeoPoint {
	return p.point
}

// HeadingDeg returns the reported heading in degrees, 0 to 360.
func (p *CarrierPosition) HeadingDeg() float64 {
	return p.headingDeg
}

// SpeedKmh returns the reported speed in kilometers per hour.
func (p *CarrierPosition) SpeedKmh() float64 {
	return p.speedKmh
}

// IsOnline reports whether the carrier is currently considered online.
func (p *CarrierPosition) IsOnline() bool {
	return p.online
}

// RecordedAt returns the timestamp of the latest report.
func (p *CarrierPosition) RecordedAt() time.Time {
	return p.recordedAt
}

// MoveTo replaces the recorded position with the given report and brings the
// carrier back online. The write is last-write-wins: a report that arrives
// out of order still replaces the record, device timestamp included.
func (p *CarrierPosition) MoveTo(
	point kernel.GeoPoint,
	headingDeg float64,
	speedKmh float64,
	recordedAt time.Time,
) error {
	if err := errors.Join(
		p.setPoint(point),
		p.setHeading(headingDeg),
		p.setSpeed(speedKmh),
	); err != nil {
		return err
	}

	p.recordedAt = recordedAt
	p.online = true
	return nil
}

// MarkOffline flags the carrier as offline. The last coordinates stay
// available for reads. Returns true when the flag actually changed.
func (p *CarrierPosition) MarkOffline() bool {
	if !p.online {
		return false
	}

	p.online = false
	return true
}

func (p *CarrierPosition) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.carrierID = id
	return nil
}

func (p *CarrierPosition) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	p.point = point
	return nil
}

func (p *CarrierPosition) setHeading(headingDeg float64) error {
	if headingDeg < 0 || headingDeg > 360 {
		return errs.NewValueIsOutOfRangeError("headingDeg", headingDeg, 0, 360)
	}
	p.headingDeg = headingDeg
	return nil
}

func (p *CarrierPosition) setSpeed(speedKmh float64) error {
	if speedKmh < 0 {
		return errs.NewValueIsInvalidError("speedKmh")
	}
	p.speedKmh = speedKmh
	return nil
}

func (p *CarrierPosition) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}
	p.recordedAt = recordedAt
	return nil
}
