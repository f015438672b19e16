package commands_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/events"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/position"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllTrackedByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockBidRepository struct{ mock.Mock }

func (m *MockBidRepository) Add(ctx context.Context, aggregate *bid.Bid) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBidRepository) Update(ctx context.Context, aggregate *bid.Bid) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bid.Bid), args.Error(1)
}

func (m *MockBidRepository) GetAllByJob(ctx context.Context, jobID kernel.UUID) ([]*bid.Bid, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bid.Bid), args.Error(1)
}

func (m *MockBidRepository) GetAllPendingByJob(ctx context.Context, jobID kernel.UUID) ([]*bid.Bid, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bid.Bid), args.Error(1)
}

type MockPositionRepository struct{ mock.Mock }

func (m *MockPositionRepository) Upsert(ctx context.Context, aggregate *position.CarrierPosition) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPositionRepository) Get(ctx context.Context, carrierID kernel.UUID) (*position.CarrierPosition, error) {
	args := m.Called(ctx, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*position.CarrierPosition), args.Error(1)
}

func (m *MockPositionRepository) GetAllOnline(ctx context.Context) ([]*position.CarrierPosition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*position.CarrierPosition), args.Error(1)
}

func (m *MockPositionRepository) GetAllStale(ctx context.Context, cutoff time.Time) ([]*position.CarrierPosition, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*position.CarrierPosition), args.Error(1)
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

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) BidRepository() ports.BidRepository {
	args := m.Called()
	return args.Get(0).(ports.BidRepository)
}

func (m *MockUoW) PositionRepository() ports.PositionRepository {
	args := m.Called()
	return args.Get(0).(ports.PositionRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockPositionUoWFactory struct{ mock.Mock }

func (m *MockPositionUoWFactory) Create() commands.PositionUoW {
	args := m.Called()
	return args.Get(0).(commands.PositionUoW)
}

// MockEventBus records published events. Publish is intentionally lenient:
// handlers treat event delivery as fire and forget, so tests assert on the
// recorded envelopes instead of strict expectations.
type MockEventBus struct {
	mock.Mock
	published []ports.Envelope
}

func (m *MockEventBus) Publish(ctx context.Context, topic events.Topic, payload any) error {
	m.published = append(m.published, ports.Envelope{Topic: topic, Payload: payload})
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(ctx context.Context, topics ...events.Topic) (<-chan ports.Envelope, error) {
	args := m.Called(ctx, topics)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan ports.Envelope), args.Error(1)
}

func newLenientEventBus() *MockEventBus {
	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return bus
}

func testWaypoint(t *testing.T, lat, lng float64, address string) job.Waypoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)

	wp, err := job.NewWaypoint(point, address)
	require.NoError(t, err)

	return wp
}

func testOpenJob(t *testing.T, shipperID kernel.UUID) *job.Job {
	t.Helper()

	j, err := job.NewJob(
		kernel.NewUUID(),
		shipperID,
		testWaypoint(t, 24.7136, 46.6753, "Riyadh warehouse 12"),
		testWaypoint(t, 21.4858, 39.1925, "Jeddah port gate 3"),
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		1200,
		"flatbed",
	)
	require.NoError(t, err)

	return j
}

func testPendingBid(t *testing.T, jobID, carrierID kernel.UUID) *bid.Bid {
	t.Helper()

	b, err := bid.NewBid(kernel.NewUUID(), jobID, carrierID, 950, "")
	require.NoError(t, err)

	return b
}
