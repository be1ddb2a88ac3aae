package hours

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/hours/models"
	"github.com/mesaviva/MV-ReservationService/pkg/ptr"
)

type fakeHoursRepo struct {
	intervals []*domain.BusinessHourInterval

	created *domain.BusinessHourInterval
	updated *domain.BusinessHourInterval
	deleted int64
}

func (f *fakeHoursRepo) Create(_ context.Context, h *domain.BusinessHourInterval) (*domain.BusinessHourInterval, error) {
	out := *h
	out.ID = int64(len(f.intervals) + 1)
	f.created = &out
	f.intervals = append(f.intervals, &out)
	return &out, nil
}

func (f *fakeHoursRepo) ListAll(_ context.Context) ([]*domain.BusinessHourInterval, error) {
	return f.intervals, nil
}

func (f *fakeHoursRepo) ListActiveByDay(_ context.Context, dayOfWeek int) ([]*domain.BusinessHourInterval, error) {
	var out []*domain.BusinessHourInterval
	for _, h := range f.intervals {
		if h.Active && h.DayOfWeek == dayOfWeek {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHoursRepo) Update(_ context.Context, h *domain.BusinessHourInterval) error {
	out := *h
	f.updated = &out
	return nil
}

func (f *fakeHoursRepo) Delete(_ context.Context, id int64) error {
	f.deleted = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fridaySchedule() *fakeHoursRepo {
	return &fakeHoursRepo{intervals: []*domain.BusinessHourInterval{
		{ID: 1, DayOfWeek: 5, OpenTime: "12:00", CloseTime: "15:00", Active: true},
		{ID: 2, DayOfWeek: 5, OpenTime: "18:00", CloseTime: "22:00", Active: true},
	}}
}

func TestCreate_Success(t *testing.T) {
	repo := fridaySchedule()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateIntervalRequest{
		DayOfWeek: 6,
		OpenTime:  "13:00",
		CloseTime: "23:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Saturday", resp.DayName)
	assert.Equal(t, "13:00", resp.OpenTime)
	assert.True(t, resp.Active)
}

func TestCreate_InvalidDay(t *testing.T) {
	svc := NewService(&fakeHoursRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateIntervalRequest{
		DayOfWeek: 7, OpenTime: "12:00", CloseTime: "15:00",
	})

	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestCreate_InvalidRange(t *testing.T) {
	svc := NewService(&fakeHoursRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateIntervalRequest{
		DayOfWeek: 5, OpenTime: "15:00", CloseTime: "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.Create(context.Background(), &models.CreateIntervalRequest{
		DayOfWeek: 5, OpenTime: "12:00", CloseTime: "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCreate_OverlapRejected(t *testing.T) {
	svc := NewService(fridaySchedule(), nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateIntervalRequest{
		DayOfWeek: 5, OpenTime: "14:00", CloseTime: "19:00",
	})
	assert.ErrorIs(t, err, ErrIntervalOverlap)

	// Интервалы встык допустимы
	_, err = svc.Create(context.Background(), &models.CreateIntervalRequest{
		DayOfWeek: 5, OpenTime: "15:00", CloseTime: "18:00",
	})
	assert.NoError(t, err)
}

func TestCreate_OverlapOtherDayAllowed(t *testing.T) {
	svc := NewService(fridaySchedule(), nopLogger{})

	// Те же часы, но суббота
	_, err := svc.Create(context.Background(), &models.CreateIntervalRequest{
		DayOfWeek: 6, OpenTime: "12:00", CloseTime: "15:00",
	})
	assert.NoError(t, err)
}

func TestUpdate_ExcludesSelfFromOverlap(t *testing.T) {
	repo := fridaySchedule()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{
		CloseTime: ptr.Ptr("16:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "16:00", resp.CloseTime)
	require.NotNil(t, repo.updated)
}

func TestUpdate_OverlapRejected(t *testing.T) {
	svc := NewService(fridaySchedule(), nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{
		CloseTime: ptr.Ptr("19:00"),
	})

	assert.ErrorIs(t, err, ErrIntervalOverlap)
}

func TestUpdate_DeactivateSkipsOverlapCheck(t *testing.T) {
	repo := fridaySchedule()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{
		Active: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(&fakeHoursRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateIntervalRequest{})

	assert.ErrorIs(t, err, ErrIntervalNotFound)
}

func TestDelete(t *testing.T) {
	repo := fridaySchedule()
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, int64(2), repo.deleted)
}

func TestList(t *testing.T) {
	svc := NewService(fridaySchedule(), nopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Intervals, 2)
	assert.Equal(t, "Friday", resp.Intervals[0].DayName)
	assert.Equal(t, "12:00-15:00", resp.Intervals[0].OpenTime+"-"+resp.Intervals[0].CloseTime)
}
