package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	reservationRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/reservation"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	"github.com/mesaviva/MV-ReservationService/pkg/ptr"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
	updated     *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	r := *f.reservation
	return &r, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, r *domain.Reservation) error {
	out := *r
	f.updated = &out
	return nil
}

type fakePolicyRepo struct {
	policy domain.RestaurantPolicy
}

func (f *fakePolicyRepo) Get(_ context.Context) (*domain.RestaurantPolicy, error) {
	p := f.policy
	return &p, nil
}

type fakeAdmission struct {
	plan    *admission.Plan
	planErr error

	table *domain.Table

	gotRequest admission.Request
}

func (f *fakeAdmission) ValidateAndPlan(_ context.Context, _ domain.RestaurantPolicy, req admission.Request) (*admission.Plan, error) {
	f.gotRequest = req
	if f.planErr != nil {
		return nil, f.planErr
	}
	return f.plan, nil
}

func (f *fakeAdmission) AutoAssign(_ context.Context, _ admission.Request, _, _ types.TimeString) (*domain.Table, error) {
	return f.table, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
)

func storedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        10,
		Date:      testDate,
		StartTime: "19:00",
		EndTime:   "20:30",
		PartySize: 2,
		TableID:   ptr.Ptr(int64(2)),
		Status:    domain.StatusConfirmed,
		Channel:   domain.ChannelWeb,
	}
}

func newTestUseCase(repo *fakeReservationRepo, adm *fakeAdmission) *UseCase {
	uc := NewUseCase(repo, &fakePolicyRepo{policy: domain.DefaultPolicy()}, adm, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_MoveTime(t *testing.T) {
	repo := &fakeReservationRepo{reservation: storedReservation()}
	adm := &fakeAdmission{plan: &admission.Plan{StartTime: "20:00", EndTime: "21:30", DurationMinutes: 90}}
	uc := newTestUseCase(repo, adm)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 10,
		StartTime:     ptr.Ptr("20:00"),
		Role:          domain.RoleStaff,
	})

	require.NoError(t, err)
	assert.Equal(t, "20:00", resp.StartTime)
	assert.Equal(t, "21:30", resp.EndTime)

	// Проверка допуска исключает саму бронь
	require.NotNil(t, adm.gotRequest.ExcludeReservationID)
	assert.Equal(t, int64(10), *adm.gotRequest.ExcludeReservationID)

	// Не тронутые поля сохраняются
	assert.Equal(t, 2, resp.PartySize)
	require.NotNil(t, resp.TableID)
	assert.Equal(t, int64(2), *resp.TableID)
}

func TestExecute_NotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAdmission{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 99, Role: domain.RoleStaff})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_TerminalStatusNotEditable(t *testing.T) {
	stored := storedReservation()
	stored.Status = domain.StatusCancelled
	uc := newTestUseCase(&fakeReservationRepo{reservation: stored}, &fakeAdmission{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 10,
		PartySize:     ptr.Ptr(4),
		Role:          domain.RoleStaff,
	})

	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestExecute_PastDateEdit(t *testing.T) {
	stored := storedReservation()
	stored.Date = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	adm := &fakeAdmission{plan: &admission.Plan{StartTime: "19:00", EndTime: "20:30", DurationMinutes: 90}}

	// Персонал не меняет брони на прошедшие даты
	uc := newTestUseCase(&fakeReservationRepo{reservation: stored}, adm)
	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 10,
		Notes:         ptr.Ptr("поправка"),
		Role:          domain.RoleStaff,
	})
	assert.ErrorIs(t, err, ErrPastDateEdit)

	// Администратору можно
	stored2 := storedReservation()
	stored2.Date = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	uc = newTestUseCase(&fakeReservationRepo{reservation: stored2}, adm)
	_, err = uc.Execute(context.Background(), &Request{
		ReservationID: 10,
		Notes:         ptr.Ptr("поправка"),
		Role:          domain.RoleAdmin,
	})
	assert.NoError(t, err)
}

func TestExecute_ClearTableAutoAssigns(t *testing.T) {
	repo := &fakeReservationRepo{reservation: storedReservation()}
	adm := &fakeAdmission{
		plan:  &admission.Plan{StartTime: "19:00", EndTime: "20:30", DurationMinutes: 90},
		table: &domain.Table{ID: 3, Name: "T3", Capacity: 6},
	}
	uc := newTestUseCase(repo, adm)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 10,
		ClearTable:    true,
		Role:          domain.RoleStaff,
	})

	require.NoError(t, err)
	// Снятое закрепление уходит в допуск без стола
	assert.Nil(t, adm.gotRequest.TableID)
	// Автоназначение подобрало новый стол
	require.NotNil(t, resp.TableID)
	assert.Equal(t, int64(3), *resp.TableID)
}

func TestExecute_OverflowDisabledOnClear(t *testing.T) {
	stored := storedReservation()
	adm := &fakeAdmission{
		plan:  &admission.Plan{StartTime: "19:00", EndTime: "20:30", DurationMinutes: 90},
		table: nil,
	}
	policy := domain.DefaultPolicy()
	policy.AllowUnassignedOverflow = false
	uc := NewUseCase(&fakeReservationRepo{reservation: stored}, &fakePolicyRepo{policy: policy}, adm, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 10,
		ClearTable:    true,
		Role:          domain.RoleStaff,
	})

	assert.ErrorIs(t, err, admission.ErrNoTableAvailable)
}

func TestExecute_PreservesCustomDuration(t *testing.T) {
	// Бронь на 120 минут вместо стандартных 90
	stored := storedReservation()
	stored.StartTime = "19:00"
	stored.EndTime = "21:00"
	adm := &fakeAdmission{plan: &admission.Plan{StartTime: "20:00", EndTime: "22:00", DurationMinutes: 120}}
	uc := newTestUseCase(&fakeReservationRepo{reservation: stored}, adm)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 10,
		StartTime:     ptr.Ptr("20:00"),
		Role:          domain.RoleStaff,
	})

	require.NoError(t, err)
	require.NotNil(t, adm.gotRequest.DurationMinutes)
	assert.Equal(t, 120, *adm.gotRequest.DurationMinutes)
}

func TestExecute_AdmissionErrorsPassThrough(t *testing.T) {
	adm := &fakeAdmission{planErr: admission.ErrDuplicateReservation}
	uc := newTestUseCase(&fakeReservationRepo{reservation: storedReservation()}, adm)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 10,
		PartySize:     ptr.Ptr(3),
		Role:          domain.RoleStaff,
	})

	assert.ErrorIs(t, err, admission.ErrDuplicateReservation)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{reservation: storedReservation()}, &fakeAdmission{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{ReservationID: 0, Role: domain.RoleStaff})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{
		ReservationID: 10,
		TableID:       ptr.Ptr(int64(2)),
		ClearTable:    true,
		Role:          domain.RoleStaff,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{
		ReservationID: 10,
		PartySize:     ptr.Ptr(0),
		Role:          domain.RoleStaff,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
