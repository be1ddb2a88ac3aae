package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	customermodels "github.com/mesaviva/MV-ReservationService/internal/service/customers/models"
	"github.com/mesaviva/MV-ReservationService/pkg/ptr"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	created *domain.Reservation
	err     error
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *r
	out.ID = 42
	f.created = &out
	return &out, nil
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

	table     *domain.Table
	assignErr error

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
	return f.table, f.assignErr
}

type fakeResolver struct {
	customer *domain.Customer
	err      error

	gotRequest *customermodels.ResolveCustomerRequest
}

func (f *fakeResolver) Resolve(_ context.Context, req *customermodels.ResolveCustomerRequest) (*domain.Customer, error) {
	f.gotRequest = req
	return f.customer, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

func defaultPlan() *admission.Plan {
	return &admission.Plan{StartTime: "19:00", EndTime: "20:30", DurationMinutes: 90}
}

func validRequest() *Request {
	return &Request{
		Date:      testDate,
		StartTime: "19:00",
		PartySize: 2,
		Channel:   string(domain.ChannelWeb),
	}
}

func TestExecute_Success_AutoAssign(t *testing.T) {
	repo := &fakeReservationRepo{}
	adm := &fakeAdmission{
		plan:  defaultPlan(),
		table: &domain.Table{ID: 5, Name: "T2", Capacity: 4},
	}
	uc := NewUseCase(repo, &fakePolicyRepo{policy: domain.DefaultPolicy()}, adm, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	require.NotNil(t, resp.TableID)
	assert.Equal(t, int64(5), *resp.TableID)
	assert.Equal(t, "19:00", resp.StartTime)
	assert.Equal(t, "20:30", resp.EndTime)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_ResolvesGuestCustomer(t *testing.T) {
	repo := &fakeReservationRepo{}
	adm := &fakeAdmission{plan: defaultPlan(), table: &domain.Table{ID: 5}}
	resolver := &fakeResolver{customer: &domain.Customer{ID: 7, FullName: "Ana Torres"}}
	uc := NewUseCase(repo, &fakePolicyRepo{policy: domain.DefaultPolicy()}, adm, resolver, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.GuestName = ptr.Ptr("Ana Torres")
	req.GuestPhone = ptr.Ptr("+34600000001")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resolver.gotRequest)
	assert.Equal(t, "Ana Torres", resolver.gotRequest.FullName)
	require.NotNil(t, resp.CustomerID)
	assert.Equal(t, int64(7), *resp.CustomerID)

	// Разрешенный клиент попадает в проверку дубликатов
	require.NotNil(t, adm.gotRequest.CustomerID)
	assert.Equal(t, int64(7), *adm.gotRequest.CustomerID)
}

func TestExecute_NoContactsSkipsResolve(t *testing.T) {
	repo := &fakeReservationRepo{}
	adm := &fakeAdmission{plan: defaultPlan(), table: &domain.Table{ID: 5}}
	resolver := &fakeResolver{}
	uc := NewUseCase(repo, &fakePolicyRepo{policy: domain.DefaultPolicy()}, adm, resolver, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.GuestName = ptr.Ptr("Walk In")

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resolver.gotRequest)
	assert.Nil(t, repo.created.CustomerID)
}

func TestExecute_OverflowAllowed(t *testing.T) {
	repo := &fakeReservationRepo{}
	adm := &fakeAdmission{plan: defaultPlan(), table: nil}
	policy := domain.DefaultPolicy()
	policy.AllowUnassignedOverflow = true
	uc := NewUseCase(repo, &fakePolicyRepo{policy: policy}, adm, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.TableID)
}

func TestExecute_OverflowDisabled(t *testing.T) {
	adm := &fakeAdmission{plan: defaultPlan(), table: nil}
	policy := domain.DefaultPolicy()
	policy.AllowUnassignedOverflow = false
	uc := NewUseCase(&fakeReservationRepo{}, &fakePolicyRepo{policy: policy}, adm, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, admission.ErrNoTableAvailable)
}

func TestExecute_PinnedTableSkipsAutoAssign(t *testing.T) {
	repo := &fakeReservationRepo{}
	adm := &fakeAdmission{plan: defaultPlan()}
	uc := NewUseCase(repo, &fakePolicyRepo{policy: domain.DefaultPolicy()}, adm, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.TableID = ptr.Ptr(int64(3))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.TableID)
	assert.Equal(t, int64(3), *resp.TableID)
}

func TestExecute_AdmissionErrorsPassThrough(t *testing.T) {
	adm := &fakeAdmission{planErr: admission.ErrTableOverlap}
	uc := NewUseCase(&fakeReservationRepo{}, &fakePolicyRepo{policy: domain.DefaultPolicy()}, adm, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, admission.ErrTableOverlap)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakePolicyRepo{policy: domain.DefaultPolicy()}, &fakeAdmission{plan: defaultPlan()}, &fakeResolver{}, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	req := validRequest()
	req.Date = time.Time{}
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = ""
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.PartySize = 0
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Channel = "telegram"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ResolveFailure(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("db down")}
	uc := NewUseCase(&fakeReservationRepo{}, &fakePolicyRepo{policy: domain.DefaultPolicy()}, &fakeAdmission{plan: defaultPlan()}, resolver, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.GuestEmail = ptr.Ptr("ana@example.com")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInternal)
}
