package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	customerRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/customer"
	"github.com/mesaviva/MV-ReservationService/internal/service/customers/models"
	"github.com/mesaviva/MV-ReservationService/pkg/ptr"
)

type fakeCustomerRepo struct {
	customers []*domain.Customer

	created *domain.Customer
	updated *domain.Customer
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	out := *c
	out.ID = int64(len(f.customers) + 1)
	f.created = &out
	f.customers = append(f.customers, &out)
	return &out, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.Email != nil && *c.Email == email {
			return c, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) FindByPhone(_ context.Context, phone string) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.Phone != nil && *c.Phone == phone {
			return c, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	out := *c
	f.updated = &out
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestResolve_CreatesNewCustomer(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewService(repo, nopLogger{})

	c, err := svc.Resolve(context.Background(), &models.ResolveCustomerRequest{
		FullName: "Ana Torres",
		Email:    ptr.Ptr("ana@example.com"),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Ana Torres", c.FullName)
	assert.Equal(t, c.ID, repo.created.ID)
}

func TestResolve_FindsByEmailFirst(t *testing.T) {
	existing := &domain.Customer{
		ID:       1,
		FullName: "Ana Torres",
		Email:    ptr.Ptr("ana@example.com"),
		Phone:    ptr.Ptr("+34600000001"),
	}
	repo := &fakeCustomerRepo{customers: []*domain.Customer{existing}}
	svc := NewService(repo, nopLogger{})

	c, err := svc.Resolve(context.Background(), &models.ResolveCustomerRequest{
		FullName: "Ana Torres",
		Email:    ptr.Ptr("ana@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Nil(t, repo.created)
}

func TestResolve_FallsBackToPhone(t *testing.T) {
	existing := &domain.Customer{
		ID:       1,
		FullName: "Ana Torres",
		Phone:    ptr.Ptr("+34600000001"),
	}
	repo := &fakeCustomerRepo{customers: []*domain.Customer{existing}}
	svc := NewService(repo, nopLogger{})

	c, err := svc.Resolve(context.Background(), &models.ResolveCustomerRequest{
		FullName: "Ana Torres",
		Phone:    ptr.Ptr("+34600000001"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Nil(t, repo.created)
}

func TestResolve_RefreshesStaleContacts(t *testing.T) {
	existing := &domain.Customer{
		ID:       1,
		FullName: "Ana Torres",
		Email:    ptr.Ptr("ana@example.com"),
		Phone:    ptr.Ptr("+34600000001"),
	}
	repo := &fakeCustomerRepo{customers: []*domain.Customer{existing}}
	svc := NewService(repo, nopLogger{})

	c, err := svc.Resolve(context.Background(), &models.ResolveCustomerRequest{
		FullName: "Ana Torres García",
		Email:    ptr.Ptr("ana@example.com"),
		Phone:    ptr.Ptr("+34600000099"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Torres García", c.FullName)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "+34600000099", *repo.updated.Phone)
}

func TestResolve_NoChangeSkipsUpdate(t *testing.T) {
	existing := &domain.Customer{
		ID:       1,
		FullName: "Ana Torres",
		Email:    ptr.Ptr("ana@example.com"),
	}
	repo := &fakeCustomerRepo{customers: []*domain.Customer{existing}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Resolve(context.Background(), &models.ResolveCustomerRequest{
		FullName: "Ana Torres",
		Email:    ptr.Ptr("ana@example.com"),
	})

	require.NoError(t, err)
	assert.Nil(t, repo.updated)
}

func TestResolve_MissingContact(t *testing.T) {
	svc := NewService(&fakeCustomerRepo{}, nopLogger{})

	_, err := svc.Resolve(context.Background(), &models.ResolveCustomerRequest{
		FullName: "Sin Contacto",
	})

	assert.ErrorIs(t, err, ErrMissingContact)
}

func TestGetByID(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []*domain.Customer{
		{ID: 1, FullName: "Ana Torres"},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", resp.FullName)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestUpdate_RequiresFullName(t *testing.T) {
	svc := NewService(&fakeCustomerRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateCustomerRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
