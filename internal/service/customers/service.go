package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	customerRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/customer"
	"github.com/mesaviva/MV-ReservationService/internal/service/customers/models"
)

// Service сервис карточек клиентов
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Resolve находит карточку клиента по контактам или создает новую.
// Поиск идет сначала по email, затем по телефону; пустые контакты
// никогда не матчатся. У найденной карточки непустые поля запроса
// перезаписывают устаревшие значения.
func (s *Service) Resolve(ctx context.Context, req *models.ResolveCustomerRequest) (*domain.Customer, error) {
	email := deref(req.Email)
	phone := deref(req.Phone)

	if email == "" && phone == "" {
		return nil, ErrMissingContact
	}

	existing, err := s.findByContacts(ctx, email, phone)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		created, err := s.customerRepo.Create(ctx, &domain.Customer{
			FullName: req.FullName,
			Phone:    req.Phone,
			Email:    req.Email,
			Notes:    req.Notes,
		})
		if err != nil {
			s.logger.Error("Resolve: failed to create customer: %v", err)
			return nil, fmt.Errorf("%w: Resolve - create customer: %v", ErrInternal, err)
		}
		s.logger.Info("Resolve: created customer id=%d", created.ID)
		return created, nil
	}

	if s.refreshContacts(existing, req) {
		if err := s.customerRepo.Update(ctx, existing); err != nil {
			s.logger.Error("Resolve: failed to refresh customer id=%d: %v", existing.ID, err)
			return nil, fmt.Errorf("%w: Resolve - update customer: %v", ErrInternal, err)
		}
		s.logger.Info("Resolve: refreshed contacts for customer id=%d", existing.ID)
	}

	return existing, nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomer(c), nil
}

// List получает всех клиентов
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomerList(customers), nil
}

// Update обновляет карточку клиента
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}

	c := &domain.Customer{
		ID:       id,
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Notes:    req.Notes,
	}

	if err := s.customerRepo.Update(ctx, c); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Update: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated customer id=%d", id)
	return models.FromDomainCustomer(c), nil
}

// Вспомогательные методы

func (s *Service) findByContacts(ctx context.Context, email, phone string) (*domain.Customer, error) {
	if email != "" {
		c, err := s.customerRepo.FindByEmail(ctx, email)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Error("Resolve: failed to find customer by email: %v", err)
			return nil, fmt.Errorf("%w: Resolve - find by email: %v", ErrInternal, err)
		}
	}

	if phone != "" {
		c, err := s.customerRepo.FindByPhone(ctx, phone)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Error("Resolve: failed to find customer by phone: %v", err)
			return nil, fmt.Errorf("%w: Resolve - find by phone: %v", ErrInternal, err)
		}
	}

	return nil, nil
}

// refreshContacts переносит непустые поля запроса в карточку,
// возвращает true, если что-то изменилось
func (s *Service) refreshContacts(c *domain.Customer, req *models.ResolveCustomerRequest) bool {
	changed := false

	if req.FullName != "" && req.FullName != c.FullName {
		c.FullName = req.FullName
		changed = true
	}
	if deref(req.Phone) != "" && deref(req.Phone) != deref(c.Phone) {
		c.Phone = req.Phone
		changed = true
	}
	if deref(req.Email) != "" && deref(req.Email) != deref(c.Email) {
		c.Email = req.Email
		changed = true
	}

	return changed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
