package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	tableRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/table"
	"github.com/mesaviva/MV-ReservationService/internal/service/tables/models"
)

// Service сервис управления столами зала
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// Create заводит новый стол, по умолчанию активный
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: table name is required", ErrInvalidInput)
	}
	if req.Capacity < domain.MinTableCapacity {
		return nil, fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinTableCapacity)
	}

	t, err := s.tableRepo.Create(ctx, &domain.Table{
		Name:     req.Name,
		Capacity: req.Capacity,
		Zone:     req.Zone,
		Status:   domain.TableActive,
	})
	if err != nil {
		s.logger.Error("Create: repository error for table %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created table id=%d name=%q", t.ID, t.Name)
	return models.FromDomainTable(t), nil
}

// GetByID получает стол по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TableResponse, error) {
	t, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("GetByID: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetByID: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTable(t), nil
}

// List получает все столы, включая неактивные
func (s *Service) List(ctx context.Context) (*models.TableListResponse, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTableList(tables), nil
}

// Update частично обновляет стол. Деактивация вместо удаления:
// стол с историей броней переводится в inactive и перестает
// участвовать в подборе.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	t, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Update: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: table name cannot be empty", ErrInvalidInput)
		}
		t.Name = *req.Name
	}
	if req.Capacity != nil {
		if *req.Capacity < domain.MinTableCapacity {
			return nil, fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinTableCapacity)
		}
		t.Capacity = *req.Capacity
	}
	if req.Zone != nil {
		t.Zone = *req.Zone
	}
	if req.Status != nil {
		status := domain.TableStatus(*req.Status)
		if status != domain.TableActive && status != domain.TableInactive {
			return nil, fmt.Errorf("%w: unknown table status %q", ErrInvalidInput, *req.Status)
		}
		t.Status = status
	}

	if err := s.tableRepo.Update(ctx, t); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated table id=%d", id)
	return models.FromDomainTable(t), nil
}
