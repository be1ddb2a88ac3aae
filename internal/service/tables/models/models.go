package models

import (
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

// Request модели

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Zone     string `json:"zone,omitempty"`
}

// UpdateTableRequest запрос на обновление стола.
// Nil-поля не меняются.
type UpdateTableRequest struct {
	Name     *string `json:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Zone     *string `json:"zone,omitempty"`
	Status   *string `json:"status,omitempty"` // "active" | "inactive"
}

// Response модели

// TableResponse ответ с данными стола
type TableResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Zone      string    `json:"zone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableListResponse ответ со списком столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// Методы конвертации

// FromDomainTable конвертирует domain модель в DTO
func FromDomainTable(t *domain.Table) *TableResponse {
	if t == nil {
		return nil
	}
	return &TableResponse{
		ID:        t.ID,
		Name:      t.Name,
		Capacity:  t.Capacity,
		Zone:      t.Zone,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

// FromDomainTableList конвертирует список domain моделей в DTO
func FromDomainTableList(tables []*domain.Table) *TableListResponse {
	if tables == nil {
		return &TableListResponse{Tables: []TableResponse{}}
	}

	resp := &TableListResponse{
		Tables: make([]TableResponse, len(tables)),
	}
	for i, t := range tables {
		if tr := FromDomainTable(t); tr != nil {
			resp.Tables[i] = *tr
		}
	}
	return resp
}
