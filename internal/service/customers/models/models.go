package models

import (
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

// Request модели

// ResolveCustomerRequest данные гостя для поиска или создания карточки.
// Хотя бы одно из Email/Phone должно быть заполнено.
type ResolveCustomerRequest struct {
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// UpdateCustomerRequest запрос на обновление карточки клиента
type UpdateCustomerRequest struct {
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// Response модели

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// Методы конвертации

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	if customers == nil {
		return &CustomerListResponse{Customers: []CustomerResponse{}}
	}

	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, len(customers)),
	}
	for i, c := range customers {
		if cr := FromDomainCustomer(c); cr != nil {
			resp.Customers[i] = *cr
		}
	}
	return resp
}
