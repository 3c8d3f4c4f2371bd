package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CreateCustomerRequest запрос на регистрацию гостя
type CreateCustomerRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         *string `json:"address,omitempty"`
	ProofOfIdentity *string `json:"proofOfIdentity,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateCustomerRequest) ToDomain() *domain.Customer {
	return &domain.Customer{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		ProofOfIdentity: r.ProofOfIdentity,
	}
}

// AttachProofRequest запрос на привязку скана документа
type AttachProofRequest struct {
	CustomerID int64  `json:"-"`
	Filename   string `json:"filename"`
	URL        string `json:"url"`
}

// CustomerResponse ответ с данными гостя
type CustomerResponse struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Address            *string    `json:"address,omitempty"`
	ProofOfIdentity    *string    `json:"proofOfIdentity,omitempty"`
	ProofImageURL      *string    `json:"proofImageUrl,omitempty"`
	ProofImageFilename *string    `json:"proofImageFilename,omitempty"`
	UploadedAt         *time.Time `json:"uploadedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// CustomerListResponse ответ со списком гостей
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// AttachProofResponse ответ на привязку скана документа
type AttachProofResponse struct {
	CustomerID int64     `json:"customerId"`
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Address:            c.Address,
		ProofOfIdentity:    c.ProofOfIdentity,
		ProofImageURL:      c.ProofImageURL,
		ProofImageFilename: c.ProofImageFilename,
		UploadedAt:         c.UploadedAt,
		CreatedAt:          c.CreatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{Customers: make([]CustomerResponse, 0, len(customers))}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, *FromDomainCustomer(c))
	}
	return resp
}
