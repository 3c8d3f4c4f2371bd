package customers

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	customerRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-HotelService/internal/service/customers/models"
)

// Service сервис для работы с гостями
type Service struct {
	customerRepo CustomerRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create регистрирует гостя
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	customer, err := s.customerRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%d", customer.ID)
	return models.FromDomainCustomer(customer), nil
}

// GetByID получает гостя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomer(customer), nil
}

// List получает список гостей
func (s *Service) List(ctx context.Context, limit, offset uint64) (*models.CustomerListResponse, error) {
	if limit == 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		return nil, fmt.Errorf("%w: limit must be at most %d", ErrInvalidInput, domain.MaxListLimit)
	}

	customers, err := s.customerRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomerList(customers), nil
}

// AttachProof сохраняет ссылку на скан документа гостя
func (s *Service) AttachProof(ctx context.Context, req *models.AttachProofRequest) (*models.AttachProofResponse, error) {
	if err := validateProof(req); err != nil {
		s.logger.Warn("AttachProof: validation failed for customer id=%d: %v", req.CustomerID, err)
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: AttachProof - get customer: %v", ErrInternal, err)
	}

	uploadedAt := s.timeProvider.Now()
	if err := s.customerRepo.UpdateProof(ctx, customer.ID, req.URL, req.Filename, uploadedAt); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("AttachProof: failed to update customer id=%d: %v", customer.ID, err)
		return nil, fmt.Errorf("%w: AttachProof - update proof: %v", ErrInternal, err)
	}

	key := customer.ProofImageKey(req.Filename)
	s.logger.Info("AttachProof: customer id=%d proof key=%s", customer.ID, key)

	return &models.AttachProofResponse{
		CustomerID: customer.ID,
		Key:        key,
		URL:        req.URL,
		Filename:   req.Filename,
		UploadedAt: uploadedAt,
	}, nil
}

// validateCreate валидирует данные гостя
func validateCreate(req *models.CreateCustomerRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if utf8.RuneCountInString(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email must be at most %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}
	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	phoneLen := utf8.RuneCountInString(req.Phone)
	if phoneLen < domain.MinPhoneLength || phoneLen > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be %d..%d characters", ErrInvalidInput, domain.MinPhoneLength, domain.MaxPhoneLength)
	}

	if req.ProofOfIdentity != nil && utf8.RuneCountInString(*req.ProofOfIdentity) > domain.MaxProofOfIdentityLength {
		return fmt.Errorf("%w: proofOfIdentity must be at most %d characters", ErrInvalidInput, domain.MaxProofOfIdentityLength)
	}

	return nil
}

// validateProof валидирует ссылку на скан документа
func validateProof(req *models.AttachProofRequest) error {
	if req.Filename == "" {
		return fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	if len(req.Filename) > domain.MaxFilenameLength {
		return fmt.Errorf("%w: filename must be at most %d characters", ErrInvalidInput, domain.MaxFilenameLength)
	}
	if strings.ContainsAny(req.Filename, `/\`) || req.Filename == "." || req.Filename == ".." {
		return fmt.Errorf("%w: filename must not contain path separators", ErrInvalidInput)
	}

	u, err := url.Parse(req.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: url must be absolute", ErrInvalidInput)
	}

	return nil
}
