package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// Service сервис для работы с номерами
type Service struct {
	roomRepo     RoomRepository
	availability AvailabilityChecker
	logger       Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, availability AvailabilityChecker, logger Logger) *Service {
	return &Service{
		roomRepo:     roomRepo,
		availability: availability,
		logger:       logger,
	}
}

// Create создает номер
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%q, type=%q, floor=%d", req.Name, req.RoomType, req.Floor)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	room, err := s.roomRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", room.ID)
	return models.FromDomainRoom(room), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.getRoom(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoom(room), nil
}

// List получает список номеров
func (s *Service) List(ctx context.Context, limit, offset uint64) (*models.RoomListResponse, error) {
	if limit == 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		return nil, fmt.Errorf("%w: limit must be at most %d", ErrInvalidInput, domain.MaxListLimit)
	}

	rooms, err := s.roomRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// Availability сообщает, свободен ли номер на полуинтервал [checkIn, checkOut)
func (s *Service) Availability(ctx context.Context, req *models.AvailabilityRequest) (*models.AvailabilityResponse, error) {
	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		s.logger.Warn("Availability: invalid range for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.getRoom(ctx, "Availability", req.RoomID); err != nil {
		return nil, err
	}

	occupied, err := s.availability.IsRoomOccupied(ctx, req.RoomID, stay.Start, stay.End)
	if err != nil {
		s.logger.Error("Availability: failed to check room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Availability - %v", ErrInternal, err)
	}

	s.logger.Info("Availability: room id=%d %s available=%t", req.RoomID, stay, !occupied)
	return &models.AvailabilityResponse{
		RoomID:    req.RoomID,
		CheckIn:   stay.Start.Format(domain.DateFormat),
		CheckOut:  stay.End.Format(domain.DateFormat),
		Nights:    stay.Nights(),
		Available: !occupied,
	}, nil
}

func (s *Service) getRoom(ctx context.Context, op string, id int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}

// validateCreate валидирует данные нового номера
func validateCreate(req *models.CreateRoomRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if strings.TrimSpace(req.RoomType) == "" {
		return fmt.Errorf("%w: roomType is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.RoomType) > domain.MaxRoomTypeLength {
		return fmt.Errorf("%w: roomType must be at most %d characters", ErrInvalidInput, domain.MaxRoomTypeLength)
	}
	if req.Floor < 0 {
		return fmt.Errorf("%w: floor must not be negative", ErrInvalidInput)
	}
	if req.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
	}
	if !req.PricePerNight.IsPositive() {
		return fmt.Errorf("%w: pricePerNight must be positive", ErrInvalidInput)
	}
	for _, amenity := range req.Amenities {
		if strings.TrimSpace(amenity) == "" {
			return fmt.Errorf("%w: amenities must not contain empty values", ErrInvalidInput)
		}
	}
	return nil
}
