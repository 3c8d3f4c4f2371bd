package get_room_availability

import (
	"errors"
	"net/url"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

var errMissingDates = errors.New("checkIn and checkOut are required")

// ToServiceRequest собирает запрос из query параметров checkIn и checkOut
func ToServiceRequest(roomID int64, q url.Values) (*models.AvailabilityRequest, error) {
	checkInStr, checkOutStr := q.Get("checkIn"), q.Get("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		return nil, errMissingDates
	}

	checkIn, err := handlers.ParseDate(checkInStr)
	if err != nil {
		return nil, err
	}
	checkOut, err := handlers.ParseDate(checkOutStr)
	if err != nil {
		return nil, err
	}

	return &models.AvailabilityRequest{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}
