package list_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
func ToServiceRequest(q url.Values) (*models.ListBookingsRequest, error) {
	roomID, err := handlers.ParseOptionalID(q, "roomId")
	if err != nil {
		return nil, err
	}

	customerID, err := handlers.ParseOptionalID(q, "customerId")
	if err != nil {
		return nil, err
	}

	limit, offset, err := handlers.ParsePagination(q)
	if err != nil {
		return nil, err
	}

	req := &models.ListBookingsRequest{
		RoomID:     roomID,
		CustomerID: customerID,
		Limit:      limit,
		Offset:     offset,
	}
	if status := q.Get("status"); status != "" {
		req.Status = &status
	}
	return req, nil
}
