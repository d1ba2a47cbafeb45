package list_bookings

import (
	"net/url"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/bookings/models"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

// parseQuery разбирает фильтры ?status=&from=&to=
func parseQuery(q url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if s := q.Get("status"); s != "" {
		req.Status = &s
	}

	for _, p := range []struct {
		name string
		dst  **types.Date
	}{
		{name: "from", dst: &req.From},
		{name: "to", dst: &req.To},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		d, err := types.ParseDate(raw)
		if err != nil {
			return nil, domain.NewValidationError(p.name, "must be a date in YYYY-MM-DD format")
		}
		*p.dst = &d
	}

	return req, nil
}
