package get_availability_range

import (
	getRange "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/get_availability_range"
)

// RangeResponse занятые слоты по датам: {"2030-06-15": ["morning", "evening"]}
type RangeResponse map[string][]string

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRange.Response) RangeResponse {
	out := make(RangeResponse, len(resp.Days))
	for date, slots := range resp.Days {
		names := make([]string, 0, len(slots))
		for _, s := range slots {
			names = append(names, string(s))
		}
		out[date.String()] = names
	}
	return out
}
