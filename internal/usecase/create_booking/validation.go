package create_booking

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// В ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bookingInput входные данные после нормализации, с правилами валидации
type bookingInput struct {
	CustomerName    string `json:"customer_name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email,max=320"`
	Phone           string `json:"phone" validate:"required,max=50"`
	EventType       string `json:"event_type" validate:"required,max=100"`
	GuestCount      int    `json:"guest_count" validate:"min=1"`
	SpecialRequests string `json:"special_requests" validate:"max=1000"`
	BookingDate     string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"time_slot" validate:"required,oneof=morning afternoon evening"`
}

func normalize(req *Request) bookingInput {
	return bookingInput{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		EventType:       strings.TrimSpace(req.EventType),
		GuestCount:      req.GuestCount,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		BookingDate:     strings.TrimSpace(req.BookingDate),
		TimeSlot:        strings.TrimSpace(req.TimeSlot),
	}
}

// validateInput проверяет поля запроса; возвращает первую ошибку в порядке полей
func validateInput(in bookingInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	fe := verrs[0]
	return domain.NewValidationError(fe.Field(), reason(fe))
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return "must be a calendar date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// validateRules проверяет ограничения площадки, зависящие от конфигурации и текущей даты
func validateRules(guestCount int, date types.Date, today types.Date, rules Rules) error {
	if rules.MaxGuestCount > 0 && guestCount > rules.MaxGuestCount {
		return domain.NewValidationError("guest_count",
			fmt.Sprintf("must be at most %d", rules.MaxGuestCount))
	}

	if date.Before(today) {
		return domain.NewValidationError("booking_date", "must not be in the past")
	}

	if rules.AdvanceBookingDays > 0 && today.DaysUntil(date) > rules.AdvanceBookingDays {
		return domain.NewValidationError("booking_date",
			fmt.Sprintf("can only book %d days in advance", rules.AdvanceBookingDays))
	}

	return nil
}

// today текущая дата в часовом поясе площадки
func today(now time.Time, loc *time.Location) types.Date {
	if loc == nil {
		loc = time.UTC
	}
	return types.DateOf(now.In(loc))
}
