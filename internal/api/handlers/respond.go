package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
)

// MaxBodyBytes ограничение размера тела запроса
const MaxBodyBytes = 1 << 20

// Коды ошибок API
const (
	CodeInvalidRequest          = "invalid_request"
	CodeValidationError         = "validation_error"
	CodeSlotAlreadyTaken        = "slot_already_taken"
	CodeInvalidTransition       = "invalid_transition"
	CodeNotFound                = "not_found"
	CodeMethodNotAllowed        = "method_not_allowed"
	CodeUnauthorized            = "unauthorized"
	CodeRateLimited             = "rate_limited"
	CodeStoreUnavailable        = "store_unavailable"
	CodeAvailabilityCheckFailed = "availability_check_failed"
	CodeInternalError           = "internal_error"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorBody описание ошибки
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse формат ответа с ошибкой
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// MessageResponse простой ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// RespondBadRequest некорректное тело или параметры запроса
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeInvalidRequest, message)
}

// RespondValidationError ошибка валидации с указанием поля
func RespondValidationError(w http.ResponseWriter, err error) {
	body := ErrorBody{Code: CodeValidationError, Message: "ошибка валидации"}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Field = ve.Field
		body.Message = fmt.Sprintf("ошибка валидации: %s %s", ve.Field, ve.Reason)
	}
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: body})
}

// RespondNotFound ресурс не найден
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondConflict конфликт с текущим состоянием
func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

// RespondUnauthorized нет или неверные учетные данные
func RespondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

// RespondServiceUnavailable инфраструктура недоступна
func RespondServiceUnavailable(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusServiceUnavailable, code, message)
}

// RespondInternalError внутренняя ошибка
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, msgInternalError)
}

// DecodeJSON декодирует тело запроса: ограничение размера, запрет неизвестных полей, ровно один JSON объект
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes+1))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
