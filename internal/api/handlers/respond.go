package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Коды ошибок в теле ответа
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternal          = "INTERNAL_ERROR"
)

const msgInternalError = "внутренняя ошибка сервера"

var errEmptyBody = errors.New("empty request body")

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON пишет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку, код вычисляется по HTTP статусу
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: codeForStatus(status), Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInvalidTransition 409 с кодом INVALID_TRANSITION
func RespondInvalidTransition(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Code: CodeInvalidTransition, Message: message})
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// ParseDate разбирает дату в формате YYYY-MM-DD (UTC)
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, value, time.UTC)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	default:
		return CodeInternal
	}
}
