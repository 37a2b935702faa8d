package utils

import "net/http"

// APIError - ошибка уровня приложения с произвольным сообщением и HTTP статусом.
// Отдаётся клиенту как {"message": ..., ...payload}.
type APIError struct {
	Message    string
	StatusCode int
	Payload    map[string]interface{}
}

// NewAPIError creates an APIError. A zero status falls back to 400.
func NewAPIError(message string, statusCode int, payload map[string]interface{}) *APIError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &APIError{Message: message, StatusCode: statusCode, Payload: payload}
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) ToMap() map[string]interface{} {
	out := make(map[string]interface{}, len(e.Payload)+1)
	for k, v := range e.Payload {
		out[k] = v
	}
	out["message"] = e.Message
	return out
}
