// Package response формирует стандартные JSON-ответы HTTP API.
package response

import (
	"encoding/json"
	"net/http"
)

// Response общий формат ответа сервера.
type Response struct {
	Status   string   `json:"status"`
	Message  string   `json:"message,omitempty"`
	Error    string   `json:"error,omitempty"`
	Value    *float64 `json:"value,omitempty"`
	Source   string   `json:"source,omitempty"`
	Interval string   `json:"interval,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// OK отвечает 200 с сообщением.
func OK(w http.ResponseWriter, msg string) {
	writeResponse(w, Response{
		Status:  StatusOK,
		Message: msg,
	}, http.StatusOK)
}

// Value отвечает 200 со сгенерированным значением.
// Поле value присутствует в ответе и для 0.
func Value(w http.ResponseWriter, value float64, source, interval string) {
	writeResponse(w, Response{
		Status:   StatusOK,
		Value:    &value,
		Source:   source,
		Interval: interval,
	}, http.StatusOK)
}

// Error отвечает statusCode с текстом ошибки.
func Error(w http.ResponseWriter, err error, statusCode int) {
	writeResponse(w, Response{
		Status: StatusError,
		Error:  err.Error(),
	}, statusCode)
}

// Стандартные ответы в json формате.
func writeResponse(w http.ResponseWriter, resp Response, statusCode int) {
	encoded, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(encoded)
}
