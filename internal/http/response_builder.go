// Package http provides the REST API and the server-rendered pages.
//
// This file implements a small builder for the JSON envelope every API
// route answers with: {success, data, count?, message?} on success and
// {success:false, error} on failure.

package http

import (
	"encoding/json"
	"net/http"
)

// MsgInternalError is the only text a client sees for unexpected failures.
const MsgInternalError = "Internal server error"

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONResponseBuilder provides a fluent API for API responses.
type JSONResponseBuilder struct {
	status  int
	body    envelope
	headers map[string]string
}

// NewJSONResponse starts a successful 200 response.
func NewJSONResponse() *JSONResponseBuilder {
	return &JSONResponseBuilder{
		status:  http.StatusOK,
		body:    envelope{Success: true},
		headers: make(map[string]string),
	}
}

func (b *JSONResponseBuilder) Status(code int) *JSONResponseBuilder {
	b.status = code
	return b
}

func (b *JSONResponseBuilder) Data(data any) *JSONResponseBuilder {
	b.body.Data = data
	return b
}

// Count sets the count field, sent even when zero.
func (b *JSONResponseBuilder) Count(n int) *JSONResponseBuilder {
	b.body.Count = &n
	return b
}

func (b *JSONResponseBuilder) Message(msg string) *JSONResponseBuilder {
	b.body.Message = msg
	return b
}

func (b *JSONResponseBuilder) Header(name, value string) *JSONResponseBuilder {
	b.headers[name] = value
	return b
}

// Write sends the response.
func (b *JSONResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(b.status)
	_ = json.NewEncoder(w).Encode(b.body)
}

// ErrorResponse builds a {success:false, error} response.
func ErrorResponse(status int, message string) *JSONResponseBuilder {
	b := NewJSONResponse().Status(status)
	b.body = envelope{Success: false, Error: message}
	return b
}

func BadRequestError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusBadRequest, message)
}

func NotFoundError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusNotFound, message)
}

func UnauthorizedError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusUnauthorized, message).Header("WWW-Authenticate", `Bearer realm="festival"`)
}

func InternalServerError() *JSONResponseBuilder {
	return ErrorResponse(http.StatusInternalServerError, MsgInternalError)
}
