package models

import "fmt"

// Typed errors returned by services. The HTTP layer maps each one to a
// status code; internal failures never leak their detail to callers.

type ErrorValidation struct {
	Fields map[string]string
}

func (e ErrorValidation) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}
