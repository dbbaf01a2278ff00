package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

var ErrBadRequest = errors.New("bad request")

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

func (*BadRequestError) Unwrap() error {
	return ErrBadRequest
}

func NewBadRequestError(message string) error {
	return &BadRequestError{Message: message}
}

var ErrStoreUnavailable = errors.New("vector store unavailable")

type StoreUnavailableError struct {
	Operation     string
	OriginalError error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf(
		"vector store %s failed (original error: %v)",
		e.Operation,
		e.OriginalError,
	)
}

func (*StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}

func NewStoreUnavailableError(operation string, originalError error) error {
	return &StoreUnavailableError{Operation: operation, OriginalError: originalError}
}

var ErrCompletionFailed = errors.New("completion failed")

type CompletionError struct {
	Message       string
	OriginalError error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion error: %s (original error: %v)", e.Message, e.OriginalError)
}

func (*CompletionError) Unwrap() error {
	return ErrCompletionFailed
}

func NewCompletionError(message string, originalError error) error {
	return &CompletionError{Message: message, OriginalError: originalError}
}

var ErrEmbedding = errors.New("embedding failed")

type EmbeddingError struct {
	Message       string
	OriginalError error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding error: %s (original error: %v)", e.Message, e.OriginalError)
}

func (*EmbeddingError) Unwrap() error {
	return ErrEmbedding
}

func NewEmbeddingError(message string, originalError error) error {
	return &EmbeddingError{Message: message, OriginalError: originalError}
}
