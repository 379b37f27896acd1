package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrNoData is reported when a provider or a stored series has nothing to show.
var ErrNoData = stderrors.New("no data")

type NotFoundError struct {
	Type string
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.Name)
}

func NotFoundErr(t, name string) NotFoundError {
	return NotFoundError{
		Type: t,
		Name: name,
	}
}

type NoDataError struct {
	Type    string
	Keyword string
}

func (e NoDataError) Error() string {
	return fmt.Sprintf("no %s data for %q", e.Type, e.Keyword)
}

func (e NoDataError) Is(target error) bool {
	return target == ErrNoData
}

func NoDataErr(t, keyword string) NoDataError {
	return NoDataError{
		Type:    t,
		Keyword: keyword,
	}
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func ValidationErr(field, message string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: message,
	}
}

// ProviderError wraps a failed call to the trends provider.
type ProviderError struct {
	Op  string
	Err error
}

func (e ProviderError) Error() string {
	return fmt.Sprintf("trends provider %s: %v", e.Op, e.Err)
}

func (e ProviderError) Unwrap() error {
	return e.Err
}

func ProviderErr(op string, err error) ProviderError {
	return ProviderError{
		Op:  op,
		Err: err,
	}
}
