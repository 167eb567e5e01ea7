package graph

import (
	pkgerrors "github.com/suryalovesjs/dema-inventory-service/pkg/errors"
)

// gqlError carries the service error code into the response's extensions
// block so clients can branch on it without parsing messages.
type gqlError struct {
	err error
}

func (e *gqlError) Error() string {
	typed := pkgerrors.As(e.err)
	if typed == nil {
		return "internal server error"
	}

	meta := pkgerrors.MetadataFor(typed.Code())
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeInvalidReference,
		pkgerrors.CodeConflict:
		if m := typed.Message(); m != "" {
			return m
		}
	}
	return meta.PublicMessage
}

func (e *gqlError) Extensions() map[string]any {
	typed := pkgerrors.As(e.err)
	if typed == nil {
		return map[string]any{"code": string(pkgerrors.CodeInternal)}
	}

	ext := map[string]any{"code": string(typed.Code())}
	if pkgerrors.MetadataFor(typed.Code()).DetailsAllowed {
		if details := typed.Details(); details != nil {
			ext["details"] = details
		}
	}
	return ext
}

func (e *gqlError) Unwrap() error {
	return e.err
}

// wrapErr normalizes any service error into a gqlError.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if pkgerrors.As(err) == nil {
		err = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	return &gqlError{err: err}
}
