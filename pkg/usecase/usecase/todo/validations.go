package usecase

import (
	"errors"
	"strings"

	"todo-go-backend/pkg/entity/model"

	"github.com/hashicorp/go-multierror"
)

// ValidatePagination checks that both window bounds are non-negative.
func ValidatePagination(page model.Pagination) error {
	var result *multierror.Error
	if page.Skip < 0 {
		result = multierror.Append(result, model.NewInvalidParamError("skip", errors.New("must be a non-negative integer")))
	}
	if page.Limit < 0 {
		result = multierror.Append(result, model.NewInvalidParamError("limit", errors.New("must be a non-negative integer")))
	}
	return validationError(result)
}

// ValidateCreateTodoInput checks the fields of CreateTodoInput.
func ValidateCreateTodoInput(input model.CreateTodoInput) error {
	var result *multierror.Error
	if !validText(input.Title) {
		result = multierror.Append(result, model.NewInvalidParamError("title", errors.New("must not contain NUL bytes")))
	}
	if input.Description != nil && !validText(*input.Description) {
		result = multierror.Append(result, model.NewInvalidParamError("description", errors.New("must not contain NUL bytes")))
	}
	return validationError(result)
}

// ValidateUpdateTodoInput checks that UpdateTodoInput satisfies the same rules as creation.
// Any integer id is accepted; an id without a row is reported as not found.
func ValidateUpdateTodoInput(input model.UpdateTodoInput) error {
	return ValidateCreateTodoInput(model.CreateTodoInput{
		Title:       input.Title,
		Description: input.Description,
		Done:        input.Done,
	})
}

// ValidatePatchTodoInput checks only the supplied fields.
func ValidatePatchTodoInput(input model.PatchTodoInput) error {
	var result *multierror.Error
	if input.Title != nil && !validText(*input.Title) {
		result = multierror.Append(result, model.NewInvalidParamError("title", errors.New("must not contain NUL bytes")))
	}
	if input.Description.Value != nil && !validText(*input.Description.Value) {
		result = multierror.Append(result, model.NewInvalidParamError("description", errors.New("must not contain NUL bytes")))
	}
	return validationError(result)
}

func validText(s string) bool {
	return !strings.ContainsRune(s, 0)
}

func validationError(result *multierror.Error) error {
	if result == nil {
		return nil
	}
	result.ErrorFormat = joinErrors
	return model.NewValidationError(result)
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
