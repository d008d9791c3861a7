package errors_test

import (
	"net/http"
	"testing"

	appErrors "CreditCtrl/internal/errors"

	"github.com/go-playground/validator/v10"
)

type yearParams struct {
	Year int `validate:"required,gte=1900,lte=2200"`
}

func TestFromErrorTranslatesValidatorErrors(t *testing.T) {
	t.Parallel()

	err := validator.New().Struct(yearParams{Year: 100})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	appErr := appErrors.FromError(err)
	if appErr.Code != appErrors.ErrValidation.Code {
		t.Fatalf("expected code %s, got %s", appErrors.ErrValidation.Code, appErr.Code)
	}
	if appErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", appErr.StatusCode)
	}

	fields, ok := appErr.Details["fields"].([]map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", appErr.Details["fields"])
	}
	if len(fields) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fields))
	}
	if fields[0]["field"] != "year" {
		t.Fatalf("expected field year, got %q", fields[0]["field"])
	}
	if fields[0]["message"] != "year must be greater than or equal to 1900" {
		t.Fatalf("unexpected message %q", fields[0]["message"])
	}
}

func TestFromErrorPassesAppErrorsThrough(t *testing.T) {
	t.Parallel()

	appErr := appErrors.FromError(appErrors.ErrUserNotFound)
	if appErr != appErrors.ErrUserNotFound {
		t.Fatalf("expected the sentinel unchanged, got %+v", appErr)
	}
}
