package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/netyark/storefront-backend/pkg/errors"
)

type samplePayload struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	Email     string `json:"email" validate:"omitempty,email"`
}

func decode(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var dest samplePayload
	return DecodeJSONBody(req, &dest)
}

func TestDecodeJSONBodyValid(t *testing.T) {
	t.Parallel()

	if err := decode(t, `{"product_id":"p1","quantity":2}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSONBodyMalformed(t *testing.T) {
	t.Parallel()

	err := decode(t, `{"product_id":`)
	if err == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSONBodyUnknownField(t *testing.T) {
	t.Parallel()

	if err := decode(t, `{"product_id":"p1","surprise":true}`); err == nil {
		t.Fatal("expected unknown field rejection")
	}
}

func TestDecodeJSONBodyValidationDetails(t *testing.T) {
	t.Parallel()

	err := decode(t, `{"quantity":0,"email":"not-an-email"}`)
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["product_id"] != "is required" {
		t.Fatalf("expected product_id detail, got %+v", details)
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("expected email detail, got %+v", details)
	}
}
