package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/itemstore/pkg/validator"
)

type sampleRequest struct {
	ID   string `json:"id" validate:"omitempty,uuid4"`
	Name string `json:"name" validate:"required,min=1,max=10"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleRequest{Name: "hello"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleRequest{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestValidate_badUUID(t *testing.T) {
	s := sampleRequest{ID: "not-a-uuid", Name: "ok"}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for malformed uuid")
	}
}

func TestFormatValidationErrors_usesJSONNames(t *testing.T) {
	s := sampleRequest{Name: strings.Repeat("x", 11)}
	err := pkgvalidator.Validate(&s)
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := pkgvalidator.FormatValidationErrors(err)
	if _, ok := fields["name"]; !ok {
		t.Fatalf("expected error keyed by json name, got %v", fields)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))

	_, ok := pkgvalidator.ValidateRequest[sampleRequest](w, r)
	if ok {
		t.Fatal("expected failure on malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestValidateRequest_validationFailure(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":""}`))

	_, ok := pkgvalidator.ValidateRequest[sampleRequest](w, r)
	if ok {
		t.Fatal("expected failure on empty name")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if _, ok := body.Fields["name"]; !ok {
		t.Errorf("expected field-level message for name, got %v", body.Fields)
	}
}

func TestValidateRequest_success(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))

	req, ok := pkgvalidator.ValidateRequest[sampleRequest](w, r)
	if !ok {
		t.Fatalf("expected success, response: %s", w.Body.String())
	}
	if req.Name != "ok" {
		t.Errorf("expected name ok, got %q", req.Name)
	}
}
