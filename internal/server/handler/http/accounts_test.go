package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lmartins/servicofacil/internal/models"
	"github.com/lmartins/servicofacil/internal/repository"
)

// fakeAccountService implements AccountService for testing.
type fakeAccountService struct {
	account   *models.Account
	verifyErr error

	changeOK  bool
	changeErr error

	resetOK  bool
	resetErr error

	renameErr error
}

func (f *fakeAccountService) VerifyLogin(ctx context.Context, username, password string) (*models.Account, error) {
	return f.account, f.verifyErr
}

func (f *fakeAccountService) ChangePassword(ctx context.Context, username, newPassword string) (bool, error) {
	return f.changeOK, f.changeErr
}

func (f *fakeAccountService) ResetAdminPassword(ctx context.Context) (bool, error) {
	return f.resetOK, f.resetErr
}

func (f *fakeAccountService) RenameActiveUser(ctx context.Context, newUsername string) error {
	return f.renameErr
}

func TestAccountHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeAccountService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAccountService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "missing password",
			body:           `{"username":"admin"}`,
			service:        &fakeAccountService{},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedSubstr: "Password",
		},
		{
			name:           "wrong credentials",
			body:           `{"username":"admin","password":"wrong"}`,
			service:        &fakeAccountService{account: nil},
			expectedCode:   http.StatusUnauthorized,
			expectedSubstr: "invalid credentials",
		},
		{
			name:           "store failure",
			body:           `{"username":"admin","password":"admin"}`,
			service:        &fakeAccountService{verifyErr: errors.New("disk gone")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "internal error",
		},
		{
			name: "success",
			body: `{"username":"admin","password":"admin"}`,
			service: &fakeAccountService{account: &models.Account{
				ID: 1, Username: "admin", Password: "admin", FirstLogin: true,
			}},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"first_login":true`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/login", bytes.NewBufferString(tt.body))
			h := &AccountHandler{Service: tt.service}
			h.Login(rec, req)

			if rec.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestAccountHandler_LoginResponseOmitsPassword(t *testing.T) {
	service := &fakeAccountService{account: &models.Account{
		ID: 1, Username: "admin", Password: "s3cret",
	}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	(&AccountHandler{Service: service}).Login(rec, req)

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if _, ok := decoded["password"]; ok {
		t.Errorf("login response must not include the password: %s", rec.Body.String())
	}
}

func TestAccountHandler_ChangePassword(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAccountService
		expectedCode int
	}{
		{
			name:         "unknown user",
			body:         `{"username":"ghost","new_password":"x1"}`,
			service:      &fakeAccountService{changeOK: false},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "success",
			body:         `{"username":"admin","new_password":"x1"}`,
			service:      &fakeAccountService{changeOK: true},
			expectedCode: http.StatusOK,
		},
		{
			name:         "store failure",
			body:         `{"username":"admin","new_password":"x1"}`,
			service:      &fakeAccountService{changeErr: errors.New("io")},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/password", bytes.NewBufferString(tt.body))
			(&AccountHandler{Service: tt.service}).ChangePassword(rec, req)
			if rec.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}
}

func TestAccountHandler_Rename(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAccountService
		expectedCode int
	}{
		{
			name:         "too short, rejected by validator",
			body:         `{"username":"ab"}`,
			service:      &fakeAccountService{},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "conflict",
			body: `{"username":"bob"}`,
			service: &fakeAccountService{
				renameErr: fmt.Errorf("%w: username exists", repository.ErrConflict),
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "validation from repository",
			body: `{"username":"   "}`,
			service: &fakeAccountService{
				renameErr: fmt.Errorf("%w: too short", repository.ErrValidation),
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "success",
			body:         `{"username":"carla"}`,
			service:      &fakeAccountService{},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/username", bytes.NewBufferString(tt.body))
			(&AccountHandler{Service: tt.service}).Rename(rec, req)
			if rec.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedCode, rec.Code, rec.Body.String())
			}
		})
	}
}
