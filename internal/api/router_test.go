package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hrkit/vacation-api/internal/core/domain"
	"github.com/hrkit/vacation-api/internal/core/ports"
	"github.com/hrkit/vacation-api/internal/core/service"
)

// The prometheus middleware registers collectors with the default registry,
// so the router is built once and shared; each test reprograms the stubs.
var (
	routerOnce sync.Once
	router     *echo.Echo
	tokens     *service.TokenService

	userStub     = &stubUserService{}
	vacationStub = &stubVacationService{}
)

type stubUserService struct {
	listFn         func(ctx context.Context) ([]domain.User, error)
	getFn          func(ctx context.Context, id int64) (*domain.User, error)
	createFn       func(ctx context.Context, in ports.CreateUserInput) (int64, error)
	updateFn       func(ctx context.Context, id int64, in ports.UpdateUserInput) error
	deleteFn       func(ctx context.Context, id int64) error
	authenticateFn func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) { return s.listFn(ctx) }
func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}
func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (int64, error) {
	return s.createFn(ctx, in)
}
func (s *stubUserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) error {
	return s.updateFn(ctx, id, in)
}
func (s *stubUserService) Delete(ctx context.Context, id int64) error { return s.deleteFn(ctx, id) }
func (s *stubUserService) Authenticate(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.authenticateFn(ctx, username, password)
}

type stubVacationService struct {
	listFn         func(ctx context.Context, claims ports.TokenClaims) ([]domain.Vacation, error)
	getFn          func(ctx context.Context, claims ports.TokenClaims, id int64) (*domain.Vacation, error)
	createFn       func(ctx context.Context, claims ports.TokenClaims, in ports.CreateVacationInput) (int64, error)
	updateStatusFn func(ctx context.Context, id int64, statusID *int) error
	deleteFn       func(ctx context.Context, id int64) error
	statusesFn     func(ctx context.Context) ([]domain.StatusDefinition, error)
	myFn           func(ctx context.Context, userID int64) ([]domain.Vacation, error)
}

func (s *stubVacationService) List(ctx context.Context, claims ports.TokenClaims) ([]domain.Vacation, error) {
	return s.listFn(ctx, claims)
}
func (s *stubVacationService) Get(ctx context.Context, claims ports.TokenClaims, id int64) (*domain.Vacation, error) {
	return s.getFn(ctx, claims, id)
}
func (s *stubVacationService) Create(ctx context.Context, claims ports.TokenClaims, in ports.CreateVacationInput) (int64, error) {
	return s.createFn(ctx, claims, in)
}
func (s *stubVacationService) UpdateStatus(ctx context.Context, id int64, statusID *int) error {
	return s.updateStatusFn(ctx, id, statusID)
}
func (s *stubVacationService) Delete(ctx context.Context, id int64) error { return s.deleteFn(ctx, id) }
func (s *stubVacationService) Statuses(ctx context.Context) ([]domain.StatusDefinition, error) {
	return s.statusesFn(ctx)
}
func (s *stubVacationService) My(ctx context.Context, userID int64) ([]domain.Vacation, error) {
	return s.myFn(ctx, userID)
}

func testRouter() *echo.Echo {
	routerOnce.Do(func() {
		tokens = service.NewTokenService("test-secret", time.Hour)
		router = NewRouter(RouterConfig{
			Tokens:     tokens,
			Users:      userStub,
			Vacations:  vacationStub,
			CORSOrigin: "http://localhost:4200",
			Logger:     zerolog.Nop(),
		})
	})
	return router
}

func tokenFor(t *testing.T, userID int64, role domain.Role) string {
	t.Helper()
	token, err := tokens.Issue(ports.TokenClaims{UserID: userID, Username: "someone", RoleID: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	e := testRouter()

	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return body
}

func errorList(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	raw, ok := decodeBody(t, rec)["errors"].([]any)
	if !ok {
		t.Fatalf("expected errors list, got %q", rec.Body.String())
	}
	msgs := make([]string, 0, len(raw))
	for _, m := range raw {
		msgs = append(msgs, m.(string))
	}
	return msgs
}

func containsMessage(msgs []string, want string) bool {
	for _, m := range msgs {
		if m == want {
			return true
		}
	}
	return false
}

func TestRouter_MissingToken(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/users", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "No token provided" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_InvalidToken(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/users", "garbage.token.value", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "Invalid or expired token" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_UserIndexRequiresAdmin(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/users", tokenFor(t, 5, domain.RoleUser), nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "Insufficient permissions" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_UserIndexAsAdmin(t *testing.T) {
	userStub.listFn = func(ctx context.Context) ([]domain.User, error) {
		return []domain.User{{ID: 1, Username: "admin", RoleID: domain.RoleAdmin}}, nil
	}

	rec := doRequest(t, http.MethodGet, "/users", tokenFor(t, 1, domain.RoleAdmin), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password must never be serialized: %s", rec.Body.String())
	}
}

func TestRouter_UserShow_SelfOrAdmin(t *testing.T) {
	userStub.getFn = func(ctx context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Username: "someone", RoleID: domain.RoleUser}, nil
	}

	// Own record: allowed.
	rec := doRequest(t, http.MethodGet, "/users/5", tokenFor(t, 5, domain.RoleUser), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("own record: expected 200, got %d", rec.Code)
	}

	// Someone else's record: forbidden for regular users.
	rec = doRequest(t, http.MethodGet, "/users/6", tokenFor(t, 5, domain.RoleUser), nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("other record: expected 403, got %d", rec.Code)
	}

	// Admins read anyone.
	rec = doRequest(t, http.MethodGet, "/users/6", tokenFor(t, 1, domain.RoleAdmin), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin read: expected 200, got %d", rec.Code)
	}
}

func TestRouter_UserShow_Unknown(t *testing.T) {
	userStub.getFn = func(ctx context.Context, id int64) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}

	rec := doRequest(t, http.MethodGet, "/users/99", tokenFor(t, 1, domain.RoleAdmin), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "User not found" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_UnknownActionBeforeAuth(t *testing.T) {
	// No token at all: the unknown action still 404s, never 401.
	rec := doRequest(t, http.MethodGet, "/users/bogus", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "Action 'bogus' not found" {
		t.Fatalf("body must name the action: %s", rec.Body.String())
	}
}

func TestRouter_UnknownResource(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/unknown", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "404 Not Found" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_UserStore_ValidationList(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/users", tokenFor(t, 1, domain.RoleAdmin),
		strings.NewReader(`{"email":"not-an-email"}`))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	msgs := errorList(t, rec)
	for _, want := range []string{
		"Name is required",
		"Valid email is required",
		"Username is required",
		"Password is required",
	} {
		if !containsMessage(msgs, want) {
			t.Fatalf("missing %q in %v", want, msgs)
		}
	}
}

func TestRouter_UserStore_Success(t *testing.T) {
	userStub.createFn = func(ctx context.Context, in ports.CreateUserInput) (int64, error) {
		if in.Username != "newbie" || in.Password != "secret123" {
			t.Fatalf("unexpected input: %+v", in)
		}
		return 12, nil
	}

	rec := doRequest(t, http.MethodPost, "/users", tokenFor(t, 1, domain.RoleAdmin),
		strings.NewReader(`{"name":"New User","email":"new@example.com","username":"newbie","password":"secret123"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["message"] != "User created" || body["id"] != float64(12) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// The reference behavior ships update without a role or ownership gate,
// unlike store/destroy. This test documents the gap rather than fixing it.
func TestRouter_UserUpdateRequiresNoRole(t *testing.T) {
	userStub.getFn = func(ctx context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id}, nil
	}
	userStub.updateFn = func(ctx context.Context, id int64, in ports.UpdateUserInput) error {
		return nil
	}

	rec := doRequest(t, http.MethodPut, "/users/3", "",
		strings.NewReader(`{"name":"Renamed","email":"r@example.com","username":"renamed"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 without any token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_Authenticate(t *testing.T) {
	// Missing fields are a 400 before any credential check.
	rec := doRequest(t, http.MethodPost, "/users/authenticate", "",
		strings.NewReader(`{"username":"alice"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "Username and password are required" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// Bad credentials.
	userStub.authenticateFn = func(ctx context.Context, username, password string) (string, *domain.User, error) {
		return "", nil, domain.ErrInvalidCredentials
	}
	rec = doRequest(t, http.MethodPost, "/users/authenticate", "",
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "Invalid credentials" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// Success returns the token and the user, password excluded.
	issued, err := tokens.Issue(ports.TokenClaims{UserID: 3, Username: "alice", RoleID: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	userStub.authenticateFn = func(ctx context.Context, username, password string) (string, *domain.User, error) {
		return issued, &domain.User{ID: 3, Username: "alice", RoleID: domain.RoleAdmin, PasswordHash: "x"}, nil
	}
	rec = doRequest(t, http.MethodPost, "/users/authenticate", "",
		strings.NewReader(`{"username":"alice","password":"right"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["message"] != "Authentication successful" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	claims, err := tokens.Verify(body["token"].(string))
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if claims.RoleID != domain.RoleAdmin {
		t.Fatalf("token role mismatch: %+v", claims)
	}
	if strings.Contains(rec.Body.String(), `"password"`) {
		t.Fatalf("password leaked: %s", rec.Body.String())
	}
}

func TestRouter_Profile(t *testing.T) {
	userStub.getFn = func(ctx context.Context, id int64) (*domain.User, error) {
		if id != 5 {
			t.Fatalf("profile must use the token's user id, got %d", id)
		}
		return &domain.User{ID: id, Username: "someone"}, nil
	}

	rec := doRequest(t, http.MethodGet, "/users/profile", tokenFor(t, 5, domain.RoleUser), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := decodeBody(t, rec)["user"]; !ok {
		t.Fatalf("expected user envelope: %s", rec.Body.String())
	}
}

func TestRouter_ValidateEchoesClaims(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/users/validate", tokenFor(t, 5, domain.RoleUser), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["valid"] != true || body["user_id"] != float64(5) || body["role_id"] != float64(2) {
		t.Fatalf("unexpected claims echo: %s", rec.Body.String())
	}
}

func TestRouter_VacationStore_ValidationList(t *testing.T) {
	// date_to before date_from plus a short reason: both collected.
	rec := doRequest(t, http.MethodPost, "/vacations", tokenFor(t, 5, domain.RoleUser),
		strings.NewReader(`{"date_from":"2026-09-10","date_to":"2026-09-01","reason":"too short"}`))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	msgs := errorList(t, rec)
	if !containsMessage(msgs, "End date must be after or equal to start date") {
		t.Fatalf("missing date-order error in %v", msgs)
	}
	if !containsMessage(msgs, "Reason must be at least 10 characters long") {
		t.Fatalf("missing reason-length error in %v", msgs)
	}
}

func TestRouter_VacationStore_BadDateFormat(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/vacations", tokenFor(t, 5, domain.RoleUser),
		strings.NewReader(`{"date_from":"10/09/2026","date_to":"2026-09-12","reason":"a perfectly long reason"}`))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !containsMessage(errorList(t, rec), "Start date (date_from) must be a valid date in format YYYY-MM-DD") {
		t.Fatalf("missing format error: %s", rec.Body.String())
	}
}

func TestRouter_VacationStore_RejectsNonPaddedDate(t *testing.T) {
	// time.Parse alone would accept "2026-2-3"; the contract wants the exact
	// zero-padded shape.
	rec := doRequest(t, http.MethodPost, "/vacations", tokenFor(t, 5, domain.RoleUser),
		strings.NewReader(`{"date_from":"2026-2-3","date_to":"2026-09-12","reason":"a perfectly long reason"}`))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if !containsMessage(errorList(t, rec), "Start date (date_from) must be a valid date in format YYYY-MM-DD") {
		t.Fatalf("missing format error: %s", rec.Body.String())
	}
}

func TestRouter_VacationStore_ReasonLengthCountsRunes(t *testing.T) {
	vacationStub.createFn = func(ctx context.Context, claims ports.TokenClaims, in ports.CreateVacationInput) (int64, error) {
		return 31, nil
	}
	token := tokenFor(t, 5, domain.RoleUser)

	// Nine multibyte runes (eighteen bytes): still too short.
	rec := doRequest(t, http.MethodPost, "/vacations", token,
		strings.NewReader(`{"date_from":"2026-09-01","date_to":"2026-09-05","reason":"ééééééééé"}`))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if !containsMessage(errorList(t, rec), "Reason must be at least 10 characters long") {
		t.Fatalf("missing reason-length error: %s", rec.Body.String())
	}

	// Ten multibyte runes pass.
	rec = doRequest(t, http.MethodPost, "/vacations", token,
		strings.NewReader(`{"date_from":"2026-09-01","date_to":"2026-09-05","reason":"éééééééééé"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_VacationStore_ForcesPending(t *testing.T) {
	vacationStub.createFn = func(ctx context.Context, claims ports.TokenClaims, in ports.CreateVacationInput) (int64, error) {
		if claims.UserID != 5 {
			t.Fatalf("owner must come from the token, got %d", claims.UserID)
		}
		return 21, nil
	}

	// The body claims APPROVED; the response must still say PENDING.
	rec := doRequest(t, http.MethodPost, "/vacations", tokenFor(t, 5, domain.RoleUser),
		strings.NewReader(`{"date_from":"2026-09-01","date_to":"2026-09-05","reason":"family holiday trip","status_id":1}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["status"] != "PENDING" || body["id"] != float64(21) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_VacationUpdateStatus(t *testing.T) {
	vacationStub.updateStatusFn = func(ctx context.Context, id int64, statusID *int) error {
		if statusID == nil {
			return domain.ErrMissingStatus
		}
		if !domain.VacationStatus(*statusID).Valid() {
			return domain.ErrInvalidStatus
		}
		return nil
	}
	admin := tokenFor(t, 1, domain.RoleAdmin)

	// Non-admins may not decide.
	rec := doRequest(t, http.MethodPut, "/vacations/4", tokenFor(t, 5, domain.RoleUser),
		strings.NewReader(`{"status_id":1}`))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// Missing status_id.
	rec = doRequest(t, http.MethodPut, "/vacations/4", admin, strings.NewReader(`{}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["error"] != "status_id is required" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// Out-of-range status_id.
	rec = doRequest(t, http.MethodPut, "/vacations/4", admin, strings.NewReader(`{"status_id":5}`))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	// Valid decision reports the status name.
	rec = doRequest(t, http.MethodPut, "/vacations/4", admin, strings.NewReader(`{"status_id":1}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["status"] != "APPROVED" || body["id"] != float64(4) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_VacationShow_Forbidden(t *testing.T) {
	vacationStub.getFn = func(ctx context.Context, claims ports.TokenClaims, id int64) (*domain.Vacation, error) {
		return nil, domain.ErrForbidden
	}

	rec := doRequest(t, http.MethodGet, "/vacations/9", tokenFor(t, 5, domain.RoleUser), nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRouter_VacationStatuses(t *testing.T) {
	vacationStub.statusesFn = func(ctx context.Context) ([]domain.StatusDefinition, error) {
		return []domain.StatusDefinition{
			{ID: domain.StatusApproved, Status: "APPROVED"},
			{ID: domain.StatusRejected, Status: "REJECTED"},
			{ID: domain.StatusPending, Status: "PENDING"},
		}, nil
	}

	rec := doRequest(t, http.MethodGet, "/vacations/statuses", tokenFor(t, 5, domain.RoleUser), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var statuses []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &statuses); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
}

func TestRouter_VacationMy(t *testing.T) {
	vacationStub.myFn = func(ctx context.Context, userID int64) ([]domain.Vacation, error) {
		if userID != 5 {
			t.Fatalf("my listing must use the token's user id, got %d", userID)
		}
		return []domain.Vacation{{ID: 2, UserID: 5}}, nil
	}

	rec := doRequest(t, http.MethodGet, "/vacations/my", tokenFor(t, 5, domain.RoleUser), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_UnexpectedErrorPassesMessageThrough(t *testing.T) {
	userStub.listFn = func(ctx context.Context) ([]domain.User, error) {
		return nil, errors.New("mysql has gone away")
	}

	rec := doRequest(t, http.MethodGet, "/users", tokenFor(t, 1, domain.RoleAdmin), nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "mysql has gone away" {
		t.Fatalf("message must pass through verbatim: %s", rec.Body.String())
	}
}

func TestRouter_Liveness(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
