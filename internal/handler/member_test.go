package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jogjadev/members-api/internal/database"
	"github.com/jogjadev/members-api/internal/model"
	"github.com/jogjadev/members-api/internal/repository"
	"github.com/jogjadev/members-api/internal/service"
)

// newTestMux wires the full stack against an in-memory database, so handler
// tests exercise real routing, validation, and persistence.
func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Member{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	repo := repository.NewMemberRepository(db)
	members := service.NewMemberService(service.MemberServiceConfig{Repo: repo})
	h := NewMemberHandler(members)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/members", h.Create)
	mux.HandleFunc("GET /v1/members", h.List)
	mux.HandleFunc("GET /v1/members/{memberId}", h.Get)
	mux.HandleFunc("PATCH /v1/members/{memberId}", h.Update)
	mux.HandleFunc("DELETE /v1/members/{memberId}", h.Delete)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

type memberEnvelope struct {
	Data  model.Member      `json:"data"`
	Links map[string]string `json:"_links"`
}

type collectionEnvelope struct {
	Data       []model.Member    `json:"data"`
	Pagination *PaginationInfo   `json:"pagination"`
	Links      map[string]string `json:"_links"`
}

func decodeMember(t *testing.T, rr *httptest.ResponseRecorder) memberEnvelope {
	t.Helper()

	var env memberEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return env
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) model.ProblemDetails {
	t.Helper()

	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}
	var problem model.ProblemDetails
	if err := json.Unmarshal(rr.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to decode problem %q: %v", rr.Body.String(), err)
	}
	return problem
}

func createMember(t *testing.T, mux *http.ServeMux, body string) model.Member {
	t.Helper()

	rr := doJSON(t, mux, http.MethodPost, "/v1/members", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating member, got %d: %s", rr.Code, rr.Body.String())
	}
	return decodeMember(t, rr).Data
}

// ============================================================================
// Create Tests
// ============================================================================

func TestMemberHandler_Create_Returns201(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rr := doJSON(t, mux, http.MethodPost, "/v1/members",
		`{"name": "  Budi Santoso  ", "email": "Budi@Example.COM", "phone": "+62812345671"}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	env := decodeMember(t, rr)
	if env.Data.ID == 0 {
		t.Error("expected assigned ID")
	}
	if env.Data.Name != "Budi Santoso" {
		t.Errorf("expected trimmed name, got %q", env.Data.Name)
	}
	if env.Data.Email != "budi@example.com" {
		t.Errorf("expected lowercased email, got %q", env.Data.Email)
	}
	if env.Data.Phone == nil || *env.Data.Phone != "+62812345671" {
		t.Errorf("expected phone preserved, got %v", env.Data.Phone)
	}
	if env.Links["self"] != fmt.Sprintf("/v1/members/%d", env.Data.ID) {
		t.Errorf("expected self link, got %v", env.Links)
	}
}

func TestMemberHandler_Create_DuplicateEmail_Returns409(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com"}`)

	rr := doJSON(t, mux, http.MethodPost, "/v1/members",
		`{"name": "Other Budi", "email": "BUDI@example.com"}`)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for case-folded duplicate, got %d: %s", rr.Code, rr.Body.String())
	}
	problem := decodeProblem(t, rr)
	if problem.Field != "email" {
		t.Errorf("expected conflict on email, got %q", problem.Field)
	}
	if problem.Value != "budi@example.com" {
		t.Errorf("expected normalized colliding value, got %q", problem.Value)
	}
}

func TestMemberHandler_Create_DuplicatePhone_Returns409(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com", "phone": "+62812345671"}`)

	rr := doJSON(t, mux, http.MethodPost, "/v1/members",
		`{"name": "Siti Rahayu", "email": "siti@example.com", "phone": "+62812345671"}`)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
	if problem := decodeProblem(t, rr); problem.Field != "phone" {
		t.Errorf("expected conflict on phone, got %q", problem.Field)
	}
}

func TestMemberHandler_Create_InvalidFields_Returns422(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rr := doJSON(t, mux, http.MethodPost, "/v1/members",
		`{"name": "B", "email": "not-an-email"}`)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rr.Code, rr.Body.String())
	}
	problem := decodeProblem(t, rr)
	if len(problem.Errors) != 2 {
		t.Fatalf("expected both field errors reported, got %+v", problem.Errors)
	}
	fields := map[string]bool{}
	for _, fe := range problem.Errors {
		fields[fe.Field] = true
	}
	if !fields["name"] || !fields["email"] {
		t.Errorf("expected errors on name and email, got %+v", problem.Errors)
	}
}

func TestMemberHandler_Create_MalformedBody_Returns400(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rr := doJSON(t, mux, http.MethodPost, "/v1/members", `{"name": `)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestMemberHandler_Create_UnknownField_Returns400(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rr := doJSON(t, mux, http.MethodPost, "/v1/members",
		`{"name": "Budi Santoso", "email": "budi@example.com", "role": "admin"}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d: %s", rr.Code, rr.Body.String())
	}
}

// ============================================================================
// List Tests
// ============================================================================

func TestMemberHandler_List_EmptyRegistry(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rr := doJSON(t, mux, http.MethodGet, "/v1/members", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var env collectionEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if env.Data == nil || len(env.Data) != 0 {
		t.Errorf("expected empty data array, got %s", rr.Body.String())
	}
	if env.Pagination == nil || env.Pagination.Offset != 0 || env.Pagination.Limit != model.DefaultListLimit {
		t.Errorf("expected default pagination, got %+v", env.Pagination)
	}
	if env.Pagination.HasMore {
		t.Error("empty registry cannot have more pages")
	}
}

func TestMemberHandler_List_SkipAndLimit(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com"}`)
	second := createMember(t, mux, `{"name": "Siti Rahayu", "email": "siti@example.com"}`)
	createMember(t, mux, `{"name": "Agus Wijaya", "email": "agus@example.com"}`)

	rr := doJSON(t, mux, http.MethodGet, "/v1/members?skip=1&limit=1", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var env collectionEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].ID != second.ID {
		t.Errorf("expected only the second member, got %s", rr.Body.String())
	}
	if !env.Pagination.HasMore {
		t.Error("a full page should report has_more")
	}
}

func TestMemberHandler_List_ClampsOutOfRangeParams(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com"}`)

	rr := doJSON(t, mux, http.MethodGet, "/v1/members?skip=-5&limit=5000", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var env collectionEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(env.Data) != 1 {
		t.Errorf("expected the single member, got %d", len(env.Data))
	}
	if env.Pagination.Limit != model.MaxListLimit {
		t.Errorf("expected limit clamped to %d, got %d", model.MaxListLimit, env.Pagination.Limit)
	}
}

func TestMemberHandler_List_NonIntegerParams_Returns400(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rr := doJSON(t, mux, http.MethodGet, "/v1/members?skip=abc", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-integer skip, got %d", rr.Code)
	}

	rr = doJSON(t, mux, http.MethodGet, "/v1/members?limit=ten", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-integer limit, got %d", rr.Code)
	}
}

// ============================================================================
// Get Tests
// ============================================================================

func TestMemberHandler_Get_Returns200(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	created := createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com"}`)

	rr := doJSON(t, mux, http.MethodGet, fmt.Sprintf("/v1/members/%d", created.ID), "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if env := decodeMember(t, rr); env.Data.Email != "budi@example.com" {
		t.Errorf("expected stored member back, got %+v", env.Data)
	}
}

func TestMemberHandler_Get_Missing_Returns404(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rr := doJSON(t, mux, http.MethodGet, "/v1/members/9999", "")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
	if problem := decodeProblem(t, rr); !strings.Contains(problem.Detail, "9999") {
		t.Errorf("expected detail to name the missing ID, got %q", problem.Detail)
	}
}

func TestMemberHandler_Get_NonIntegerID_Returns400(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rr := doJSON(t, mux, http.MethodGet, "/v1/members/abc", "")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
}

// ============================================================================
// Update Tests
// ============================================================================

func TestMemberHandler_Update_PartialPatch(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	created := createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com", "phone": "+62812345671"}`)

	rr := doJSON(t, mux, http.MethodPatch, fmt.Sprintf("/v1/members/%d", created.ID),
		`{"name": "Budi S. Santoso"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	env := decodeMember(t, rr)
	if env.Data.Name != "Budi S. Santoso" {
		t.Errorf("expected name updated, got %q", env.Data.Name)
	}
	if env.Data.Email != "budi@example.com" {
		t.Errorf("untouched email changed: %q", env.Data.Email)
	}
	if env.Data.Phone == nil || *env.Data.Phone != "+62812345671" {
		t.Errorf("untouched phone changed: %v", env.Data.Phone)
	}
}

func TestMemberHandler_Update_BlankPhoneClears(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	created := createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com", "phone": "+62812345671"}`)

	rr := doJSON(t, mux, http.MethodPatch, fmt.Sprintf("/v1/members/%d", created.ID),
		`{"phone": "  "}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if env := decodeMember(t, rr); env.Data.Phone != nil {
		t.Errorf("expected phone cleared, got %v", *env.Data.Phone)
	}
}

func TestMemberHandler_Update_ConflictingEmail_Returns409(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com"}`)
	other := createMember(t, mux, `{"name": "Siti Rahayu", "email": "siti@example.com"}`)

	rr := doJSON(t, mux, http.MethodPatch, fmt.Sprintf("/v1/members/%d", other.ID),
		`{"email": "budi@example.com"}`)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
	if problem := decodeProblem(t, rr); problem.Field != "email" {
		t.Errorf("expected conflict on email, got %q", problem.Field)
	}
}

func TestMemberHandler_Update_OwnEmail_Returns200(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	created := createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com"}`)

	rr := doJSON(t, mux, http.MethodPatch, fmt.Sprintf("/v1/members/%d", created.ID),
		`{"email": "BUDI@example.com"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("re-submitting own email should not conflict, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestMemberHandler_Update_InvalidEmail_Returns422(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	created := createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com"}`)

	rr := doJSON(t, mux, http.MethodPatch, fmt.Sprintf("/v1/members/%d", created.ID),
		`{"email": "broken@"}`)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestMemberHandler_Update_Missing_Returns404(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rr := doJSON(t, mux, http.MethodPatch, "/v1/members/9999", `{"name": "Ghost"}`)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestMemberHandler_Delete_Returns204(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	created := createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com"}`)

	rr := doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/v1/members/%d", created.ID), "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rr.Code, rr.Body.String())
	}
	if rr.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rr.Body.String())
	}

	rr = doJSON(t, mux, http.MethodGet, fmt.Sprintf("/v1/members/%d", created.ID), "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected deleted member gone, got %d", rr.Code)
	}

	rr = doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/v1/members/%d", created.ID), "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("repeating the delete should 404, got %d", rr.Code)
	}
}

func TestMemberHandler_Delete_FreesEmailForReuse(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	created := createMember(t, mux, `{"name": "Budi Santoso", "email": "budi@example.com"}`)

	rr := doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/v1/members/%d", created.ID), "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}

	rr = doJSON(t, mux, http.MethodPost, "/v1/members",
		`{"name": "New Budi", "email": "budi@example.com"}`)
	if rr.Code != http.StatusCreated {
		t.Errorf("expected email reusable after delete, got %d: %s", rr.Code, rr.Body.String())
	}
}
