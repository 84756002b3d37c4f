package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lightbnb/models"
	"lightbnb/repository"
)

// mock user repository backed by a map, seeded like the development
// database.
type mockUserRepo struct {
	users map[int64]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*models.User)}
}

func (m *mockUserRepo) seed(u models.User) {
	m.users[u.ID] = &u
}

func (m *mockUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByID(id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) CreateUser(user *models.User) error {
	existing, _ := m.GetUserByEmail(user.Email)
	if existing != nil {
		return repository.ErrDuplicateEmail
	}
	user.ID = int64(len(m.users) + 1)
	copied := *user
	m.users[copied.ID] = &copied
	return nil
}

func seededRepo() *mockUserRepo {
	repo := newMockUserRepo()
	repo.seed(models.User{
		ID:       3,
		Name:     "Dominic Parks",
		Email:    "victoriablackwell@outlook.com",
		Password: "$2a$10$FB/BOAVhpuLvpOREQVmvmezD4ED/.JBIDRh70tGevYzYzQgFId2u.",
	})
	return repo
}

func TestGetUser_ByEmailReturnsSeededRecord(t *testing.T) {
	h := &UserHandler{Repo: seededRepo()}

	req := httptest.NewRequest(http.MethodGet, "/users?email=victoriablackwell@outlook.com", nil)
	rr := httptest.NewRecorder()
	h.GetUser(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var got models.User
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if got.ID != 3 || got.Name != "Dominic Parks" || got.Email != "victoriablackwell@outlook.com" {
		t.Errorf("unexpected user: %+v", got)
	}
	if got.Password != "" {
		t.Error("password hash must not be exposed")
	}
}

func TestGetUser_UnknownEmailIsNotFound(t *testing.T) {
	h := &UserHandler{Repo: seededRepo()}

	req := httptest.NewRequest(http.MethodGet, "/users?email=nonexistentemail@example.com", nil)
	rr := httptest.NewRecorder()
	h.GetUser(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestGetUser_ByIDReturnsSameRecord(t *testing.T) {
	h := &UserHandler{Repo: seededRepo()}

	req := httptest.NewRequest(http.MethodGet, "/users?id=3", nil)
	rr := httptest.NewRecorder()
	h.GetUser(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var got models.User
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if got.ID != 3 || got.Email != "victoriablackwell@outlook.com" {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestGetUser_UnknownIDIsNotFound(t *testing.T) {
	h := &UserHandler{Repo: seededRepo()}

	req := httptest.NewRequest(http.MethodGet, "/users?id=9999", nil)
	rr := httptest.NewRecorder()
	h.GetUser(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestSignup_CreatesUserWithStoreAssignedID(t *testing.T) {
	repo := newMockUserRepo()
	h := &UserHandler{Repo: repo}

	body := `{"name":"Test User","email":"test@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Signup(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(repo.users))
	}

	var resp ApiResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success {
		t.Errorf("expected success, got %+v", resp)
	}
}

func TestSignup_DuplicateEmailCreatesNoRow(t *testing.T) {
	repo := seededRepo()
	h := &UserHandler{Repo: repo}

	body := `{"name":"Imposter","email":"victoriablackwell@outlook.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Signup(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected failure status, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), repository.ErrDuplicateEmail.Error()) {
		t.Errorf("expected duplicate error in response, got %s", rr.Body.String())
	}
	if len(repo.users) != 1 {
		t.Errorf("duplicate signup must not insert, store has %d rows", len(repo.users))
	}
}

func TestSignup_MissingFieldsRejected(t *testing.T) {
	h := &UserHandler{Repo: newMockUserRepo()}

	body := `{"name":"No Email","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Signup(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}
