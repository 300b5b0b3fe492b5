package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"clinic-records-api/internal/auth"
	"clinic-records-api/internal/handler"
	"clinic-records-api/internal/middleware"
	"clinic-records-api/internal/model"
)

const testSecret = "test-secret"

// fakeStore is an in-memory stand-in for the Postgres store. It reports
// absence with pgx.ErrNoRows and duplicate emails with the same pg error
// the unique index would raise, so translation paths stay realistic.
type fakeStore struct {
	mu           sync.Mutex
	users        map[string]*model.User
	appointments map[string]*model.Appointment
	messages     []model.Message
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[string]*model.User),
		appointments: make(map[string]*model.Appointment),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeStore) UserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStore) UserByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStore) Doctors(_ context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, u := range f.users {
		if u.Role == model.RoleDoctor {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeStore) DoctorsByName(_ context.Context, firstName, lastName, department string) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, u := range f.users {
		if u.Role == model.RoleDoctor && u.FirstName == firstName &&
			u.LastName == lastName && u.DoctorDepartment == department {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateAppointment(_ context.Context, a *model.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.appointments[a.ID] = &cp
	return nil
}

func (f *fakeStore) Appointments(_ context.Context) ([]model.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Appointment
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeStore) AppointmentByID(_ context.Context, id string) (*model.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.appointments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStore) UpdateAppointmentStatus(_ context.Context, id, status string) (*model.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	a.Status = status
	cp := *a
	return &cp, nil
}

func (f *fakeStore) DeleteAppointment(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.appointments, id)
	return nil
}

func (f *fakeStore) CreateMessage(_ context.Context, m *model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeStore) Messages(_ context.Context) ([]model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Message(nil), f.messages...), nil
}

func (f *fakeStore) appointmentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}

type nopUploader struct{}

func (nopUploader) Upload(_ context.Context, _ string, _ io.Reader) (string, string, error) {
	return "avatar-1", "/uploads/avatar-1.png", nil
}

func newTestAPI(t *testing.T) (*fakeStore, http.Handler) {
	t.Helper()
	st := newFakeStore()
	h := handler.New(st, nopUploader{}, handler.Config{
		Secret:         testSecret,
		TokenTTL:       time.Hour,
		CookieTTL:      time.Hour,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
	return st, h.Routes(middleware.NewRateLimiter(1000, 1000))
}

func seedUser(t *testing.T, st *fakeStore, role model.Role, email string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword("securepassword")
	require.NoError(t, err)
	u := &model.User{
		ID:           uuid.New().String(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		Phone:        "1234567890",
		DOB:          "1990-01-01",
		Gender:       "Female",
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, st.CreateUser(context.Background(), u))
	return u
}

func seedDoctor(t *testing.T, st *fakeStore, firstName, lastName, department, email string) *model.User {
	t.Helper()
	d := seedUser(t, st, model.RoleDoctor, email)
	st.mu.Lock()
	st.users[d.ID].FirstName = firstName
	st.users[d.ID].LastName = lastName
	st.users[d.ID].DoctorDepartment = department
	st.mu.Unlock()
	d.FirstName, d.LastName, d.DoctorDepartment = firstName, lastName, department
	return d
}

func sessionCookie(t *testing.T, u *model.User, slot string) *http.Cookie {
	t.Helper()
	tok, err := auth.MakeToken(u.ID, testSecret, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: slot, Value: tok}
}

func doJSON(t *testing.T, api http.Handler, method, path string, payload any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)
	return rr, decodeBody(t, rr)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
