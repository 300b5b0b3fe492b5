package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clinic-records-api/internal/auth"
	"clinic-records-api/internal/httperr"
	"clinic-records-api/internal/middleware"
	"clinic-records-api/internal/model"
)

type registerRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,min=2"`
	LastName  string `json:"lastName" validate:"omitempty,min=2"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,len=10"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender" validate:"omitempty,oneof=Male Female"`
	Password  string `json:"password" validate:"omitempty,min=12"`
	Role      string `json:"role" validate:"omitempty,oneof=Admin Patient Doctor"`
}

func (h *Handler) patientRegister(w http.ResponseWriter, r *http.Request) error {
	var req registerRequest
	_ = decodeJSON(r, &req)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" ||
		req.DOB == "" || req.Gender == "" || req.Password == "" || req.Role == "" {
		return httperr.New("Please fill the full form", http.StatusBadRequest)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	if _, err := h.store.UserByEmail(r.Context(), req.Email); err == nil {
		return httperr.New("User Already Registered", http.StatusBadRequest)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	u := &model.User{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DOB:          req.DOB,
		Gender:       req.Gender,
		PasswordHash: hash,
		Role:         model.Role(req.Role),
	}
	if err := h.store.CreateUser(r.Context(), u); err != nil {
		return err
	}

	return h.sendToken(w, u, "user Registered!")
}

type loginRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	_ = decodeJSON(r, &req)

	if req.Email == "" || req.Password == "" || req.ConfirmPassword == "" || req.Role == "" {
		return httperr.New("Please fill all the details", http.StatusBadRequest)
	}
	if req.Password != req.ConfirmPassword {
		return httperr.New("Password and Confirm Password Do Not Match", http.StatusBadRequest)
	}

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return httperr.New("User not found", http.StatusBadRequest)
		}
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return httperr.New("Invalid email or password", http.StatusBadRequest)
	}
	if model.Role(req.Role) != u.Role {
		return httperr.New("User with this role is not found", http.StatusBadRequest)
	}

	return h.sendToken(w, u, "user login Successfully!")
}

func (h *Handler) addNewAdmin(w http.ResponseWriter, r *http.Request) error {
	var req registerRequest
	_ = decodeJSON(r, &req)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" ||
		req.DOB == "" || req.Gender == "" || req.Password == "" {
		return httperr.New("Please fill the full form", http.StatusBadRequest)
	}
	req.Role = string(model.RoleAdmin)
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	if existing, err := h.store.UserByEmail(r.Context(), req.Email); err == nil {
		return httperr.New(fmt.Sprintf("%s with this email already exists!", existing.Role), http.StatusBadRequest)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DOB:          req.DOB,
		Gender:       req.Gender,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := h.store.CreateUser(r.Context(), admin); err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "New Admin Registered!",
	})
}

var allowedAvatarTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

func (h *Handler) addNewDoctor(w http.ResponseWriter, r *http.Request) error {
	file, header, err := r.FormFile("docAvatar")
	if err != nil {
		return httperr.New("Doctor Avatar Required!", http.StatusBadRequest)
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedAvatarTypes[contentType] {
		return httperr.New("File Format does not support!", http.StatusBadRequest)
	}

	req := registerRequest{
		FirstName: r.FormValue("firstName"),
		LastName:  r.FormValue("lastName"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		DOB:       r.FormValue("dob"),
		Gender:    r.FormValue("gender"),
		Password:  r.FormValue("password"),
		Role:      string(model.RoleDoctor),
	}
	department := r.FormValue("doctorDepartment")

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" ||
		req.DOB == "" || req.Gender == "" || req.Password == "" || department == "" {
		return httperr.New("Please provide full details!", http.StatusBadRequest)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	if existing, err := h.store.UserByEmail(r.Context(), req.Email); err == nil {
		return httperr.New(fmt.Sprintf("%s already registered with this email", existing.Role), http.StatusBadRequest)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	publicID, url, err := h.uploader.Upload(r.Context(), contentType, file)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	doctor := &model.User{
		ID:               uuid.New().String(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		DOB:              req.DOB,
		Gender:           req.Gender,
		PasswordHash:     hash,
		Role:             model.RoleDoctor,
		DoctorDepartment: department,
		AvatarPublicID:   publicID,
		AvatarURL:        url,
	}
	if err := h.store.CreateUser(r.Context(), doctor); err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "New Doctor Registered!",
		"doctor":  doctor,
	})
}

func (h *Handler) getAllDoctors(w http.ResponseWriter, r *http.Request) error {
	doctors, err := h.store.Doctors(r.Context())
	if err != nil {
		return err
	}
	if doctors == nil {
		doctors = []model.User{}
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"doctors": doctors,
	})
}

func (h *Handler) getUserDetails(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    middleware.UserFromContext(r.Context()),
	})
}

func (h *Handler) logoutAdmin(w http.ResponseWriter, r *http.Request) error {
	expireCookie(w, middleware.AdminCookie)
	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Admin logged out Successfully!",
	})
}

func (h *Handler) logoutPatient(w http.ResponseWriter, r *http.Request) error {
	expireCookie(w, middleware.PatientCookie)
	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Patient logged out Successfully!",
	})
}

// sendToken issues the session credential in the cookie slot matching
// the user's role, then echoes the user and token in the body.
func (h *Handler) sendToken(w http.ResponseWriter, u *model.User, message string) error {
	tok, err := auth.MakeToken(u.ID, h.cfg.Secret, h.cfg.TokenTTL)
	if err != nil {
		return err
	}
	name := middleware.PatientCookie
	if u.Role == model.RoleAdmin {
		name = middleware.AdminCookie
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.CookieTTL),
		HttpOnly: true,
	})
	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": message,
		"user":    u,
		"token":   tok,
	})
}

// logout overwrites the slot with an already-expired value
func expireCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now(),
		HttpOnly: true,
	})
}
