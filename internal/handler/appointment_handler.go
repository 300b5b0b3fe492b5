package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clinic-records-api/internal/httperr"
	"clinic-records-api/internal/middleware"
	"clinic-records-api/internal/model"
)

type appointmentRequest struct {
	FirstName       string `json:"firstName" validate:"omitempty,min=2"`
	LastName        string `json:"lastName" validate:"omitempty,min=2"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" validate:"omitempty,len=10"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender" validate:"omitempty,oneof=Male Female"`
	AppointmentDate string `json:"appointment_date"`
	Department      string `json:"department"`
	DoctorFirstName string `json:"doctor_firstName"`
	DoctorLastName  string `json:"doctor_lastName"`
	HasVisited      bool   `json:"hasVisited"`
	Address         string `json:"address"`
}

func (h *Handler) postAppointment(w http.ResponseWriter, r *http.Request) error {
	var req appointmentRequest
	_ = decodeJSON(r, &req)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" ||
		req.DOB == "" || req.Gender == "" || req.AppointmentDate == "" ||
		req.Department == "" || req.DoctorFirstName == "" || req.DoctorLastName == "" ||
		req.Address == "" {
		return httperr.New("Please fill full form!", http.StatusBadRequest)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	doctors, err := h.store.DoctorsByName(r.Context(), req.DoctorFirstName, req.DoctorLastName, req.Department)
	if err != nil {
		return err
	}
	if len(doctors) == 0 {
		return httperr.New("Doctor not found!", http.StatusNotFound)
	}
	// two doctors sharing a name and department cannot be told apart by
	// this form, so booking refuses rather than guessing
	if len(doctors) > 1 {
		return httperr.New("The selected doctors have overlapping appointments. Please choose a different time or adjust the schedule!", http.StatusNotFound)
	}

	patient := middleware.UserFromContext(r.Context())
	appointment := &model.Appointment{
		ID:              uuid.New().String(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		DOB:             req.DOB,
		Gender:          req.Gender,
		AppointmentDate: req.AppointmentDate,
		Department:      req.Department,
		DoctorFirstName: doctors[0].FirstName,
		DoctorLastName:  doctors[0].LastName,
		HasVisited:      req.HasVisited,
		Address:         req.Address,
		DoctorID:        doctors[0].ID,
		PatientID:       patient.ID,
		Status:          model.StatusPending,
	}
	if err := h.store.CreateAppointment(r.Context(), appointment); err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Appointment sent successfully",
	})
}

func (h *Handler) getAllAppointments(w http.ResponseWriter, r *http.Request) error {
	appointments, err := h.store.Appointments(r.Context())
	if err != nil {
		return err
	}
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"appointments": appointments,
	})
}

type statusRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=pending Accepted Rejected"`
}

func (h *Handler) updateAppointmentStatus(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	existing, err := h.store.AppointmentByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return httperr.New("Appointment not found!", http.StatusBadRequest)
		}
		return err
	}

	var req statusRequest
	_ = decodeJSON(r, &req)
	if err := h.validate.Struct(req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = existing.Status
	}

	updated, err := h.store.UpdateAppointmentStatus(r.Context(), id, req.Status)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "Appointment status updated",
		"appointment": updated,
	})
}

func (h *Handler) deleteAppointment(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	if _, err := h.store.AppointmentByID(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return httperr.New("Appointment not found!", http.StatusNotFound)
		}
		return err
	}
	if err := h.store.DeleteAppointment(r.Context(), id); err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Appointment deleted successfully",
	})
}
