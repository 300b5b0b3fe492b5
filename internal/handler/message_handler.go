package handler

import (
	"net/http"

	"github.com/google/uuid"

	"clinic-records-api/internal/httperr"
	"clinic-records-api/internal/model"
)

type messageRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,min=2"`
	LastName  string `json:"lastName" validate:"omitempty,min=2"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,len=10"`
	Message   string `json:"message" validate:"omitempty,min=8"`
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) error {
	var req messageRequest
	_ = decodeJSON(r, &req)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Phone == "" || req.Message == "" {
		return httperr.New("Please fill the full form", http.StatusBadRequest)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	m := &model.Message{
		ID:        uuid.New().String(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}
	if err := h.store.CreateMessage(r.Context(), m); err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully",
	})
}

func (h *Handler) getAllMessages(w http.ResponseWriter, r *http.Request) error {
	messages, err := h.store.Messages(r.Context())
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []model.Message{}
	}
	// the dashboard reads the list from the "message" key
	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": messages,
	})
}
