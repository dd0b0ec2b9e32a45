package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/auth"
	"github.com/vijay-heerarajan/billing-app/httpx"
	"github.com/vijay-heerarajan/billing-app/internal/models"
	"github.com/vijay-heerarajan/billing-app/internal/repository"
)

type AuthHandler struct {
	users    *repository.Users
	sessions *auth.Manager
	log      logrus.FieldLogger
}

func NewAuthHandler(users *repository.Users, sessions *auth.Manager, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeValid(w, r, &req) {
		return
	}
	user, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.log, "Login", err)
		return
	}
	h.sessions.CreateSession(w, user.ID)
	h.log.WithField("user", user.ID).Info("user logged in")
	httpx.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterData
	if !decodeValid(w, r, &req) {
		return
	}
	user, err := h.users.Register(r.Context(), req)
	if err != nil {
		writeError(w, h.log, "Signup", err)
		return
	}
	h.sessions.CreateSession(w, user.ID)
	h.log.WithField("user", user.ID).Info("user registered")
	httpx.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearSession(w)
	httpx.NoContent(w)
}
