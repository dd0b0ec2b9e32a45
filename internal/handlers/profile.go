package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/httpx"
	"github.com/vijay-heerarajan/billing-app/internal/models"
	"github.com/vijay-heerarajan/billing-app/internal/repository"
)

type ProfileHandler struct {
	users *repository.Users
	log   logrus.FieldLogger
}

func NewProfileHandler(users *repository.Users, log logrus.FieldLogger) *ProfileHandler {
	return &ProfileHandler{users: users, log: log}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r)
	if !sess.Active() {
		writeError(w, h.log, "Profile.Get", repository.ErrNoActiveUser)
		return
	}
	h.respond(w, r, sess.User.ID)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r)
	if !sess.Active() {
		writeError(w, h.log, "Profile.Update", repository.ErrNoActiveUser)
		return
	}
	var upd models.ProfileUpdate
	if !decodeValid(w, r, &upd) {
		return
	}
	ok, err := h.users.UpdateProfile(r.Context(), sess.User.ID, upd)
	if err != nil {
		writeError(w, h.log, "Profile.Update", err)
		return
	}
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "user not found", nil)
		return
	}
	h.respond(w, r, sess.User.ID)
}

func (h *ProfileHandler) respond(w http.ResponseWriter, r *http.Request, id string) {
	p, ok, err := h.users.Profile(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "Profile", err)
		return
	}
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "user not found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}
