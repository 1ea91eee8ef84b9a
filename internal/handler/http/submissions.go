// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/utils"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) postUserState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, userIDParam)

	var state models.UserState
	if err := utils.ReadJSON(r, &state); err != nil {
		log.Err(err).Str("func", "*Handler.postUserState").Msg("invalid user state body")
		writeError(w, errInvalidBody)
		return
	}

	if err := h.services.SubmissionService.RecordUserState(r.Context(), userID, state); err != nil {
		log.Err(err).Str("func", "*Handler.postUserState").Str("user_id", userID).Send()
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) postReceipt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, userIDParam)

	var req models.ReceiptRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.postReceipt").Msg("invalid receipt body")
		writeError(w, errInvalidBody)
		return
	}

	if err := h.services.SubmissionService.RecordReceipt(r.Context(), userID, req); err != nil {
		log.Err(err).Str("func", "*Handler.postReceipt").Str("user_id", userID).Send()
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// getUserSubmissions lists everything the sandbox received for a user.
func (h *Handler) getUserSubmissions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, userIDParam)

	submissions, err := h.services.SubmissionService.Submissions(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserSubmissions").Str("user_id", userID).Send()
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, submissions, http.StatusOK); err != nil {
		log.Err(fmt.Errorf("write submissions: %w", err)).Send()
	}
}
