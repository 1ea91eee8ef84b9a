// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/utils"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) postOfferSignature(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, userIDParam)

	var req models.OfferSignatureRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.postOfferSignature").Msg("invalid offer signature body")
		writeError(w, errInvalidBody)
		return
	}

	signature, err := h.services.OfferSigningService.Sign(r.Context(), userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.postOfferSignature").Str("user_id", userID).Send()
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, signature, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.postOfferSignature").Msg("failed to write signature")
	}
}

// getOfferKey serves the PEM public key verifying offer signatures.
func (h *Handler) getOfferKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := h.services.OfferSigningService.PublicKeyPEM()
	if err != nil {
		log.Err(err).Str("func", "*Handler.getOfferKey").Send()
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-pem-file")
	w.Write(key)
}
