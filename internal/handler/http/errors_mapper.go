// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-churn-fighter/internal/app"
	"github.com/MKhiriev/go-churn-fighter/internal/service"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
)

var errorStatusMap = map[error]int{
	errInvalidBody: http.StatusBadRequest,

	service.ErrEmptyUserID:                 http.StatusBadRequest,
	service.ErrInvalidReceipt:              http.StatusBadRequest,
	service.ErrEmptyProductID:              http.StatusBadRequest,
	service.ErrApplicationUsernameMismatch: http.StatusBadRequest,

	store.ErrSubmissionsNotFound: http.StatusNotFound,
}

var errorMessageMap = map[error]string{
	errInvalidBody: app.MsgInvalidDataProvided,

	service.ErrEmptyUserID:                 app.MsgNoUserIDProvided,
	service.ErrInvalidReceipt:              app.MsgInvalidReceipt,
	service.ErrEmptyProductID:              app.MsgNoProductIDProvided,
	service.ErrApplicationUsernameMismatch: app.MsgApplicationUsernameMismatch,

	store.ErrSubmissionsNotFound: app.MsgDataNotFound,
}

// writeError responds with the status and message mapped from err. Unmapped
// errors become 500 without leaking their text.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, messageFromError(err), statusFromError(err))
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
