// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/go-playground/validator/v10"
)

// actionKeys is the lookup order shared by both transports.
var actionKeys = []string{models.OfferPayloadKey, models.PaymentPayloadKey}

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

type actionDecoder struct {
	validate *validator.Validate
	logger   *logger.Logger
}

// NewActionDecoder returns the [ActionDecoder]. Malformed input is logged at
// debug level and never surfaces as an error.
func NewActionDecoder(logger *logger.Logger) ActionDecoder {
	return &actionDecoder{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (d *actionDecoder) Decode(raw string) (models.Action, bool) {
	data, ok := decodeBase64(raw)
	if !ok {
		d.logger.Debug().Str("func", "actionDecoder.Decode").Msg("payload is not base64")
		return nil, false
	}

	var envelope struct {
		Type *models.ActionType `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		d.logger.Debug().Err(err).Str("func", "actionDecoder.Decode").Msg("payload is not a json object")
		return nil, false
	}

	if envelope.Type != nil {
		action, err := d.decodeVariant(*envelope.Type, data)
		if err != nil {
			d.logger.Debug().Err(err).
				Str("func", "actionDecoder.Decode").
				Str("type", string(*envelope.Type)).
				Msg("payload rejected")
			return nil, false
		}
		return action, true
	}

	for _, t := range []models.ActionType{models.ActionTypeOffer, models.ActionTypePayment} {
		if action, err := d.decodeVariant(t, data); err == nil {
			return action, true
		}
	}

	d.logger.Debug().Str("func", "actionDecoder.Decode").Msg("payload matches no action schema")
	return nil, false
}

func (d *actionDecoder) decodeVariant(t models.ActionType, data []byte) (models.Action, error) {
	var action models.Action
	switch t {
	case models.ActionTypeOffer:
		action = &models.Offer{}
	case models.ActionTypePayment:
		action = &models.PaymentDetailsUpdate{}
	default:
		return nil, errUnknownActionType
	}

	if err := json.Unmarshal(data, action); err != nil {
		return nil, err
	}
	if err := d.validate.Struct(action); err != nil {
		return nil, err
	}

	return action, nil
}

func (d *actionDecoder) DecodeFromNotification(content models.NotificationContent) (models.Action, bool) {
	for _, key := range actionKeys {
		raw, ok := content[key].(string)
		if !ok {
			continue
		}
		if action, ok := d.Decode(raw); ok {
			return action, true
		}
	}
	return nil, false
}

func (d *actionDecoder) DecodeFromUniversalLink(activity models.UserActivity) (models.Action, bool) {
	if activity.ActivityType != models.ActivityTypeBrowsingWeb || activity.WebpageURL == nil {
		return nil, false
	}

	query := activity.WebpageURL.Query()
	for _, key := range actionKeys {
		raw := query.Get(key)
		if raw == "" {
			continue
		}
		if action, ok := d.Decode(raw); ok {
			return action, true
		}
	}
	return nil, false
}

// decodeBase64 accepts padded and unpadded standard or URL-safe input. Query
// decoding turns '+' into ' ', so spaces are mapped back first.
func decodeBase64(raw string) ([]byte, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), " ", "+")
	if raw == "" {
		return nil, false
	}

	for _, enc := range base64Encodings {
		if data, err := enc.DecodeString(raw); err == nil {
			return data, true
		}
	}
	return nil, false
}
