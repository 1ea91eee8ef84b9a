// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/MKhiriev/go-churn-fighter/models"
)

// Field name constants restricting Validate to a subset of fields.
const (
	// FieldReceipt targets the base64 receipt of a receipt upload.
	FieldReceipt = "receipt"

	// FieldProductID targets the product of an offer signature request.
	FieldProductID = "product_id"

	// FieldTimeZone targets the IANA time zone of a user state upload. An
	// empty value is accepted.
	FieldTimeZone = "time_zone"
)

// SubmissionValidator validates the bodies of sandbox uploads:
// [models.ReceiptRequest], [models.OfferSignatureRequest] and
// [models.UserState], by value or by pointer.
type SubmissionValidator struct {
}

func NewSubmissionValidator() Validator {
	return &SubmissionValidator{}
}

func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReceiptRequest:
		return v.validateReceiptRequest(value, fields...)
	case *models.ReceiptRequest:
		return v.validateReceiptRequest(*value, fields...)

	case models.OfferSignatureRequest:
		return v.validateOfferSignatureRequest(value, fields...)
	case *models.OfferSignatureRequest:
		return v.validateOfferSignatureRequest(*value, fields...)

	case models.UserState:
		return v.validateUserState(value, fields...)
	case *models.UserState:
		return v.validateUserState(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SubmissionValidator) validateReceiptRequest(req models.ReceiptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReceipt}
	}

	for _, f := range fields {
		switch f {
		case FieldReceipt:
			if req.Receipt == "" {
				return ErrEmptyReceipt
			}
			if _, err := base64.StdEncoding.DecodeString(req.Receipt); err != nil {
				return fmt.Errorf("%w: %w", ErrReceiptNotBase64, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SubmissionValidator) validateOfferSignatureRequest(req models.OfferSignatureRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProductID}
	}

	for _, f := range fields {
		switch f {
		case FieldProductID:
			if req.ProductID == "" {
				return ErrEmptyProductID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SubmissionValidator) validateUserState(state models.UserState, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTimeZone}
	}

	for _, f := range fields {
		switch f {
		case FieldTimeZone:
			if state.TimeZone == nil || *state.TimeZone == "" {
				continue
			}
			if _, err := time.LoadLocation(*state.TimeZone); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidTimeZone, *state.TimeZone)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
