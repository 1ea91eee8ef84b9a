// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyReceipt     = errors.New("receipt is required")
	ErrReceiptNotBase64 = errors.New("receipt is not base64")
	ErrEmptyProductID   = errors.New("product id is required")
	ErrInvalidTimeZone  = errors.New("invalid time zone")
)
