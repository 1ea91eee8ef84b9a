// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/url"

// Payload keys and query parameters that carry encoded actions.
const (
	OfferPayloadKey   = "offer"
	PaymentPayloadKey = "payment"
)

// ActivityTypeBrowsingWeb is the activity type of a universal link opened
// from the web.
const ActivityTypeBrowsingWeb = "NSUserActivityTypeBrowsingWeb"

// NotificationContent is the custom user info of a delivered push
// notification.
type NotificationContent map[string]any

// UserActivity is the incoming reference of a universal link.
type UserActivity struct {
	ActivityType string
	WebpageURL   *url.URL
}
