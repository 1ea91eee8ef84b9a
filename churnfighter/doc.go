// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package churnfighter is the client SDK of the churn-prevention backend.
//
// A host application creates one [ChurnFighter] with the platform
// capabilities it offers, calls [ChurnFighter.Initialize] with its
// credentials and then reports user attributes as they change. The SDK
// keeps a stable anonymous user id per installation, uploads the user state
// and the purchase receipt only when they changed since the last upload,
// watches purchase transactions and decodes retention actions delivered by
// push notification or universal link.
//
// Uploads are fire-and-forget: they run on a small worker pool and their
// failures are logged, never returned. Only [ChurnFighter.PrepareOfferSignature]
// waits for the backend.
//
//	cf := churnfighter.New(platform.Platform{
//	    PaymentQueue:    queue,
//	    ReceiptProvider: platform.NewFileReceiptProvider(receiptPath),
//	}, churnfighter.WithDatabase("churnfighter.db"))
//	if err := cf.Initialize(apiKey, secret); err != nil {
//	    return err
//	}
//	defer cf.Teardown()
//
//	cf.SetUserEmail("user@example.com")
package churnfighter
