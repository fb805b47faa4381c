// Package i18n renders user-facing messages from a fixed English catalog,
// translating them on the fly for non-English locales. Placeholders use the
// {name} form and are substituted after translation; if the translation
// service mangles a placeholder token, substitution falls back to the English
// template so a raw "{amount}" never reaches a customer.
package i18n

import (
	"context"
	"strings"
)

// DefaultLang is the catalog's source language and final fallback.
const DefaultLang = "en"

// Key identifies a catalog message. Unknown keys render as their literal
// string value.
type Key string

// Response and notification message keys.
const (
	KeyUserNotFound            Key = "userNotFound"
	KeyUserIDExists            Key = "userIdExists"
	KeyUserAdded               Key = "userAdded"
	KeyPaymentAdded            Key = "paymentAdded"
	KeyUserDeleted             Key = "userDeleted"
	KeyUserMovedToTrash        Key = "userMovedToTrash"
	KeyUserRestored            Key = "userRestored"
	KeyUserPermanentlyDeleted  Key = "userPermanentlyDeleted"
	KeyInvalidCredentials      Key = "invalidCredentials"
	KeyPaymentExists           Key = "paymentExists"
	KeyPendingPaymentExists    Key = "pendingPaymentExists"
	KeyTransactionIDExists     Key = "transactionIdExists"
	KeyPaymentRequestSubmitted Key = "paymentRequestSubmitted"
	KeyPaymentApproved         Key = "paymentApproved"
	KeyPaymentRejected         Key = "paymentRejected"
	KeyLanguageUpdated         Key = "languageUpdated"
	KeyTransactionNotFound     Key = "transactionNotFound"
	KeyTransactionDecided      Key = "transactionAlreadyDecided"
	KeyUserNotDeleted          Key = "userNotDeleted"
	KeyUserAlreadyDeleted      Key = "userAlreadyDeleted"
	KeyUserNotInTrash          Key = "userNotInTrash"
	KeyDeviceRegistered        Key = "deviceRegistered"

	KeyWelcomeMessage       Key = "welcomeMessage"
	KeyPaymentRecorded      Key = "paymentRecorded"
	KeyPaymentRequestNotice Key = "paymentRequestPending"
	KeyPaymentApprovedNote  Key = "paymentApprovedNotification"
	KeyPaymentRejectedNote  Key = "paymentRejectedNotification"
)

var messages = map[Key]string{
	KeyUserNotFound:            "User not found",
	KeyUserIDExists:            "User ID already exists",
	KeyUserAdded:               "User added successfully",
	KeyPaymentAdded:            "Payment added successfully",
	KeyUserDeleted:             "User is deleted",
	KeyUserMovedToTrash:        "User moved to trash successfully",
	KeyUserRestored:            "User restored successfully",
	KeyUserPermanentlyDeleted:  "User permanently deleted",
	KeyInvalidCredentials:      "Invalid credentials",
	KeyPaymentExists:           "Payment for this month already exists",
	KeyPendingPaymentExists:    "A pending payment request already exists for this month",
	KeyTransactionIDExists:     "Transaction ID already exists",
	KeyPaymentRequestSubmitted: "Payment request submitted successfully",
	KeyPaymentApproved:         "Payment approved successfully",
	KeyPaymentRejected:         "Payment rejected successfully",
	KeyLanguageUpdated:         "Language updated successfully",
	KeyTransactionNotFound:     "Transaction not found",
	KeyTransactionDecided:      "Transaction has already been decided",
	KeyUserNotDeleted:          "User is not deleted",
	KeyUserAlreadyDeleted:      "User is already deleted",
	KeyUserNotInTrash:          "User is not in trash",
	KeyDeviceRegistered:        "Device registered successfully",

	KeyWelcomeMessage:       "Welcome to Nanjundeshwara Stores, {name}!",
	KeyPaymentRecorded:      "Your payment of ₹{amount} for month {month} has been recorded",
	KeyPaymentRequestNotice: "Your payment request of ₹{amount} for month {month} is pending approval",
	KeyPaymentApprovedNote:  "Your payment of ₹{amount} for month {month} has been approved",
	KeyPaymentRejectedNote:  "Your payment of ₹{amount} for month {month} has been rejected",
}

// Language is an entry of the statically supported language list.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages returns the languages offered in the UI. Other codes are
// still passed through to the translation service.
func SupportedLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "ta", Name: "Tamil"},
		{Code: "te", Name: "Telugu"},
		{Code: "kn", Name: "Kannada"},
		{Code: "hi", Name: "Hindi"},
	}
}

// Translator is the slice of the translation client the catalog needs.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) string
}

// Catalog renders messages in a target language using an injected translator.
type Catalog struct {
	translator Translator
}

// NewCatalog creates a Catalog backed by translator.
func NewCatalog(translator Translator) *Catalog {
	return &Catalog{translator: translator}
}

// Render looks up key's English template, translates it when lang is not
// English, and substitutes params. Substitution happens on the translated text
// only when every placeholder token survived translation; otherwise the
// English template is used so the parameters always appear.
func (c *Catalog) Render(ctx context.Context, key Key, lang string, params map[string]string) string {
	template, ok := messages[key]
	if !ok {
		template = string(key)
	}
	if lang == "" {
		lang = DefaultLang
	}

	rendered := template
	if lang != DefaultLang && c.translator != nil {
		translated := c.translator.Translate(ctx, template, DefaultLang, lang)
		if placeholdersIntact(translated, params) {
			rendered = translated
		}
	}

	for name, value := range params {
		rendered = strings.ReplaceAll(rendered, "{"+name+"}", value)
	}
	return rendered
}

func placeholdersIntact(text string, params map[string]string) bool {
	for name := range params {
		if !strings.Contains(text, "{"+name+"}") {
			return false
		}
	}
	return true
}
