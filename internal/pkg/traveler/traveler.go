// Package traveler validates passenger drafts before they may progress in the
// booking flow and sanitizes them into the exact shape the order-creation
// endpoint accepts.
package traveler

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
	"github.com/tripway/flight-booking-service/internal/pkg/exception"
)

var (
	callingCodePattern = regexp.MustCompile(`^[0-9]{1,4}$`)
	countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)
	nonNumericPattern  = regexp.MustCompile(`[^0-9]`)
)

// KnownCallingCodes is the list of country calling codes offered by the
// passenger form.
var KnownCallingCodes = map[string]string{
	"1":   "USA/Canada",
	"27":  "South Africa",
	"33":  "France",
	"44":  "UK",
	"49":  "Germany",
	"61":  "Australia",
	"81":  "Japan",
	"91":  "India",
	"234": "Nigeria",
	"254": "Kenya",
}

func invalid(field, reason string) error {
	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("%s: %s", field, reason),
	}
}

// Validate checks a traveler draft. Country codes are expected uppercase here:
// normalization happens at input time via Normalize, not at submission time,
// so validation and display stay consistent.
func Validate(t amadeus.Traveler) error {
	if t.Name.FirstName == "" {
		return invalid("firstName", "is required")
	}

	if t.Name.LastName == "" {
		return invalid("lastName", "is required")
	}

	if t.DateOfBirth == "" {
		return invalid("dateOfBirth", "is required")
	}

	if t.Gender == "" {
		return invalid("gender", "is required")
	}

	if t.Contact.EmailAddress == "" {
		return invalid("emailAddress", "is required")
	}

	if len(t.Contact.Phones) == 0 {
		return invalid("phones", "at least one phone is required")
	}

	for _, phone := range t.Contact.Phones {
		if phone.Number == "" {
			return invalid("phone number", "is required")
		}

		code := phone.CountryCallingCode
		if !callingCodePattern.MatchString(code) {
			return invalid("countryCallingCode",
				"must be 1-4 digits, e.g. 33 for France, 254 for Kenya")
		}

		if _, ok := KnownCallingCodes[code]; !ok {
			return invalid("countryCallingCode", fmt.Sprintf("unknown calling code %q", code))
		}
	}

	if len(t.Documents) == 0 {
		return invalid("documents", "at least one travel document is required")
	}

	for _, doc := range t.Documents {
		if doc.DocumentType == "" {
			return invalid("documentType", "is required")
		}

		if doc.Number == "" {
			return invalid("document number", "is required")
		}

		if !countryCodePattern.MatchString(doc.IssuanceCountry) {
			return invalid("issuanceCountry", "must be a 2-letter country code")
		}

		if !countryCodePattern.MatchString(doc.Nationality) {
			return invalid("nationality", "must be a 2-letter country code")
		}
	}

	return nil
}

// Normalize uppercases document country codes on input so that validation and
// every later display see the same values.
func Normalize(t amadeus.Traveler) amadeus.Traveler {
	for i := range t.Documents {
		t.Documents[i].IssuanceCountry = strings.ToUpper(strings.TrimSpace(t.Documents[i].IssuanceCountry))
		t.Documents[i].Nationality = strings.ToUpper(strings.TrimSpace(t.Documents[i].Nationality))
	}

	return t
}

// Sanitize prepares travelers for submission: non-numeric characters are
// stripped from phone calling codes and document country codes are
// uppercased. The input slice is not modified.
func Sanitize(travelers []amadeus.Traveler) []amadeus.Traveler {
	sanitized := make([]amadeus.Traveler, len(travelers))

	for i, t := range travelers {
		phones := make([]amadeus.Phone, len(t.Contact.Phones))
		for j, phone := range t.Contact.Phones {
			phone.CountryCallingCode = nonNumericPattern.ReplaceAllString(phone.CountryCallingCode, "")
			phones[j] = phone
		}
		t.Contact.Phones = phones

		docs := make([]amadeus.Document, len(t.Documents))
		for j, doc := range t.Documents {
			doc.IssuanceCountry = strings.ToUpper(doc.IssuanceCountry)
			doc.Nationality = strings.ToUpper(doc.Nationality)
			docs[j] = doc
		}
		t.Documents = docs

		sanitized[i] = t
	}

	return sanitized
}
