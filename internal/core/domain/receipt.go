package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Field names accepted by ReceiptRecord.WithField.
const (
	FieldDate            = "date"
	FieldTime            = "time"
	FieldAmount          = "amount"
	FieldSenderAccount   = "senderAccount"
	FieldReceiverAccount = "receiverAccount"
	FieldReceiverName    = "receiverName"
	FieldReceiverBank    = "receiverBank"
	FieldConcept         = "concept"
	FieldReference       = "reference"
	FieldFolio           = "folio"
	FieldTrackingKey     = "trackingKey"
	FieldEmail           = "email"
	FieldCircleColor     = "circleColor"
)

const (
	// DefaultCircleColor is the blue used for the receiver badge.
	DefaultCircleColor = "#2979ff"

	accountMaxDigits = 5
)

var nonDigitRe = regexp.MustCompile(`\D`)

// displayPrinter formats amounts for the rendered view (en-US grouping).
var displayPrinter = message.NewPrinter(language.AmericanEnglish)

// ReceiptRecord is the full set of editable fields for one receipt session.
// It is an immutable value: every edit goes through WithField, which returns
// a new record and never mutates the receiver.
type ReceiptRecord struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Amount          string `json:"amount"`
	SenderAccount   string `json:"senderAccount"`
	ReceiverAccount string `json:"receiverAccount"`
	ReceiverName    string `json:"receiverName"`
	ReceiverBank    string `json:"receiverBank"`
	Concept         string `json:"concept"`
	Reference       string `json:"reference"`
	Folio           string `json:"folio"`
	TrackingKey     string `json:"trackingKey"`
	Email           string `json:"email"`
	CircleColor     string `json:"circleColor"`
}

// WithField returns a copy of the record with one field replaced.
// Account fields are stripped of non-digits and truncated to 5 characters.
// Unknown field names are rejected.
func (r ReceiptRecord) WithField(name, value string) (ReceiptRecord, error) {
	next := r
	switch name {
	case FieldDate:
		next.Date = value
	case FieldTime:
		next.Time = value
	case FieldAmount:
		next.Amount = value
	case FieldSenderAccount:
		next.SenderAccount = sanitizeAccount(value)
	case FieldReceiverAccount:
		next.ReceiverAccount = sanitizeAccount(value)
	case FieldReceiverName:
		next.ReceiverName = value
	case FieldReceiverBank:
		next.ReceiverBank = value
	case FieldConcept:
		next.Concept = value
	case FieldReference:
		next.Reference = value
	case FieldFolio:
		next.Folio = value
	case FieldTrackingKey:
		next.TrackingKey = value
	case FieldEmail:
		next.Email = value
	case FieldCircleColor:
		next.CircleColor = value
	default:
		return r, fmt.Errorf("unknown receipt field %q", name)
	}
	return next, nil
}

// sanitizeAccount keeps only decimal digits and truncates to the account length.
func sanitizeAccount(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) > accountMaxDigits {
		digits = digits[:accountMaxDigits]
	}
	return digits
}

// DisplayAmount renders the amount with thousands grouping and exactly two
// decimal places. Unparseable amounts display as "0.00".
func (r ReceiptRecord) DisplayAmount() string {
	f, err := strconv.ParseFloat(strings.TrimSpace(r.Amount), 64)
	if err != nil {
		f = 0
	}
	return displayPrinter.Sprint(number.Decimal(roundCentsHalfUp(f),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// roundCentsHalfUp rounds to two decimal places on the shortest decimal
// representation, so "10.555" displays as 10.56 even though the nearest
// float64 sits just below the midpoint.
func roundCentsHalfUp(f float64) float64 {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= 2 {
		return f
	}

	truncated, err := strconv.ParseFloat(s[:dot+3], 64)
	if err != nil {
		return f
	}
	if s[dot+3] >= '5' {
		cent := 0.01
		if f < 0 {
			cent = -0.01
		}
		return truncated + cent
	}
	return truncated
}

// MaskedSenderAccount returns the sender account as shown on the receipt.
func (r ReceiptRecord) MaskedSenderAccount() string { return maskAccount(r.SenderAccount) }

// MaskedReceiverAccount returns the receiver account as shown on the receipt.
func (r ReceiptRecord) MaskedReceiverAccount() string { return maskAccount(r.ReceiverAccount) }

func maskAccount(account string) string {
	if len(account) > accountMaxDigits {
		account = account[len(account)-accountMaxDigits:]
	}
	return "•" + account
}

// ReceiverInitials returns up to two uppercased characters for the badge.
func (r ReceiptRecord) ReceiverInitials() string {
	name := strings.TrimSpace(r.ReceiverName)
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
