// Package extract recovers invoice fields from recognized text. Each field
// is an ordered chain of named matchers (labeled pattern first, bare shape
// second); the first match wins and an exhausted chain yields the Unknown
// sentinel for required fields or stays absent for contact fields.
package extract

import (
	"regexp"
	"strings"
)

// Unknown is the sentinel for required fields the matcher chain could not
// locate. It is distinct from an empty optional field: Unknown means
// extraction was attempted and failed.
const Unknown = "Unknown"

// Field is an optional extraction result.
type Field struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}

// OrUnknown renders a required field with the Unknown sentinel.
func (f Field) OrUnknown() string {
	if !f.Found {
		return Unknown
	}
	return f.Value
}

// OrEmpty renders an optional field, blank when absent.
func (f Field) OrEmpty() string {
	if !f.Found {
		return ""
	}
	return f.Value
}

// Fields is the extraction result for one document. RawText keeps the
// recognized text verbatim for audit and manual correction.
type Fields struct {
	BuyerName       Field  `json:"buyer_name"`
	InvoiceNumber   Field  `json:"invoice_number"`
	Amount          Field  `json:"amount"`
	Date            Field  `json:"date"`
	Company         Field  `json:"company"`
	Email           Field  `json:"email"`
	Phone           Field  `json:"phone"`
	ShippingAddress Field  `json:"shipping_address"`
	RawText         string `json:"raw_text"`
}

type matchFunc func(text string) (string, bool)

// chain folds matchers left to right; the first success wins.
func chain(fns ...matchFunc) matchFunc {
	return func(text string) (string, bool) {
		for _, fn := range fns {
			if value, ok := fn(text); ok {
				return value, true
			}
		}
		return "", false
	}
}

// pattern matches re against the text and returns the first capture group,
// or the whole match when the expression has no groups.
func pattern(re *regexp.Regexp) matchFunc {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		value := m[0]
		if len(m) > 1 {
			value = m[1]
		}
		return strings.TrimSpace(value), true
	}
}

// decorate post-processes a successful match.
func decorate(fn matchFunc, wrap func(string) string) matchFunc {
	return func(text string) (string, bool) {
		value, ok := fn(text)
		if !ok {
			return "", false
		}
		return wrap(value), true
	}
}

const monthNames = `(?:January|February|March|April|May|June|July|August|September|October|November|December)`

var (
	reInvoiceNumberLabeled = regexp.MustCompile(`(?i)Invoice Number:\s*(INV-\d+)`)
	reInvoiceNumberBare    = regexp.MustCompile(`(?i)INV-\d+`)

	reBuyerNameLabeled = regexp.MustCompile(`(?i)Buyer Name:\s*([^\n]+)`)
	reBuyerNameBare    = regexp.MustCompile(`(?i)Name:\s*([^\n]+)`)

	reAmountLabeled = regexp.MustCompile(`(?i)Amount Due:\s*\$?([\d,]+(?:\.\d{2})?)`)
	reAmountBare    = regexp.MustCompile(`\$\s*([\d,]+(?:\.\d{2})?)`)

	reDateLabeled = regexp.MustCompile(`(?i)Date:\s*(` + monthNames + `\s+\d{1,2},\s+\d{4})`)
	reDateBare    = regexp.MustCompile(`(?i)(` + monthNames + `\s+\d{1,2},\s+\d{4})`)

	reShippingAddress = regexp.MustCompile(`(?i)Shipping Address:\s*([^\n]+(?:\n[^\n]+)*)`)

	reCompanyLabeled      = regexp.MustCompile(`(?i)Company:\s*([^\n]+)`)
	reOrganizationLabeled = regexp.MustCompile(`(?i)Organization:\s*([^\n]+)`)

	reEmailLabeled = regexp.MustCompile(`(?i)Email:\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	reEmailBare    = regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)

	rePhoneLabeled = regexp.MustCompile(`(?i)Phone:\s*([\d][\d\s\-().]*)`)
	rePhoneAlt     = regexp.MustCompile(`(?i)Tel:\s*([\d][\d\s\-().]*)`)
)

// dollarize prefixes the bare numeric amount so both matcher branches
// produce the same display shape.
func dollarize(value string) string {
	return "$" + value
}

var (
	matchBuyerName       = chain(pattern(reBuyerNameLabeled), pattern(reBuyerNameBare))
	matchInvoiceNumber   = chain(pattern(reInvoiceNumberLabeled), pattern(reInvoiceNumberBare))
	matchAmount          = decorate(chain(pattern(reAmountLabeled), pattern(reAmountBare)), dollarize)
	matchDate            = chain(pattern(reDateLabeled), pattern(reDateBare))
	matchShippingAddress = chain(pattern(reShippingAddress))
	matchCompany         = chain(pattern(reCompanyLabeled), pattern(reOrganizationLabeled))
	matchEmail           = chain(pattern(reEmailLabeled), pattern(reEmailBare))
	matchPhone           = chain(pattern(rePhoneLabeled), pattern(rePhoneAlt))
)

func field(fn matchFunc, text string) Field {
	value, ok := fn(text)
	return Field{Value: value, Found: ok}
}

// Extract is a pure function of the recognized text; identical input yields
// identical output.
func Extract(text string) Fields {
	return Fields{
		BuyerName:       field(matchBuyerName, text),
		InvoiceNumber:   field(matchInvoiceNumber, text),
		Amount:          field(matchAmount, text),
		Date:            field(matchDate, text),
		Company:         field(matchCompany, text),
		Email:           field(matchEmail, text),
		Phone:           field(matchPhone, text),
		ShippingAddress: field(matchShippingAddress, text),
		RawText:         text,
	}
}
