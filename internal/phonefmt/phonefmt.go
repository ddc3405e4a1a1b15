package phonefmt

import (
  "fmt"
  "strings"

  "github.com/nyaruka/phonenumbers"
)

// Parsed is a phone number broken into the pieces the API exposes.
type Parsed struct {
  E164                string
  NationalNumber      uint64
  CountryCode         int
  CountryCodeSource   int
}

// Parse accepts a phone number in international format ("+62812...").
// The raw input is kept during parsing so the country-code source survives.
func Parse(raw string) (*Parsed, error) {
  trimmed := strings.TrimSpace(raw)
  if trimmed == "" {
    return nil, fmt.Errorf("phone number is required")
  }
  num, err := phonenumbers.ParseAndKeepRawInput(trimmed, "ZZ")
  if err != nil {
    return nil, fmt.Errorf("parse phone number %q: %w", trimmed, err)
  }
  if !phonenumbers.IsValidNumber(num) {
    return nil, fmt.Errorf("invalid phone number %q", trimmed)
  }
  return &Parsed{
    E164:              phonenumbers.Format(num, phonenumbers.E164),
    NationalNumber:    num.GetNationalNumber(),
    CountryCode:       int(num.GetCountryCode()),
    CountryCodeSource: int(num.GetCountryCodeSource()),
  }, nil
}
