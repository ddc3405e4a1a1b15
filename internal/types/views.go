package types

import (
  "time"

  "github.com/google/uuid"
)

// Response shapes for the HTTP surface. Field names and nesting are part of
// the public contract and must not change.

type PhoneNumberBody struct {
  ID                  uuid.UUID     `json:"id"`
  Number              uint64        `json:"number"`
  CountryCode         int           `json:"country_code"`
  CountryCodeSource   int           `json:"country_code_source"`
}

// PhoneView is the nested phone entry inside a contact payload.
type PhoneView struct {
  PhoneNumber         PhoneNumberBody `json:"phone_number"`
  Type                string          `json:"type"`
  IsPrimary           bool            `json:"is_primary"`
  CreatedAt           time.Time       `json:"created_at"`
  UpdatedAt           time.Time       `json:"updated_at"`
}

// PhoneDetailView is the standalone phone payload on the phone-numbers
// endpoints.
type PhoneDetailView struct {
  ID                  uuid.UUID       `json:"id"`
  PhoneNumber         struct {
    Number            uint64          `json:"number"`
    CountryCode       int             `json:"country_code"`
    CountryCodeSource int             `json:"country_code_source"`
  } `json:"phone_number"`
  PhoneType           string          `json:"phone_type"`
  IsPrimary           bool            `json:"is_primary"`
}

type ContactView struct {
  ID                uuid.UUID       `json:"id"`
  FirstName         string          `json:"first_name"`
  LastName          string          `json:"last_name"`
  Nickname          string          `json:"nickname"`
  Email             string          `json:"email"`
  Company           string          `json:"company"`
  Title             string          `json:"title"`
  PhoneNumbers      []PhoneView     `json:"phone_numbers"`
  Address           string          `json:"address"`
  CreatedAt         time.Time       `json:"created_at"`
  UpdatedAt         time.Time       `json:"updated_at"`
}

// MyContactView is a contact in the requester's personal list; starred
// comes from the ContactMembership row.
type MyContactView struct {
  ContactView
  Starred           bool            `json:"starred"`
}

// GroupMemberView is a contact inside a group; role, invited_by and
// joined_at come from the GroupMembership row.
type GroupMemberView struct {
  ContactView
  Role              string          `json:"role"`
  InvitedBy         uuid.UUID       `json:"invited_by"`
  JoinedAt          time.Time       `json:"joined_at"`
}

// NewContactView expects c.User and c.PhoneNumbers to be preloaded.
func NewContactView(c *Contact) ContactView {
  view := ContactView{
    ID:           c.ID,
    Nickname:     c.Nickname,
    Company:      c.Company,
    Title:        c.Title,
    Address:      c.Address,
    PhoneNumbers: make([]PhoneView, 0, len(c.PhoneNumbers)),
    CreatedAt:    c.CreatedAt,
    UpdatedAt:    c.UpdatedAt,
  }
  if c.User != nil {
    view.FirstName = c.User.FirstName
    view.LastName = c.User.LastName
    view.Email = c.User.Email
  }
  for _, p := range c.PhoneNumbers {
    view.PhoneNumbers = append(view.PhoneNumbers, NewPhoneView(p))
  }
  return view
}

func NewPhoneView(p *Phone) PhoneView {
  return PhoneView{
    PhoneNumber: PhoneNumberBody{
      ID:                p.ID,
      Number:            p.NationalNumber,
      CountryCode:       p.CountryCode,
      CountryCodeSource: p.CountryCodeSource,
    },
    Type:      p.PhoneType,
    IsPrimary: p.IsPrimary,
    CreatedAt: p.CreatedAt,
    UpdatedAt: p.UpdatedAt,
  }
}

func NewPhoneDetailView(p *Phone) PhoneDetailView {
  view := PhoneDetailView{
    ID:        p.ID,
    PhoneType: p.PhoneType,
    IsPrimary: p.IsPrimary,
  }
  view.PhoneNumber.Number = p.NationalNumber
  view.PhoneNumber.CountryCode = p.CountryCode
  view.PhoneNumber.CountryCodeSource = p.CountryCodeSource
  return view
}
