package services

import (
  "net/http"
  "testing"
)

func TestCreatePhone_DeniedForNonStaff(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  contact := te.createContact(t, alice)

  _, err := te.phones.CreatePhone(ctxFor(alice), nil, contact.ID, PhoneInput{
    PhoneNumber: "+628123456789",
    PhoneType:   "cellphone",
  })
  if status := apiStatus(t, err); status != http.StatusForbidden {
    t.Fatalf("expected 403, got %d", status)
  }
}

func TestCreatePhone_RejectsInvalidType(t *testing.T) {
  te := newTestEnv(t)
  admin := te.createUser(t, "admin", true)
  contact := te.createContact(t, te.createUser(t, "alice", false))

  _, err := te.phones.CreatePhone(ctxFor(admin), nil, contact.ID, PhoneInput{
    PhoneNumber: "+628123456789",
    PhoneType:   "pager",
  })
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", status)
  }
}

func TestCreatePhone_RejectsUnparseableNumber(t *testing.T) {
  te := newTestEnv(t)
  admin := te.createUser(t, "admin", true)
  contact := te.createContact(t, te.createUser(t, "alice", false))

  _, err := te.phones.CreatePhone(ctxFor(admin), nil, contact.ID, PhoneInput{
    PhoneNumber: "12",
    PhoneType:   "cellphone",
  })
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", status)
  }
}

func TestCreatePhone_RejectsDuplicateNumber(t *testing.T) {
  te := newTestEnv(t)
  admin := te.createUser(t, "admin", true)
  contact := te.createContact(t, te.createUser(t, "alice", false))

  if _, err := te.phones.CreatePhone(ctxFor(admin), nil, contact.ID, PhoneInput{
    PhoneNumber: "+628123456789",
    PhoneType:   "cellphone",
  }); err != nil {
    t.Fatalf("create phone: %v", err)
  }

  // Same number, different formatting.
  _, err := te.phones.CreatePhone(ctxFor(admin), nil, contact.ID, PhoneInput{
    PhoneNumber: "+62 812-3456-789",
    PhoneType:   "telephone",
  })
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400 for duplicate number, got %d", status)
  }
}

func TestCreatePhone_RejectsSecondPrimary(t *testing.T) {
  te := newTestEnv(t)
  admin := te.createUser(t, "admin", true)
  contact := te.createContact(t, te.createUser(t, "alice", false))

  if _, err := te.phones.CreatePhone(ctxFor(admin), nil, contact.ID, PhoneInput{
    PhoneNumber: "+628123456789",
    PhoneType:   "cellphone",
    IsPrimary:   true,
  }); err != nil {
    t.Fatalf("create primary phone: %v", err)
  }

  _, err := te.phones.CreatePhone(ctxFor(admin), nil, contact.ID, PhoneInput{
    PhoneNumber: "+14155552671",
    PhoneType:   "telephone",
    IsPrimary:   true,
  })
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400 for second primary, got %d", status)
  }
}

func TestUpdatePhone_KeepingOwnPrimaryIsAllowed(t *testing.T) {
  te := newTestEnv(t)
  admin := te.createUser(t, "admin", true)
  contact := te.createContact(t, te.createUser(t, "alice", false))

  created, err := te.phones.CreatePhone(ctxFor(admin), nil, contact.ID, PhoneInput{
    PhoneNumber: "+628123456789",
    PhoneType:   "cellphone",
    IsPrimary:   true,
  })
  if err != nil {
    t.Fatalf("create phone: %v", err)
  }

  updated, err := te.phones.UpdatePhone(ctxFor(admin), nil, contact.ID, created.ID, PhoneInput{
    PhoneNumber: "+628123456789",
    PhoneType:   "telephone",
    IsPrimary:   true,
  })
  if err != nil {
    t.Fatalf("update phone: %v", err)
  }
  if updated.PhoneType != "telephone" || !updated.IsPrimary {
    t.Fatalf("unexpected phone after update: %+v", updated)
  }
}

func TestUpdatePhone_CannotStealPrimary(t *testing.T) {
  te := newTestEnv(t)
  admin := te.createUser(t, "admin", true)
  contact := te.createContact(t, te.createUser(t, "alice", false))

  if _, err := te.phones.CreatePhone(ctxFor(admin), nil, contact.ID, PhoneInput{
    PhoneNumber: "+628123456789",
    PhoneType:   "cellphone",
    IsPrimary:   true,
  }); err != nil {
    t.Fatalf("create primary phone: %v", err)
  }
  secondary, err := te.phones.CreatePhone(ctxFor(admin), nil, contact.ID, PhoneInput{
    PhoneNumber: "+14155552671",
    PhoneType:   "telephone",
  })
  if err != nil {
    t.Fatalf("create secondary phone: %v", err)
  }

  _, err = te.phones.UpdatePhone(ctxFor(admin), nil, contact.ID, secondary.ID, PhoneInput{
    PhoneNumber: "+14155552671",
    PhoneType:   "telephone",
    IsPrimary:   true,
  })
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", status)
  }
}

func TestDeletePhone_ScopedToContact(t *testing.T) {
  te := newTestEnv(t)
  admin := te.createUser(t, "admin", true)
  aliceContact := te.createContact(t, te.createUser(t, "alice", false))
  bobContact := te.createContact(t, te.createUser(t, "bob", false))

  phone, err := te.phones.CreatePhone(ctxFor(admin), nil, aliceContact.ID, PhoneInput{
    PhoneNumber: "+628123456789",
    PhoneType:   "cellphone",
  })
  if err != nil {
    t.Fatalf("create phone: %v", err)
  }

  // Deleting alice's phone through bob's contact must not find it.
  err = te.phones.DeletePhone(ctxFor(admin), nil, bobContact.ID, phone.ID)
  if status := apiStatus(t, err); status != http.StatusNotFound {
    t.Fatalf("expected 404, got %d", status)
  }

  if err := te.phones.DeletePhone(ctxFor(admin), nil, aliceContact.ID, phone.ID); err != nil {
    t.Fatalf("delete phone: %v", err)
  }
}
