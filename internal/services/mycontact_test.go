package services

import (
  "net/http"
  "testing"
)

func TestAddMyContact_AndList(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  bob := te.createUser(t, "bob", false)
  te.createContact(t, alice)
  bobContact := te.createContact(t, bob)

  if err := te.myContacts.AddMyContact(ctxFor(alice), nil, AddMyContactInput{
    ContactID: bobContact.ID,
    Starred:   true,
  }); err != nil {
    t.Fatalf("add my contact: %v", err)
  }

  views, err := te.myContacts.ListMyContacts(ctxFor(alice), nil)
  if err != nil {
    t.Fatalf("list my contacts: %v", err)
  }
  if len(views) != 1 {
    t.Fatalf("expected 1 entry, got %d", len(views))
  }
  if views[0].ID != bobContact.ID || !views[0].Starred {
    t.Fatalf("unexpected entry: %+v", views[0])
  }
}

func TestAddMyContact_RejectsSelf(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  aliceContact := te.createContact(t, alice)

  err := te.myContacts.AddMyContact(ctxFor(alice), nil, AddMyContactInput{ContactID: aliceContact.ID})
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", status)
  }
}

func TestAddMyContact_RejectsDuplicate(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  te.createContact(t, alice)
  bobContact := te.createContact(t, te.createUser(t, "bob", false))

  if err := te.myContacts.AddMyContact(ctxFor(alice), nil, AddMyContactInput{ContactID: bobContact.ID}); err != nil {
    t.Fatalf("add my contact: %v", err)
  }
  err := te.myContacts.AddMyContact(ctxFor(alice), nil, AddMyContactInput{ContactID: bobContact.ID})
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400 for duplicate, got %d", status)
  }
}

func TestMyContacts_InvisibleToOthers(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  carol := te.createUser(t, "carol", false)
  te.createContact(t, alice)
  te.createContact(t, carol)
  bobContact := te.createContact(t, te.createUser(t, "bob", false))

  if err := te.myContacts.AddMyContact(ctxFor(alice), nil, AddMyContactInput{ContactID: bobContact.ID}); err != nil {
    t.Fatalf("add my contact: %v", err)
  }

  views, err := te.myContacts.ListMyContacts(ctxFor(carol), nil)
  if err != nil {
    t.Fatalf("list my contacts: %v", err)
  }
  if len(views) != 0 {
    t.Fatalf("expected carol's list to be empty, got %d entries", len(views))
  }

  _, err = te.myContacts.GetMyContact(ctxFor(carol), nil, bobContact.ID)
  if status := apiStatus(t, err); status != http.StatusNotFound {
    t.Fatalf("expected 404, got %d", status)
  }
}

func TestUpdateMyContact_TogglesStarred(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  te.createContact(t, alice)
  bobContact := te.createContact(t, te.createUser(t, "bob", false))

  if err := te.myContacts.AddMyContact(ctxFor(alice), nil, AddMyContactInput{ContactID: bobContact.ID}); err != nil {
    t.Fatalf("add my contact: %v", err)
  }
  if err := te.myContacts.UpdateMyContact(ctxFor(alice), nil, bobContact.ID, UpdateMyContactInput{Starred: true}); err != nil {
    t.Fatalf("update my contact: %v", err)
  }

  view, err := te.myContacts.GetMyContact(ctxFor(alice), nil, bobContact.ID)
  if err != nil {
    t.Fatalf("get my contact: %v", err)
  }
  if !view.Starred {
    t.Fatalf("expected starred after update")
  }
}

func TestRemoveMyContact_KeepsContactRecord(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  te.createContact(t, alice)
  bobContact := te.createContact(t, te.createUser(t, "bob", false))

  if err := te.myContacts.AddMyContact(ctxFor(alice), nil, AddMyContactInput{ContactID: bobContact.ID}); err != nil {
    t.Fatalf("add my contact: %v", err)
  }
  if err := te.myContacts.RemoveMyContact(ctxFor(alice), nil, bobContact.ID); err != nil {
    t.Fatalf("remove my contact: %v", err)
  }

  _, err := te.myContacts.GetMyContact(ctxFor(alice), nil, bobContact.ID)
  if status := apiStatus(t, err); status != http.StatusNotFound {
    t.Fatalf("expected 404 after removal, got %d", status)
  }

  // The contact itself is untouched.
  if _, err := te.contacts.GetContact(ctxFor(alice), nil, bobContact.ID); err != nil {
    t.Fatalf("contact record should survive removal: %v", err)
  }
}

func TestMyContacts_RequiresOwnContactRecord(t *testing.T) {
  te := newTestEnv(t)
  // alice has a user but no contact row.
  alice := te.createUser(t, "alice", false)

  _, err := te.myContacts.ListMyContacts(ctxFor(alice), nil)
  if status := apiStatus(t, err); status != http.StatusNotFound {
    t.Fatalf("expected 404, got %d", status)
  }
}
