package services

import (
  "net/http"
  "testing"

  "github.com/panjiyudasetya/go-contacts/internal/types"
)

func TestCreateGroup_CreatorBecomesAdmin(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  aliceContact := te.createContact(t, alice)

  group, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "Friends", Description: "people I like"})
  if err != nil {
    t.Fatalf("create group: %v", err)
  }
  if group.CreatedByID != aliceContact.ID {
    t.Fatalf("expected created_by %s, got %s", aliceContact.ID, group.CreatedByID)
  }

  members, err := te.groupMembers.ListMembers(ctxFor(alice), nil, group.ID)
  if err != nil {
    t.Fatalf("list members: %v", err)
  }
  if len(members) != 1 {
    t.Fatalf("expected 1 member, got %d", len(members))
  }
  m := members[0]
  if m.ID != aliceContact.ID || m.Role != types.GroupRoleAdmin {
    t.Fatalf("unexpected creator membership: %+v", m)
  }
  if m.InvitedBy != aliceContact.ID {
    t.Fatalf("creator should be their own inviter, got %s", m.InvitedBy)
  }
  if m.JoinedAt.IsZero() {
    t.Fatalf("joined_at not set")
  }
}

func TestCreateGroup_RequiresName(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  te.createContact(t, alice)

  _, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "   "})
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", status)
  }
}

func TestGroups_ScopedToCreatorAndMembers(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  bob := te.createUser(t, "bob", false)
  carol := te.createUser(t, "carol", false)
  te.createContact(t, alice)
  bobContact := te.createContact(t, bob)
  te.createContact(t, carol)

  group, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "Friends"})
  if err != nil {
    t.Fatalf("create group: %v", err)
  }
  if err := te.groupMembers.AddMember(ctxFor(alice), nil, group.ID, AddGroupMemberInput{ContactID: bobContact.ID}); err != nil {
    t.Fatalf("add member: %v", err)
  }

  // The member sees the group.
  if _, err := te.groups.GetGroup(ctxFor(bob), nil, group.ID); err != nil {
    t.Fatalf("member should see the group: %v", err)
  }
  bobGroups, err := te.groups.ListGroups(ctxFor(bob), nil)
  if err != nil {
    t.Fatalf("list groups: %v", err)
  }
  if len(bobGroups) != 1 {
    t.Fatalf("expected 1 group for bob, got %d", len(bobGroups))
  }

  // An outsider does not.
  _, err = te.groups.GetGroup(ctxFor(carol), nil, group.ID)
  if status := apiStatus(t, err); status != http.StatusNotFound {
    t.Fatalf("expected 404 for outsider, got %d", status)
  }
  carolGroups, err := te.groups.ListGroups(ctxFor(carol), nil)
  if err != nil {
    t.Fatalf("list groups: %v", err)
  }
  if len(carolGroups) != 0 {
    t.Fatalf("expected no groups for carol, got %d", len(carolGroups))
  }
}

func TestUpdateGroup_TracksUpdatedBy(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  aliceContact := te.createContact(t, alice)

  group, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "Friends"})
  if err != nil {
    t.Fatalf("create group: %v", err)
  }
  if group.UpdatedByID != nil {
    t.Fatalf("updated_by should start empty")
  }

  updated, err := te.groups.UpdateGroup(ctxFor(alice), nil, group.ID, GroupInput{Name: "Close friends"})
  if err != nil {
    t.Fatalf("update group: %v", err)
  }
  if updated.Name != "Close friends" {
    t.Fatalf("unexpected name: %q", updated.Name)
  }
  if updated.UpdatedByID == nil || *updated.UpdatedByID != aliceContact.ID {
    t.Fatalf("expected updated_by to track the editor")
  }
}

func TestDeleteGroup_CascadesMemberships(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  te.createContact(t, alice)
  bobContact := te.createContact(t, te.createUser(t, "bob", false))

  group, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "Friends"})
  if err != nil {
    t.Fatalf("create group: %v", err)
  }
  if err := te.groupMembers.AddMember(ctxFor(alice), nil, group.ID, AddGroupMemberInput{ContactID: bobContact.ID}); err != nil {
    t.Fatalf("add member: %v", err)
  }

  if err := te.groups.DeleteGroup(ctxFor(alice), group.ID); err != nil {
    t.Fatalf("delete group: %v", err)
  }

  _, err = te.groups.GetGroup(ctxFor(alice), nil, group.ID)
  if status := apiStatus(t, err); status != http.StatusNotFound {
    t.Fatalf("expected 404 after delete, got %d", status)
  }
}

func TestAddGroupMember_RequiresAdminRole(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  bob := te.createUser(t, "bob", false)
  te.createContact(t, alice)
  bobContact := te.createContact(t, bob)
  carolContact := te.createContact(t, te.createUser(t, "carol", false))

  group, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "Friends"})
  if err != nil {
    t.Fatalf("create group: %v", err)
  }
  if err := te.groupMembers.AddMember(ctxFor(alice), nil, group.ID, AddGroupMemberInput{ContactID: bobContact.ID}); err != nil {
    t.Fatalf("add member: %v", err)
  }

  // bob is a plain member, not an admin.
  err = te.groupMembers.AddMember(ctxFor(bob), nil, group.ID, AddGroupMemberInput{ContactID: carolContact.ID})
  if status := apiStatus(t, err); status != http.StatusForbidden {
    t.Fatalf("expected 403, got %d", status)
  }
}

func TestAddGroupMember_DefaultsToMemberRole(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  aliceContact := te.createContact(t, alice)
  bobContact := te.createContact(t, te.createUser(t, "bob", false))

  group, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "Friends"})
  if err != nil {
    t.Fatalf("create group: %v", err)
  }
  if err := te.groupMembers.AddMember(ctxFor(alice), nil, group.ID, AddGroupMemberInput{ContactID: bobContact.ID}); err != nil {
    t.Fatalf("add member: %v", err)
  }

  view, err := te.groupMembers.GetMember(ctxFor(alice), nil, group.ID, bobContact.ID)
  if err != nil {
    t.Fatalf("get member: %v", err)
  }
  if view.Role != types.GroupRoleMember {
    t.Fatalf("expected default role member, got %q", view.Role)
  }
  if view.InvitedBy != aliceContact.ID {
    t.Fatalf("expected inviter %s, got %s", aliceContact.ID, view.InvitedBy)
  }
}

func TestAddGroupMember_RejectsInvalidRole(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  te.createContact(t, alice)
  bobContact := te.createContact(t, te.createUser(t, "bob", false))

  group, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "Friends"})
  if err != nil {
    t.Fatalf("create group: %v", err)
  }

  err = te.groupMembers.AddMember(ctxFor(alice), nil, group.ID, AddGroupMemberInput{
    ContactID: bobContact.ID,
    Role:      "owner",
  })
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", status)
  }
}

func TestUpdateGroupMember_PromoteAndRemove(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  bob := te.createUser(t, "bob", false)
  te.createContact(t, alice)
  bobContact := te.createContact(t, bob)
  carolContact := te.createContact(t, te.createUser(t, "carol", false))

  group, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "Friends"})
  if err != nil {
    t.Fatalf("create group: %v", err)
  }
  if err := te.groupMembers.AddMember(ctxFor(alice), nil, group.ID, AddGroupMemberInput{ContactID: bobContact.ID}); err != nil {
    t.Fatalf("add member: %v", err)
  }

  if err := te.groupMembers.UpdateMember(ctxFor(alice), nil, group.ID, bobContact.ID, UpdateGroupMemberInput{Role: types.GroupRoleAdmin}); err != nil {
    t.Fatalf("promote member: %v", err)
  }

  // bob can now manage members.
  if err := te.groupMembers.AddMember(ctxFor(bob), nil, group.ID, AddGroupMemberInput{ContactID: carolContact.ID}); err != nil {
    t.Fatalf("admin add member: %v", err)
  }
  if err := te.groupMembers.RemoveMember(ctxFor(bob), nil, group.ID, carolContact.ID); err != nil {
    t.Fatalf("admin remove member: %v", err)
  }

  _, err = te.groupMembers.GetMember(ctxFor(alice), nil, group.ID, carolContact.ID)
  if status := apiStatus(t, err); status != http.StatusNotFound {
    t.Fatalf("expected 404 after removal, got %d", status)
  }
}

func TestListGroupMembers_HiddenOutsideGroup(t *testing.T) {
  te := newTestEnv(t)
  alice := te.createUser(t, "alice", false)
  carol := te.createUser(t, "carol", false)
  te.createContact(t, alice)
  te.createContact(t, carol)

  group, err := te.groups.CreateGroup(ctxFor(alice), GroupInput{Name: "Friends"})
  if err != nil {
    t.Fatalf("create group: %v", err)
  }

  _, err = te.groupMembers.ListMembers(ctxFor(carol), nil, group.ID)
  if status := apiStatus(t, err); status != http.StatusNotFound {
    t.Fatalf("expected 404 for outsider, got %d", status)
  }
}
