package services

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/apierr"
  "github.com/panjiyudasetya/go-contacts/internal/repos"
  "github.com/panjiyudasetya/go-contacts/internal/requestdata"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

// Access rules, checked at the top of every service operation:
//   - staff users manage contacts and phone numbers
//   - any authenticated user reads the full contact list
//   - personal contact lists are owner-only
//   - group member writes need the admin role in that group

func requirePrincipal(ctx context.Context) (*requestdata.RequestData, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, apierr.Unauthorized("missing authenticated principal")
  }
  return rd, nil
}

func requireStaff(ctx context.Context) (*requestdata.RequestData, error) {
  rd, err := requirePrincipal(ctx)
  if err != nil {
    return nil, err
  }
  if !rd.IsStaff {
    return nil, apierr.Forbidden("staff access required")
  }
  return rd, nil
}

// requesterContact resolves the principal to their own Contact row.
// Not having one is a not-found, matching the upstream behavior of routes
// that operate on "my" data.
func requesterContact(ctx context.Context, tx *gorm.DB, contactRepo repos.ContactRepo) (*types.Contact, error) {
  rd, err := requirePrincipal(ctx)
  if err != nil {
    return nil, err
  }
  contacts, err := contactRepo.GetByUserIDs(ctx, tx, []uuid.UUID{rd.UserID})
  if err != nil {
    return nil, err
  }
  if len(contacts) == 0 {
    return nil, apierr.NotFound("requester has no contact record")
  }
  return contacts[0], nil
}

func requireGroupAdmin(ctx context.Context, tx *gorm.DB, membershipRepo repos.GroupMembershipRepo, groupID, contactID uuid.UUID) error {
  isAdmin, err := membershipRepo.HasRole(ctx, tx, groupID, contactID, types.GroupRoleAdmin)
  if err != nil {
    return err
  }
  if !isAdmin {
    return apierr.Forbidden("group admin role required")
  }
  return nil
}

func requireGroupMember(ctx context.Context, tx *gorm.DB, membershipRepo repos.GroupMembershipRepo, groupID, contactID uuid.UUID) error {
  isMember, err := membershipRepo.IsMember(ctx, tx, groupID, contactID)
  if err != nil {
    return err
  }
  if !isMember {
    return apierr.Forbidden("group membership required")
  }
  return nil
}
