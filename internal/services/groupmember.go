package services

import (
  "context"
  "fmt"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/apierr"
  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/repos"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type AddGroupMemberInput struct {
  ContactID uuid.UUID `json:"contact"`
  Role      string    `json:"role"`
}

type UpdateGroupMemberInput struct {
  Role string `json:"role"`
}

// GroupMemberService manages contacts inside a group. Reads need a
// membership in the group; writes need the admin role.
type GroupMemberService interface {
  ListMembers(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) ([]types.GroupMemberView, error)
  GetMember(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) (*types.GroupMemberView, error)
  AddMember(ctx context.Context, tx *gorm.DB, groupID uuid.UUID, input AddGroupMemberInput) error
  UpdateMember(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID, input UpdateGroupMemberInput) error
  RemoveMember(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) error
}

type groupMemberService struct {
  db             *gorm.DB
  log            *logger.Logger
  contactRepo    repos.ContactRepo
  groupRepo      repos.GroupRepo
  membershipRepo repos.GroupMembershipRepo
}

func NewGroupMemberService(
  db *gorm.DB,
  baseLog *logger.Logger,
  contactRepo repos.ContactRepo,
  groupRepo repos.GroupRepo,
  membershipRepo repos.GroupMembershipRepo,
) GroupMemberService {
  serviceLog := baseLog.With("service", "GroupMemberService")
  return &groupMemberService{
    db:             db,
    log:            serviceLog,
    contactRepo:    contactRepo,
    groupRepo:      groupRepo,
    membershipRepo: membershipRepo,
  }
}

func (gms *groupMemberService) ListMembers(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) ([]types.GroupMemberView, error) {
  if _, err := gms.accessibleGroup(ctx, tx, groupID); err != nil {
    return nil, err
  }

  memberships, err := gms.membershipRepo.ListByGroupIDs(ctx, tx, []uuid.UUID{groupID})
  if err != nil {
    return nil, fmt.Errorf("list memberships: %w", err)
  }
  return gms.memberViews(ctx, tx, memberships)
}

func (gms *groupMemberService) GetMember(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) (*types.GroupMemberView, error) {
  me, err := gms.accessibleGroup(ctx, tx, groupID)
  if err != nil {
    return nil, err
  }
  if err := requireGroupMember(ctx, tx, gms.membershipRepo, groupID, me.ID); err != nil {
    return nil, err
  }

  membership, err := gms.membershipRepo.GetByGroupAndContact(ctx, tx, groupID, contactID)
  if err != nil {
    return nil, fmt.Errorf("load membership: %w", err)
  }
  if membership == nil {
    return nil, apierr.NotFound("contact %s is not in group %s", contactID, groupID)
  }

  views, err := gms.memberViews(ctx, tx, []*types.GroupMembership{membership})
  if err != nil {
    return nil, err
  }
  if len(views) == 0 {
    return nil, apierr.NotFound("contact %s not found", contactID)
  }
  return &views[0], nil
}

func (gms *groupMemberService) AddMember(ctx context.Context, tx *gorm.DB, groupID uuid.UUID, input AddGroupMemberInput) error {
  me, err := gms.accessibleGroup(ctx, tx, groupID)
  if err != nil {
    return err
  }
  if err := requireGroupAdmin(ctx, tx, gms.membershipRepo, groupID, me.ID); err != nil {
    return err
  }

  if input.ContactID == uuid.Nil {
    return apierr.Validation("contact is required")
  }
  role := input.Role
  if role == "" {
    role = types.GroupRoleMember
  }
  if !types.ValidGroupRole(role) {
    return apierr.Validation("role must be admin or member")
  }

  contacts, err := gms.contactRepo.GetByIDs(ctx, tx, []uuid.UUID{input.ContactID})
  if err != nil {
    return fmt.Errorf("load contact: %w", err)
  }
  if len(contacts) == 0 {
    return apierr.Validation("contact %s does not exist", input.ContactID)
  }

  existing, err := gms.membershipRepo.GetByGroupAndContact(ctx, tx, groupID, input.ContactID)
  if err != nil {
    return fmt.Errorf("load membership: %w", err)
  }
  if existing != nil {
    return apierr.Validation("contact %s is already in group %s", input.ContactID, groupID)
  }

  membership := &types.GroupMembership{
    ID:        uuid.New(),
    GroupID:   groupID,
    ContactID: input.ContactID,
    Role:      role,
    InviterID: me.ID,
    JoinedAt:  time.Now(),
  }
  if _, err := gms.membershipRepo.Create(ctx, tx, []*types.GroupMembership{membership}); err != nil {
    gms.log.Error("AddMember failed", "error", err)
    return fmt.Errorf("create membership: %w", err)
  }
  return nil
}

func (gms *groupMemberService) UpdateMember(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID, input UpdateGroupMemberInput) error {
  me, err := gms.accessibleGroup(ctx, tx, groupID)
  if err != nil {
    return err
  }
  if err := requireGroupAdmin(ctx, tx, gms.membershipRepo, groupID, me.ID); err != nil {
    return err
  }
  if !types.ValidGroupRole(input.Role) {
    return apierr.Validation("role must be admin or member")
  }

  membership, err := gms.membershipRepo.GetByGroupAndContact(ctx, tx, groupID, contactID)
  if err != nil {
    return fmt.Errorf("load membership: %w", err)
  }
  if membership == nil {
    return apierr.NotFound("contact %s is not in group %s", contactID, groupID)
  }

  if err := gms.membershipRepo.UpdateRole(ctx, tx, groupID, contactID, input.Role); err != nil {
    gms.log.Error("UpdateMember failed", "error", err)
    return fmt.Errorf("update membership: %w", err)
  }
  return nil
}

func (gms *groupMemberService) RemoveMember(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) error {
  me, err := gms.accessibleGroup(ctx, tx, groupID)
  if err != nil {
    return err
  }
  if err := requireGroupAdmin(ctx, tx, gms.membershipRepo, groupID, me.ID); err != nil {
    return err
  }

  membership, err := gms.membershipRepo.GetByGroupAndContact(ctx, tx, groupID, contactID)
  if err != nil {
    return fmt.Errorf("load membership: %w", err)
  }
  if membership == nil {
    return apierr.NotFound("contact %s is not in group %s", contactID, groupID)
  }

  if err := gms.membershipRepo.DeleteByGroupAndContact(ctx, tx, groupID, contactID); err != nil {
    gms.log.Error("RemoveMember failed", "error", err)
    return fmt.Errorf("delete membership: %w", err)
  }
  return nil
}

// accessibleGroup resolves the requester's contact and checks the group is
// in their accessible scope. Outside that scope the group does not exist
// for them, hence not-found rather than forbidden.
func (gms *groupMemberService) accessibleGroup(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) (*types.Contact, error) {
  me, err := requesterContact(ctx, tx, gms.contactRepo)
  if err != nil {
    return nil, err
  }
  group, err := gms.groupRepo.GetAccessibleByID(ctx, tx, me.ID, groupID)
  if err != nil {
    return nil, fmt.Errorf("load group: %w", err)
  }
  if group == nil {
    return nil, apierr.NotFound("group %s not found", groupID)
  }
  return me, nil
}

func (gms *groupMemberService) memberViews(ctx context.Context, tx *gorm.DB, memberships []*types.GroupMembership) ([]types.GroupMemberView, error) {
  contactIDs := make([]uuid.UUID, 0, len(memberships))
  byContact := make(map[uuid.UUID]*types.GroupMembership, len(memberships))
  for _, m := range memberships {
    contactIDs = append(contactIDs, m.ContactID)
    byContact[m.ContactID] = m
  }

  contacts, err := gms.contactRepo.GetByIDs(ctx, tx, contactIDs)
  if err != nil {
    return nil, fmt.Errorf("load contacts: %w", err)
  }

  views := make([]types.GroupMemberView, 0, len(contacts))
  for _, contact := range contacts {
    m := byContact[contact.ID]
    if m == nil {
      continue
    }
    views = append(views, types.GroupMemberView{
      ContactView: types.NewContactView(contact),
      Role:        m.Role,
      InvitedBy:   m.InviterID,
      JoinedAt:    m.JoinedAt,
    })
  }
  return views, nil
}
