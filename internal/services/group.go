package services

import (
  "context"
  "fmt"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/apierr"
  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/repos"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type GroupInput struct {
  Name        string `json:"name"`
  Description string `json:"description"`
}

// GroupService manages contact groups. Visibility is the accessible scope:
// groups the requester's contact created or is a member of.
type GroupService interface {
  ListGroups(ctx context.Context, tx *gorm.DB) ([]*types.Group, error)
  GetGroup(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) (*types.Group, error)
  CreateGroup(ctx context.Context, input GroupInput) (*types.Group, error)
  UpdateGroup(ctx context.Context, tx *gorm.DB, groupID uuid.UUID, input GroupInput) (*types.Group, error)
  // DeleteGroup removes the group and all of its memberships.
  DeleteGroup(ctx context.Context, groupID uuid.UUID) error
}

type groupService struct {
  db             *gorm.DB
  log            *logger.Logger
  contactRepo    repos.ContactRepo
  groupRepo      repos.GroupRepo
  membershipRepo repos.GroupMembershipRepo
}

func NewGroupService(
  db *gorm.DB,
  baseLog *logger.Logger,
  contactRepo repos.ContactRepo,
  groupRepo repos.GroupRepo,
  membershipRepo repos.GroupMembershipRepo,
) GroupService {
  serviceLog := baseLog.With("service", "GroupService")
  return &groupService{
    db:             db,
    log:            serviceLog,
    contactRepo:    contactRepo,
    groupRepo:      groupRepo,
    membershipRepo: membershipRepo,
  }
}

func (gs *groupService) ListGroups(ctx context.Context, tx *gorm.DB) ([]*types.Group, error) {
  me, err := requesterContact(ctx, tx, gs.contactRepo)
  if err != nil {
    return nil, err
  }

  groups, err := gs.groupRepo.ListAccessibleFor(ctx, tx, me.ID)
  if err != nil {
    return nil, fmt.Errorf("list groups: %w", err)
  }
  return groups, nil
}

func (gs *groupService) GetGroup(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) (*types.Group, error) {
  me, err := requesterContact(ctx, tx, gs.contactRepo)
  if err != nil {
    return nil, err
  }

  group, err := gs.groupRepo.GetAccessibleByID(ctx, tx, me.ID, groupID)
  if err != nil {
    return nil, fmt.Errorf("load group: %w", err)
  }
  if group == nil {
    return nil, apierr.NotFound("group %s not found", groupID)
  }
  return group, nil
}

func (gs *groupService) CreateGroup(ctx context.Context, input GroupInput) (*types.Group, error) {
  if strings.TrimSpace(input.Name) == "" {
    return nil, apierr.Validation("name is required")
  }

  var group *types.Group
  err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    me, err := requesterContact(ctx, tx, gs.contactRepo)
    if err != nil {
      return err
    }

    now := time.Now()
    group = &types.Group{
      ID:          uuid.New(),
      Name:        strings.TrimSpace(input.Name),
      Description: input.Description,
      CreatedByID: me.ID,
      CreatedAt:   now,
      UpdatedAt:   now,
    }
    if _, err := gs.groupRepo.Create(ctx, tx, []*types.Group{group}); err != nil {
      return fmt.Errorf("create group: %w", err)
    }

    // The creator joins their own group as admin.
    membership := &types.GroupMembership{
      ID:        uuid.New(),
      GroupID:   group.ID,
      ContactID: me.ID,
      Role:      types.GroupRoleAdmin,
      InviterID: me.ID,
      JoinedAt:  now,
    }
    if _, err := gs.membershipRepo.Create(ctx, tx, []*types.GroupMembership{membership}); err != nil {
      return fmt.Errorf("create creator membership: %w", err)
    }
    return nil
  })
  if err != nil {
    gs.log.Error("CreateGroup failed", "error", err)
    return nil, err
  }
  return group, nil
}

func (gs *groupService) UpdateGroup(ctx context.Context, tx *gorm.DB, groupID uuid.UUID, input GroupInput) (*types.Group, error) {
  me, err := requesterContact(ctx, tx, gs.contactRepo)
  if err != nil {
    return nil, err
  }
  if strings.TrimSpace(input.Name) == "" {
    return nil, apierr.Validation("name is required")
  }

  group, err := gs.groupRepo.GetAccessibleByID(ctx, tx, me.ID, groupID)
  if err != nil {
    return nil, fmt.Errorf("load group: %w", err)
  }
  if group == nil {
    return nil, apierr.NotFound("group %s not found", groupID)
  }

  group.Name = strings.TrimSpace(input.Name)
  group.Description = input.Description
  updatedBy := me.ID
  group.UpdatedByID = &updatedBy

  if _, err := gs.groupRepo.Update(ctx, tx, group); err != nil {
    gs.log.Error("UpdateGroup failed", "error", err)
    return nil, fmt.Errorf("update group: %w", err)
  }
  return group, nil
}

func (gs *groupService) DeleteGroup(ctx context.Context, groupID uuid.UUID) error {
  return gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    me, err := requesterContact(ctx, tx, gs.contactRepo)
    if err != nil {
      return err
    }

    group, err := gs.groupRepo.GetAccessibleByID(ctx, tx, me.ID, groupID)
    if err != nil {
      return fmt.Errorf("load group: %w", err)
    }
    if group == nil {
      return apierr.NotFound("group %s not found", groupID)
    }

    if err := gs.membershipRepo.DeleteByGroupIDs(ctx, tx, []uuid.UUID{groupID}); err != nil {
      return fmt.Errorf("delete group memberships: %w", err)
    }
    if err := gs.groupRepo.Delete(ctx, tx, []uuid.UUID{groupID}); err != nil {
      return fmt.Errorf("delete group: %w", err)
    }
    return nil
  })
}
