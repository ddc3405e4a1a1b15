package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/panjiyudasetya/go-contacts/internal/services"
)

type GroupMemberHandler struct {
  memberService services.GroupMemberService
}

func NewGroupMemberHandler(memberService services.GroupMemberService) *GroupMemberHandler {
  return &GroupMemberHandler{memberService: memberService}
}

// GET /groups/:id/contacts/
func (gmh *GroupMemberHandler) List(c *gin.Context) {
  groupID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  members, err := gmh.memberService.ListMembers(c.Request.Context(), nil, groupID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, members)
}

// POST /groups/:id/contacts/
func (gmh *GroupMemberHandler) Add(c *gin.Context) {
  groupID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  var input services.AddGroupMemberInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  if err := gmh.memberService.AddMember(c.Request.Context(), nil, groupID, input); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{})
}

// GET /groups/:id/contacts/:contact_id/
func (gmh *GroupMemberHandler) Get(c *gin.Context) {
  groupID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }
  contactID, err := uuid.Parse(c.Param("contact_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  member, err := gmh.memberService.GetMember(c.Request.Context(), nil, groupID, contactID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, member)
}

// PUT /groups/:id/contacts/:contact_id/
func (gmh *GroupMemberHandler) Update(c *gin.Context) {
  groupID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }
  contactID, err := uuid.Parse(c.Param("contact_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  var input services.UpdateGroupMemberInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  if err := gmh.memberService.UpdateMember(c.Request.Context(), nil, groupID, contactID, input); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{})
}

// DELETE /groups/:id/contacts/:contact_id/
func (gmh *GroupMemberHandler) Remove(c *gin.Context) {
  groupID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }
  contactID, err := uuid.Parse(c.Param("contact_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  if err := gmh.memberService.RemoveMember(c.Request.Context(), nil, groupID, contactID); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
