package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/panjiyudasetya/go-contacts/internal/services"
)

type GroupHandler struct {
  groupService services.GroupService
}

func NewGroupHandler(groupService services.GroupService) *GroupHandler {
  return &GroupHandler{groupService: groupService}
}

// GET /groups/
func (gh *GroupHandler) List(c *gin.Context) {
  groups, err := gh.groupService.ListGroups(c.Request.Context(), nil)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, groups)
}

// POST /groups/
func (gh *GroupHandler) Create(c *gin.Context) {
  var input services.GroupInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  group, err := gh.groupService.CreateGroup(c.Request.Context(), input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, group)
}

// GET /groups/:id/
func (gh *GroupHandler) Get(c *gin.Context) {
  groupID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  group, err := gh.groupService.GetGroup(c.Request.Context(), nil, groupID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, group)
}

// PUT /groups/:id/
func (gh *GroupHandler) Update(c *gin.Context) {
  groupID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  var input services.GroupInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  group, err := gh.groupService.UpdateGroup(c.Request.Context(), nil, groupID, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, group)
}

// DELETE /groups/:id/
func (gh *GroupHandler) Delete(c *gin.Context) {
  groupID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  if err := gh.groupService.DeleteGroup(c.Request.Context(), groupID); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
