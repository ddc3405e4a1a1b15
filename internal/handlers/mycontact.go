package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/panjiyudasetya/go-contacts/internal/services"
)

type MyContactHandler struct {
  myContactService services.MyContactService
}

func NewMyContactHandler(myContactService services.MyContactService) *MyContactHandler {
  return &MyContactHandler{myContactService: myContactService}
}

// The route is registered as /contacts/:id/contacts/ because of gin's
// wildcard rules; only the literal "me" is a valid segment there.
func requireMe(c *gin.Context) bool {
  if c.Param("id") != "me" {
    RespondError(c, http.StatusNotFound, "not_found", errors.New("not found"))
    return false
  }
  return true
}

// GET /contacts/me/contacts/
func (mh *MyContactHandler) List(c *gin.Context) {
  if !requireMe(c) {
    return
  }
  contacts, err := mh.myContactService.ListMyContacts(c.Request.Context(), nil)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, contacts)
}

// POST /contacts/me/contacts/
func (mh *MyContactHandler) Add(c *gin.Context) {
  if !requireMe(c) {
    return
  }
  var input services.AddMyContactInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  if err := mh.myContactService.AddMyContact(c.Request.Context(), nil, input); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{})
}

// GET /contacts/me/contacts/:contact_id/
func (mh *MyContactHandler) Get(c *gin.Context) {
  if !requireMe(c) {
    return
  }
  contactID, err := uuid.Parse(c.Param("contact_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  contact, err := mh.myContactService.GetMyContact(c.Request.Context(), nil, contactID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, contact)
}

// PUT /contacts/me/contacts/:contact_id/
func (mh *MyContactHandler) Update(c *gin.Context) {
  if !requireMe(c) {
    return
  }
  contactID, err := uuid.Parse(c.Param("contact_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  var input services.UpdateMyContactInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  if err := mh.myContactService.UpdateMyContact(c.Request.Context(), nil, contactID, input); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{})
}

// DELETE /contacts/me/contacts/:contact_id/
func (mh *MyContactHandler) Remove(c *gin.Context) {
  if !requireMe(c) {
    return
  }
  contactID, err := uuid.Parse(c.Param("contact_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  if err := mh.myContactService.RemoveMyContact(c.Request.Context(), nil, contactID); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
