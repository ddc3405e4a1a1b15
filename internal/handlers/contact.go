package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/panjiyudasetya/go-contacts/internal/services"
)

type ContactHandler struct {
  contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
  return &ContactHandler{contactService: contactService}
}

// GET /contacts/
func (ch *ContactHandler) List(c *gin.Context) {
  contacts, err := ch.contactService.ListContacts(c.Request.Context(), nil)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, contacts)
}

// POST /contacts/
func (ch *ContactHandler) Create(c *gin.Context) {
  var input services.CreateContactInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  contact, err := ch.contactService.CreateContact(c.Request.Context(), nil, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, contact)
}

// GET /contacts/:id/
func (ch *ContactHandler) Get(c *gin.Context) {
  contactID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  contact, err := ch.contactService.GetContact(c.Request.Context(), nil, contactID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, contact)
}

// PUT /contacts/:id/
func (ch *ContactHandler) Update(c *gin.Context) {
  contactID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  var input services.UpdateContactInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  contact, err := ch.contactService.UpdateContact(c.Request.Context(), nil, contactID, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, contact)
}

// DELETE /contacts/:id/
func (ch *ContactHandler) Delete(c *gin.Context) {
  contactID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  if err := ch.contactService.DeleteContact(c.Request.Context(), contactID); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
