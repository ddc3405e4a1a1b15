package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/panjiyudasetya/go-contacts/internal/services"
)

type PhoneHandler struct {
  phoneService services.PhoneService
}

func NewPhoneHandler(phoneService services.PhoneService) *PhoneHandler {
  return &PhoneHandler{phoneService: phoneService}
}

// POST /contacts/:id/phone-numbers/
func (ph *PhoneHandler) Create(c *gin.Context) {
  contactID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  var input services.PhoneInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  phone, err := ph.phoneService.CreatePhone(c.Request.Context(), nil, contactID, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, phone)
}

// PUT /contacts/:id/phone-numbers/:phone_id/
func (ph *PhoneHandler) Update(c *gin.Context) {
  contactID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }
  phoneID, err := uuid.Parse(c.Param("phone_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  var input services.PhoneInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  phone, err := ph.phoneService.UpdatePhone(c.Request.Context(), nil, contactID, phoneID, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, phone)
}

// DELETE /contacts/:id/phone-numbers/:phone_id/
func (ph *PhoneHandler) Delete(c *gin.Context) {
  contactID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }
  phoneID, err := uuid.Parse(c.Param("phone_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "validation_error", err)
    return
  }

  if err := ph.phoneService.DeletePhone(c.Request.Context(), nil, contactID, phoneID); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
