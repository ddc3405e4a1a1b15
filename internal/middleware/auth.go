package middleware

import (
  "net/http"
  "strings"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/requestdata"
  "github.com/panjiyudasetya/go-contacts/internal/services"
)

type AuthMiddleware struct {
  log         *logger.Logger
  authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
  middlewareLog := log.With("middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLog, authService: authService}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString := extractBearerToken(c)
    if tokenString == "" {
      abort(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
      return
    }
    ctx, err := am.authService.SetContextFromToken(c.Request.Context(), tokenString)
    if err != nil {
      abort(c, http.StatusUnauthorized, "unauthorized", err.Error())
      return
    }
    c.Request = c.Request.WithContext(ctx)
    rd := requestdata.GetRequestData(ctx)
    if rd == nil || rd.UserID == uuid.Nil {
      abort(c, http.StatusForbidden, "forbidden", "forbidden")
      return
    }
    c.Next()
  }
}

// abort writes the same error envelope the handlers use.
func abort(c *gin.Context, status int, code, message string) {
  c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": message, "code": code}})
}

func extractBearerToken(c *gin.Context) string {
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  return ""
}
