package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/panjiyudasetya/go-contacts/internal/handlers"
  "github.com/panjiyudasetya/go-contacts/internal/middleware"
)

type RouterConfig struct {
  AuthHandler          *handlers.AuthHandler
  AuthMiddleware       *middleware.AuthMiddleware
  ContactHandler       *handlers.ContactHandler
  PhoneHandler         *handlers.PhoneHandler
  MyContactHandler     *handlers.MyContactHandler
  GroupHandler         *handlers.GroupHandler
  GroupMemberHandler   *handlers.GroupMemberHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  // Public
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)

  // Protected
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())

  // Contacts
  protected.GET("/contacts/", cfg.ContactHandler.List)
  protected.POST("/contacts/", cfg.ContactHandler.Create)
  protected.GET("/contacts/:id/", cfg.ContactHandler.Get)
  protected.PUT("/contacts/:id/", cfg.ContactHandler.Update)
  protected.DELETE("/contacts/:id/", cfg.ContactHandler.Delete)

  // Phone numbers of a contact
  protected.POST("/contacts/:id/phone-numbers/", cfg.PhoneHandler.Create)
  protected.PUT("/contacts/:id/phone-numbers/:phone_id/", cfg.PhoneHandler.Update)
  protected.DELETE("/contacts/:id/phone-numbers/:phone_id/", cfg.PhoneHandler.Delete)

  // The requester's personal contact list, served at /contacts/me/contacts/.
  // gin cannot mix a literal segment with :id at the same position, so the
  // handler checks for the "me" literal itself.
  protected.GET("/contacts/:id/contacts/", cfg.MyContactHandler.List)
  protected.POST("/contacts/:id/contacts/", cfg.MyContactHandler.Add)
  protected.GET("/contacts/:id/contacts/:contact_id/", cfg.MyContactHandler.Get)
  protected.PUT("/contacts/:id/contacts/:contact_id/", cfg.MyContactHandler.Update)
  protected.DELETE("/contacts/:id/contacts/:contact_id/", cfg.MyContactHandler.Remove)

  // Groups
  protected.GET("/groups/", cfg.GroupHandler.List)
  protected.POST("/groups/", cfg.GroupHandler.Create)
  protected.GET("/groups/:id/", cfg.GroupHandler.Get)
  protected.PUT("/groups/:id/", cfg.GroupHandler.Update)
  protected.DELETE("/groups/:id/", cfg.GroupHandler.Delete)

  // Contacts in a group
  protected.GET("/groups/:id/contacts/", cfg.GroupMemberHandler.List)
  protected.POST("/groups/:id/contacts/", cfg.GroupMemberHandler.Add)
  protected.GET("/groups/:id/contacts/:contact_id/", cfg.GroupMemberHandler.Get)
  protected.PUT("/groups/:id/contacts/:contact_id/", cfg.GroupMemberHandler.Update)
  protected.DELETE("/groups/:id/contacts/:contact_id/", cfg.GroupMemberHandler.Remove)

  return router
}
