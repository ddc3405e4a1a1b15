package main

import (
  "fmt"
  "os"
  "time"

  "github.com/panjiyudasetya/go-contacts/internal/db"
  "github.com/panjiyudasetya/go-contacts/internal/handlers"
  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/middleware"
  "github.com/panjiyudasetya/go-contacts/internal/repos"
  "github.com/panjiyudasetya/go-contacts/internal/server"
  "github.com/panjiyudasetya/go-contacts/internal/services"
  "github.com/panjiyudasetya/go-contacts/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err := postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up repos...")
  userRepo := repos.NewUserRepo(thePG, log)
  contactRepo := repos.NewContactRepo(thePG, log)
  phoneRepo := repos.NewPhoneRepo(thePG, log)
  contactMembershipRepo := repos.NewContactMembershipRepo(thePG, log)
  groupRepo := repos.NewGroupRepo(thePG, log)
  groupMembershipRepo := repos.NewGroupMembershipRepo(thePG, log)

  // Services
  log.Info("Setting up services...")
  authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
  contactService := services.NewContactService(thePG, log, userRepo, contactRepo, phoneRepo, contactMembershipRepo, groupMembershipRepo)
  phoneService := services.NewPhoneService(thePG, log, contactRepo, phoneRepo)
  myContactService := services.NewMyContactService(thePG, log, contactRepo, contactMembershipRepo)
  groupService := services.NewGroupService(thePG, log, contactRepo, groupRepo, groupMembershipRepo)
  groupMemberService := services.NewGroupMemberService(thePG, log, contactRepo, groupRepo, groupMembershipRepo)

  // Handlers
  log.Info("Setting up handlers...")
  authHandler := handlers.NewAuthHandler(authService)
  contactHandler := handlers.NewContactHandler(contactService)
  phoneHandler := handlers.NewPhoneHandler(phoneService)
  myContactHandler := handlers.NewMyContactHandler(myContactService)
  groupHandler := handlers.NewGroupHandler(groupService)
  groupMemberHandler := handlers.NewGroupMemberHandler(groupMemberService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:        authHandler,
    AuthMiddleware:     authMiddleware,
    ContactHandler:     contactHandler,
    PhoneHandler:       phoneHandler,
    MyContactHandler:   myContactHandler,
    GroupHandler:       groupHandler,
    GroupMemberHandler: groupMemberHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  log.Info("Server listening", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
    os.Exit(1)
  }
}
