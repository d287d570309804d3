package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoangnp/careernet/adapters/event"
	httpAdapter "github.com/hoangnp/careernet/adapters/http"
	"github.com/hoangnp/careernet/adapters/media_storage"
	"github.com/hoangnp/careernet/adapters/persistence"
	"github.com/hoangnp/careernet/internal/application/service"
	authUC "github.com/hoangnp/careernet/internal/application/usecase/auth"
	careerUC "github.com/hoangnp/careernet/internal/application/usecase/career"
	postUC "github.com/hoangnp/careernet/internal/application/usecase/post"
	socialUC "github.com/hoangnp/careernet/internal/application/usecase/social"
	userUC "github.com/hoangnp/careernet/internal/application/usecase/user"
	"github.com/hoangnp/careernet/internal/config"
	"github.com/hoangnp/careernet/pkg/auth"
	"github.com/hoangnp/careernet/pkg/logger"
	"github.com/hoangnp/careernet/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "careernet-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracer", err)
	}
	defer tp.Shutdown(context.Background())

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool, appLogger)
	userCache := persistence.NewRedisUserCache(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}
	userWriter := service.NewUserWriter(userRepo)
	postWriter := service.NewPostWriter(postRepo)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)

	registerUserUC := userUC.NewRegisterUserUseCase(userRepo, kafkaClient, appLogger)
	getUserUC := userUC.NewGetUserUseCase(userRepo, userCache, appLogger)
	updateUserUC := userUC.NewUpdateUserUseCase(userWriter, userCache, appLogger)
	deleteUserUC := userUC.NewDeleteUserUseCase(userRepo, userCache, appLogger)
	searchUsersUC := userUC.NewSearchUsersUseCase(userRepo)
	setUserImageUC := userUC.NewSetUserImageUseCase(userWriter, uploader, userCache, appLogger)

	createExpUC := careerUC.NewCreateExperienceUseCase(userWriter, userCache, appLogger)
	getExpUC := careerUC.NewGetExperienceUseCase(userRepo)
	updateExpUC := careerUC.NewUpdateExperienceUseCase(userWriter, userCache, appLogger)
	deleteExpUC := careerUC.NewDeleteExperienceUseCase(userWriter, userCache, appLogger)
	setExpImageUC := careerUC.NewSetExperienceImageUseCase(userWriter, uploader, userCache, appLogger)
	exportExpUC := careerUC.NewExportExperiencesUseCase(userRepo)
	educationUC := careerUC.NewEducationUseCase(userRepo, userWriter, uploader, userCache, appLogger)

	requestFriendUC := socialUC.NewRequestFriendUseCase(userWriter, userCache, appLogger)
	acceptFriendUC := socialUC.NewAcceptFriendUseCase(userWriter, userCache, kafkaClient, appLogger)
	revokeFriendUC := socialUC.NewRevokeFriendUseCase(userWriter, userCache, appLogger)

	createPostUC := postUC.NewCreatePostUseCase(postRepo, userRepo)
	getPostUC := postUC.NewGetPostUseCase(postRepo)
	listPostsUC := postUC.NewListPostsUseCase(postRepo)
	updatePostUC := postUC.NewUpdatePostUseCase(postWriter)
	deletePostUC := postUC.NewDeletePostUseCase(postRepo)
	toggleLikeUC := postUC.NewToggleLikeUseCase(postWriter, userRepo, kafkaClient, appLogger)
	addCommentUC := postUC.NewAddCommentUseCase(postWriter, userRepo)
	setPostImageUC := postUC.NewSetPostImageUseCase(postWriter, uploader)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	userHandler := httpAdapter.NewUserHandler(
		registerUserUC, getUserUC, updateUserUC, deleteUserUC, searchUsersUC, setUserImageUC,
	)
	careerHandler := httpAdapter.NewCareerHandler(
		createExpUC, getExpUC, updateExpUC, deleteExpUC, setExpImageUC, exportExpUC,
		educationUC, appLogger,
	)
	socialHandler := httpAdapter.NewSocialHandler(requestFriendUC, acceptFriendUC, revokeFriendUC)
	postHandler := httpAdapter.NewPostHandler(
		createPostUC, getPostUC, listPostsUC, updatePostUC, deletePostUC,
		toggleLikeUC, addCommentUC, setPostImageUC, cfg.App.URL,
	)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/auth/login", authHandler.Login)
		api.POST("/users", userHandler.Register)

		users := api.Group("/users")
		users.Use(authMiddleware)
		{
			users.GET("", userHandler.SearchUsers)
			users.GET("/:userId", userHandler.GetUser)
			users.PUT("/:userId", userHandler.UpdateUser)
			users.DELETE("/:userId", userHandler.DeleteUser)
			users.POST("/:userId/image", userHandler.SetUserImage)

			experiences := users.Group("/:userId/experiences")
			{
				experiences.POST("", careerHandler.CreateExperience)
				experiences.GET("", careerHandler.ListExperiences)
				experiences.GET("/CSV", careerHandler.ExportExperiencesCSV)
				experiences.GET("/:expId", careerHandler.GetExperience)
				experiences.PUT("/:expId", careerHandler.UpdateExperience)
				experiences.DELETE("/:expId", careerHandler.DeleteExperience)
				experiences.POST("/:expId/image", careerHandler.SetExperienceImage)
			}

			educations := users.Group("/:userId/educations")
			{
				educations.POST("", careerHandler.CreateEducation)
				educations.GET("", careerHandler.ListEducations)
				educations.GET("/CSV", careerHandler.ExportEducationsCSV)
				educations.GET("/:eduId", careerHandler.GetEducation)
				educations.PUT("/:eduId", careerHandler.UpdateEducation)
				educations.DELETE("/:eduId", careerHandler.DeleteEducation)
				educations.POST("/:eduId/image", careerHandler.SetEducationImage)
			}

			friends := users.Group("/:userId/friends")
			{
				friends.POST("/:peerId", socialHandler.RequestFriend)
				friends.PUT("/:peerId", socialHandler.AcceptFriend)
				friends.DELETE("/:peerId", socialHandler.RevokeFriend)
			}
		}

		posts := api.Group("/posts")
		posts.Use(authMiddleware)
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("", postHandler.ListPosts)
			posts.GET("/:postId", postHandler.GetPost)
			posts.PUT("/:postId", postHandler.UpdatePost)
			posts.DELETE("/:postId", postHandler.DeletePost)
			posts.POST("/:postId/likes/:userId", postHandler.ToggleLike)
			posts.POST("/:postId/comments", postHandler.AddComment)
			posts.POST("/:postId/image", postHandler.SetPostImage)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
