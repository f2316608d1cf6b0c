package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"go-blog-api/config"
	"go-blog-api/handlers"
	"go-blog-api/helper"
	"go-blog-api/middleware"
	"go-blog-api/repositories"
	"go-blog-api/services"
	"go-blog-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// Initialize database
	db := config.InitDB()

	// Initialize upload storage
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	fileStorage, err := storage.NewLocalFileStorage(uploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directory: ", err)
	}

	httpHelper := helper.NewHTTPHelper()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	postHandler := handlers.NewPostHandler(postService, fileStorage, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Stored images
	router.Static("/uploads", uploadDir)

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)
	}

	// Post routes
	posts := router.Group("/posts")
	{
		// Listing is open; the response shape depends on the auth state.
		posts.GET("", middleware.OptionalAuthMiddleware(), postHandler.GetPosts)

		protected := posts.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/:id", postHandler.GetPost)
			protected.POST("", postHandler.CreatePost)
			protected.PUT("/:id", postHandler.UpdatePost)
			protected.DELETE("/:id", postHandler.DeletePost)
		}
	}

	// Comment routes
	comments := router.Group("/comments")
	{
		comments.GET("/post/:postId", commentHandler.GetComments)

		protected := comments.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("", commentHandler.CreateComment)
			protected.PUT("/:id", commentHandler.UpdateComment)
			protected.DELETE("/:id", commentHandler.DeleteComment)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
