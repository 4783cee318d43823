/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"log"
	"time"

	"github.com/docqa/pdfchat-be/config"
	"github.com/docqa/pdfchat-be/database"
	"github.com/docqa/pdfchat-be/handler"
	"github.com/docqa/pdfchat-be/middleware"
	"github.com/docqa/pdfchat-be/repository"
	"github.com/docqa/pdfchat-be/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the PDF chat server",
	Long:  `Starts the HTTP server that handles uploads, extraction and chat`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database(cfg.MongoDatabase)

		storage, err := service.NewMinioStorage(cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}

		// init repo
		uploadRepo := repository.NewUploadRepo(mongoDb.Collection("uploads"))

		// init services
		pdfService := service.NewPDFService()
		promptBuilder := service.NewPromptBuilder(cfg.AI.MaxCorpusChars)
		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to init AI service: %v", err)
		}
		extractService := service.NewExtractService(uploadRepo, storage, pdfService)
		chatService := service.NewChatService(uploadRepo, promptBuilder, aiService)
		fileService := service.NewFileService(storage, uploadRepo)
		wsService := service.NewWebSocketService(chatService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		metadataHandler := handler.NewMetadataHandler(uploadRepo)
		extractHandler := handler.NewExtractHandler(extractService)
		pdfHandler := handler.NewPDFHandler(uploadRepo)
		chatHandler := handler.NewChatHandler(chatService)
		uploadHandler := handler.NewUploadHandler(fileService)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/health", handler.HandleHealth)

		api := router.Group("/")
		if cfg.JWTSecret != "" {
			api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		}
		{
			api.POST("/upload", uploadHandler.HandleUpload)
			api.POST("/upload-metadata", metadataHandler.HandleSaveMetadata)
			api.POST("/extract", extractHandler.HandleExtract)
			api.GET("/pdf/:pdfId", pdfHandler.HandleGetPDF)
			api.POST("/chat", chatHandler.HandleChat)
			api.GET("/ws/chat", func(c *gin.Context) {
				wsService.HandleChat(c.Writer, c.Request)
			})
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func newAIService(cfg *config.Config) (service.AIService, error) {
	if cfg.AI.Provider == "gemini" {
		return service.NewGeminiService(cfg.AI.GeminiAPIKeys, cfg.AI.Model)
	}
	return service.NewOpenAIService(
		cfg.AI.Endpoint,
		cfg.AI.APIKey,
		cfg.AI.Model,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
	), nil
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
