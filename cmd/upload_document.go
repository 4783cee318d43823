/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/docqa/pdfchat-be/config"
	"github.com/docqa/pdfchat-be/database"
	"github.com/docqa/pdfchat-be/repository"
	"github.com/docqa/pdfchat-be/service"
	"github.com/spf13/cobra"
)

// uploadDocumentCmd represents the uploadDocument command
var uploadDocumentCmd = &cobra.Command{
	Use:   "upload-document <file>",
	Short: "Upload a local PDF and extract its text",
	Long: `Runs the whole ingest pipeline from the command line: pushes the
file to object storage, creates the metadata record and extracts the
text into it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		userID, _ := cmd.Flags().GetString("user")
		filePath := args[0]

		pipeline, err := newUploadPipeline(configPath)
		if err != nil {
			log.Fatalf("Failed to init pipeline: %v", err)
		}

		if err := pipeline.upload(context.Background(), userID, filePath); err != nil {
			log.Fatalf("Failed to upload document: %v", err)
		}
	},
}

type uploadPipeline struct {
	fileService    *service.FileService
	extractService *service.ExtractService
}

func newUploadPipeline(configPath string) (*uploadPipeline, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	storage, err := service.NewMinioStorage(cfg.Storage)
	if err != nil {
		return nil, err
	}

	uploadRepo := repository.NewUploadRepo(mongoClient.Database(cfg.MongoDatabase).Collection("uploads"))
	pdfService := service.NewPDFService()

	return &uploadPipeline{
		fileService:    service.NewFileService(storage, uploadRepo),
		extractService: service.NewExtractService(uploadRepo, storage, pdfService),
	}, nil
}

func (p *uploadPipeline) upload(ctx context.Context, userID, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	record, err := p.fileService.UploadBytes(ctx, userID, filepath.Base(filePath), data)
	if err != nil {
		return err
	}
	fmt.Println("Created record", record.ID)

	textLength, err := p.extractService.Extract(ctx, record.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Extracted %d characters from %s\n", textLength, filepath.Base(filePath))
	return nil
}

func init() {
	rootCmd.AddCommand(uploadDocumentCmd)

	uploadDocumentCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	uploadDocumentCmd.Flags().StringP("user", "u", "cli", "Owner id to record on the upload")
}
