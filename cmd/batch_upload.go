/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// batchUploadCmd represents the batchUpload command
var batchUploadCmd = &cobra.Command{
	Use:   "batch-upload <dir>",
	Short: "Upload every PDF in a directory",
	Long: `Walks a directory and runs the ingest pipeline (storage, metadata,
extraction) for each PDF in it. Files that fail are logged and skipped.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		userID, _ := cmd.Flags().GetString("user")
		directory := args[0]

		pipeline, err := newUploadPipeline(configPath)
		if err != nil {
			log.Fatalf("Failed to init pipeline: %v", err)
		}

		matches, err := filepath.Glob(filepath.Join(directory, "*"))
		if err != nil {
			log.Fatalf("Failed to read directory: %v", err)
		}
		for _, filePath := range matches {
			if !strings.EqualFold(filepath.Ext(filePath), ".pdf") {
				continue
			}
			if err := pipeline.upload(context.Background(), userID, filePath); err != nil {
				log.Printf("Failed to upload document %s: %v", filePath, err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(batchUploadCmd)

	batchUploadCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	batchUploadCmd.Flags().StringP("user", "u", "cli", "Owner id to record on the uploads")
}
