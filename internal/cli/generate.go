package cli

import (
	"context"
	"fmt"
	"time"

	"hotnews/internal/app"
	"hotnews/internal/logger"

	"github.com/spf13/cobra"
)

var (
	generateTopic    string
	generateSource   string
	generatePlatform string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate display content for a single topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger.Init(cfg.App.LogLevel)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		content, err := buildPipeline(cfg).GenerateForTopic(ctx, app.GenerateRequest{
			Topic:    generateTopic,
			Source:   generateSource,
			Platform: generatePlatform,
		})
		if err != nil {
			return err
		}

		fmt.Println(content.Text)
		fmt.Println()
		fmt.Println("image:", content.ImageURL)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateTopic, "topic", "", "topic title (required)")
	generateCmd.Flags().StringVar(&generateSource, "source", "", "news source attribution")
	generateCmd.Flags().StringVar(&generatePlatform, "platform", "baidu", "platform key")
	_ = generateCmd.MarkFlagRequired("topic")
	rootCmd.AddCommand(generateCmd)
}
