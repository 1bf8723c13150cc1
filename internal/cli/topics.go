package cli

import (
	"context"
	"fmt"
	"time"

	"hotnews/internal/logger"

	"github.com/spf13/cobra"
)

var topicsPlatform string

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Fetch and print the hot-topic board for a platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger.Init(cfg.App.LogLevel)

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		topics := buildPipeline(cfg).HotTopics(ctx, topicsPlatform)
		for _, t := range topics {
			marker := " "
			if t.IsTop {
				marker = "*"
			}
			fmt.Printf("%s %2d. %-60s %9d  %s\n", marker, t.ID, t.Title, t.Hot, t.Source)
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().StringVar(&topicsPlatform, "platform", "baidu", "platform key (baidu, google, weibo, yahoo, zhihu)")
	rootCmd.AddCommand(topicsCmd)
}
