package cmd

import (
	"fmt"

	"wordle-web/core/chunk"
	"wordle-web/core/storage"
	"wordle-web/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// chunksCmd represents the chunks command
var chunksCmd = &cobra.Command{
	Use:   "chunks",
	Short: "Manage lazily loaded view chunks",
	Long:  `Lists the chunks bundled into the binary and checks or publishes them to the storage bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadRuntime()
		if err != nil {
			return err
		}
		names, err := chunk.List(web.Dist(), cfg.Chunks.Prefix)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(chunk.ObjectName(cfg.Chunks.Prefix, name))
		}
		return nil
	},
}

// chunksCheckCmd represents the chunks check command
var chunksCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every bundled chunk exists in the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		names, err := chunk.List(web.Dist(), cfg.Chunks.Prefix)
		if err != nil {
			return err
		}

		missing, err := chunk.CheckBucket(cmd.Context(), client, cfg.Storage.Bucket, cfg.Chunks.Prefix, names)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			logg.Warn("Chunks missing from bucket", zap.String("bucket", cfg.Storage.Bucket), zap.Strings("missing", missing))
			return fmt.Errorf("%d chunk(s) missing, run 'chunks publish'", len(missing))
		}
		logg.Info("All chunks present", zap.String("bucket", cfg.Storage.Bucket), zap.Int("chunks", len(names)))
		return nil
	},
}

// chunksPublishCmd represents the chunks publish command
var chunksPublishCmd = &cobra.Command{
	Use:   "publish [chunk...]",
	Short: "Upload bundled chunks to the bucket",
	Long:  `Uploads the named chunks, or all bundled chunks when none are named, creating the bucket if needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		names := args
		if len(names) == 0 {
			if names, err = chunk.List(web.Dist(), cfg.Chunks.Prefix); err != nil {
				return err
			}
		}

		return chunk.Publish(cmd.Context(), client, cfg.Storage.Bucket, cfg.Chunks.Prefix, web.Dist(), names, logg)
	},
}

func init() {
	chunksCmd.AddCommand(chunksCheckCmd)
	chunksCmd.AddCommand(chunksPublishCmd)
	RootCmd.AddCommand(chunksCmd)
}
