package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	key       string
	label     string
	uri       string
	tag       string
	versionID uint64
	active    bool
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Work with the content registry.",
}

var contentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the first version for a new key.",
	Run: func(cmd *cobra.Command, args []string) {
		post("/v1/content/create", map[string]any{
			"caller": account,
			"key":    key,
			"label":  label,
			"uri":    uri,
			"tag":    tag,
		})
	},
}

var contentPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a new version for an existing key.",
	Run: func(cmd *cobra.Command, args []string) {
		post("/v1/content/publish", map[string]any{
			"caller": account,
			"key":    key,
			"label":  label,
			"uri":    uri,
			"tag":    tag,
		})
	},
}

var contentStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Activate or deactivate a version.",
	Run: func(cmd *cobra.Command, args []string) {
		post("/v1/content/status", map[string]any{
			"caller": account,
			"id":     versionID,
			"active": active,
		})
	},
}

var contentLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the latest version for a key.",
	Run: func(cmd *cobra.Command, args []string) {
		get(fmt.Sprintf("/v1/content/latest/%s", key))
	},
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all versions for a key.",
	Run: func(cmd *cobra.Command, args []string) {
		get(fmt.Sprintf("/v1/content/list/%s", key))
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)

	contentCmd.AddCommand(contentCreateCmd)
	contentCreateCmd.Flags().StringVarP(&key, "key", "k", "", "Key for the content.")
	contentCreateCmd.Flags().StringVarP(&label, "label", "l", "", "Label for the version.")
	contentCreateCmd.Flags().StringVarP(&uri, "uri", "r", "", "Uri where the content lives.")
	contentCreateCmd.Flags().StringVarP(&tag, "tag", "g", "", "Tag for the version.")

	contentCmd.AddCommand(contentPublishCmd)
	contentPublishCmd.Flags().StringVarP(&key, "key", "k", "", "Key for the content.")
	contentPublishCmd.Flags().StringVarP(&label, "label", "l", "", "Label for the version.")
	contentPublishCmd.Flags().StringVarP(&uri, "uri", "r", "", "Uri where the content lives.")
	contentPublishCmd.Flags().StringVarP(&tag, "tag", "g", "", "Tag for the version.")

	contentCmd.AddCommand(contentStatusCmd)
	contentStatusCmd.Flags().Uint64VarP(&versionID, "id", "i", 0, "Id of the version.")
	contentStatusCmd.Flags().BoolVarP(&active, "active", "x", true, "Active flag for the version.")

	contentCmd.AddCommand(contentLatestCmd)
	contentLatestCmd.Flags().StringVarP(&key, "key", "k", "", "Key for the content.")

	contentCmd.AddCommand(contentListCmd)
	contentListCmd.Flags().StringVarP(&key, "key", "k", "", "Key for the content.")
}
