package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	payment uint64
	blockID uint64
	blockA  uint64
	blockB  uint64
)

var forgeCmd = &cobra.Command{
	Use:   "forge",
	Short: "Work with forge blocks.",
}

var forgeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new block for the account.",
	Run: func(cmd *cobra.Command, args []string) {
		post("/v1/forge/create", map[string]any{
			"caller":  account,
			"payment": payment,
		})
	},
}

var forgeEvolveCmd = &cobra.Command{
	Use:   "evolve",
	Short: "Evolve a block owned by the account.",
	Run: func(cmd *cobra.Command, args []string) {
		post("/v1/forge/evolve", map[string]any{
			"caller": account,
			"id":     blockID,
		})
	},
}

var forgeMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge two blocks owned by the account.",
	Run: func(cmd *cobra.Command, args []string) {
		post("/v1/forge/merge", map[string]any{
			"caller": account,
			"id_a":   blockA,
			"id_b":   blockB,
		})
	},
}

var forgeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the blocks owned by the account.",
	Run: func(cmd *cobra.Command, args []string) {
		get(fmt.Sprintf("/v1/forge/list/%s", account))
	},
}

func init() {
	rootCmd.AddCommand(forgeCmd)

	forgeCmd.AddCommand(forgeCreateCmd)
	forgeCreateCmd.Flags().Uint64VarP(&payment, "payment", "m", 0, "Payment for the creation fee.")

	forgeCmd.AddCommand(forgeEvolveCmd)
	forgeEvolveCmd.Flags().Uint64VarP(&blockID, "id", "i", 0, "Id of the block to evolve.")

	forgeCmd.AddCommand(forgeMergeCmd)
	forgeMergeCmd.Flags().Uint64VarP(&blockA, "first", "f", 0, "Id of the first block.")
	forgeMergeCmd.Flags().Uint64VarP(&blockB, "second", "s", 0, "Id of the second block.")

	forgeCmd.AddCommand(forgeListCmd)
}
