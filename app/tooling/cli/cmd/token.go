package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	to      string
	from    string
	spender string
	amount  uint64
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer tokens to another account.",
	Run: func(cmd *cobra.Command, args []string) {
		post("/v1/token/transfer", map[string]any{
			"caller": account,
			"to":     to,
			"amount": amount,
		})
	},
}

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Set the allowance for a spender.",
	Run: func(cmd *cobra.Command, args []string) {
		post("/v1/token/approve", map[string]any{
			"caller":  account,
			"spender": spender,
			"amount":  amount,
		})
	},
}

var transferFromCmd = &cobra.Command{
	Use:   "transferfrom",
	Short: "Transfer tokens using an allowance.",
	Run: func(cmd *cobra.Command, args []string) {
		post("/v1/token/transferfrom", map[string]any{
			"caller": account,
			"from":   from,
			"to":     to,
			"amount": amount,
		})
	},
}

var allowanceCmd = &cobra.Command{
	Use:   "allowance",
	Short: "Print the allowance granted to a spender.",
	Run: func(cmd *cobra.Command, args []string) {
		get(fmt.Sprintf("/v1/token/allowance/%s/%s", account, spender))
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)
	transferCmd.Flags().StringVarP(&to, "to", "t", "", "Account receiving the tokens.")
	transferCmd.Flags().Uint64VarP(&amount, "amount", "m", 0, "Amount of tokens.")

	rootCmd.AddCommand(approveCmd)
	approveCmd.Flags().StringVarP(&spender, "spender", "s", "", "Account allowed to spend.")
	approveCmd.Flags().Uint64VarP(&amount, "amount", "m", 0, "Amount of tokens.")

	rootCmd.AddCommand(transferFromCmd)
	transferFromCmd.Flags().StringVarP(&from, "from", "f", "", "Account the tokens come from.")
	transferFromCmd.Flags().StringVarP(&to, "to", "t", "", "Account receiving the tokens.")
	transferFromCmd.Flags().Uint64VarP(&amount, "amount", "m", 0, "Amount of tokens.")

	rootCmd.AddCommand(allowanceCmd)
	allowanceCmd.Flags().StringVarP(&spender, "spender", "s", "", "Account allowed to spend.")
}
