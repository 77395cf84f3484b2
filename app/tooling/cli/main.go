package main

import "github.com/evoforge/ledger/app/tooling/cli/cmd"

func main() {
	cmd.Execute()
}
