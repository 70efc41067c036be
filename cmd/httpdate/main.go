package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-httpdate/cmd/httpdate/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
