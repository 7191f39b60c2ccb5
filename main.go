package main

import (
	"os"

	"github.com/quality-insights/quality-insights/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
