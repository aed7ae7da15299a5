package main

import (
	"os"

	"github.com/i18nverify/i18nverify/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
