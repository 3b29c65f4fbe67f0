// Package main is the entry point for the vue-i18n-audit CLI.
package main

import "github.com/AhmedKhchai/vue-i18n-audit/cmd"

func main() {
	cmd.Execute()
}
