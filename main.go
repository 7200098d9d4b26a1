package main

import (
	"embed"

	"github.com/kontigo/kontigo/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
