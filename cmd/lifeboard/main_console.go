//go:build !ebiten && !tinygo

package main

import (
	"flag"
	"log"

	"lifeboard/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := app.RunConsole(cfg); err != nil {
		log.Fatal(err)
	}
}
