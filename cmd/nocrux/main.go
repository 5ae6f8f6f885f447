// Package main is the entry point for the nocrux CLI.
package main

import "github.com/nocrux/nocrux/internal/app"

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.2.0"
var version = "dev"

func main() {
	app.SetVersion(version)
	app.Execute()
}
