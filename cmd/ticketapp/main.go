package main

import "github.com/spec-kit/ticketapp/internal/cli"

// buildVersion is injected at build time; "dev" otherwise.
var buildVersion = "dev"

func main() {
	cli.Execute(buildVersion)
}
