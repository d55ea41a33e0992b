package main

import "fmt"

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// projectURL is printed with the version banner.
const projectURL = "https://github.com/jftuga/gclone"

func main() {
	Execute()
}

// versionString returns the version banner.
func versionString() string {
	return fmt.Sprintf("gclone v%s\n%s", version, projectURL)
}
