package main

import (
	"log"
	"os"

	"github.com/ben-blance/satish-image-format/cmd/satish/cmd"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Diagnostics go to stderr; stdout carries command output only.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("SATISH_LOG_LEVEL") == "debug" {
		log.Printf("satish %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cmd.SetVersionInfo(Version, BuildTime, GitCommit)
	cmd.Execute()
}
