// Package buildinfo is stamped at link time:
//
//	go build -ldflags "-X github.com/aalvaropc/cookiecalc/internal/buildinfo.Version=v0.1.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("cookiecalc %s (commit=%s, date=%s)", Version, Commit, Date)
}
