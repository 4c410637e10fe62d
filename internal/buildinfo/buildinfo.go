// Package buildinfo exposes version information stamped at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/raptorboost/internal/buildinfo.Version=1.2.3"
package buildinfo

// Version is the server version reported by GetVersion.
var Version = "0.1.0"
