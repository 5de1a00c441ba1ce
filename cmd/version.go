package cmd

var (
	// Version is set during build time
	Version = "dev"
)
