package buildinfo

// Set with -ldflags "-X github.com/ozontech/truthtab/buildinfo.Version=..."
var (
	Version   = "v0.0.0-dev"
	BuildTime = "unknown"
)
