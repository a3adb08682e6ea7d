package version

// AppName is the service name reported by /health and the MCP implementation info.
const AppName = "marketgate"

// Version is the gateway release. Bump on every tagged release.
const Version = "1.0.0"
