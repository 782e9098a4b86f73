package wcvp

var (
	// Version of the wcvp toolkit, set at build time.
	Version = "v0.1.0"

	// Build timestamp, set at build time.
	Build = "n/a"
)
