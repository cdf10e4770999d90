package liblicense

var (
	VERSION = "dev"
	COMMIT  = "unknown"
)
