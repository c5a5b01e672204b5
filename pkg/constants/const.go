package constants

// Crawl defaults
const (
	// DefaultDir is crawled relative to the entry point
	DefaultDir = "."
	// DefaultNot skips dotfiles
	DefaultNot = `^\.`
	// DefaultIgnore skips hidden directories and node_modules
	DefaultIgnore = `^\.|node_modules`
	// DefaultRequire selects files handed to the loader
	DefaultRequire = `\.(json|ya?ml|toml|tmpl|go)$`
)

// EnvPrefix namespaces environment variables read through viper
const EnvPrefix = "DIRLOAD"
