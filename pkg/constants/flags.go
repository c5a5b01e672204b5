package constants

// viper keys, which double as flag names
const (
	DirFlag       = "dir"
	NotFlag       = "not"
	MatchFlag     = "match"
	IgnoreFlag    = "ignore"
	RequireFlag   = "require"
	RecursiveFlag = "recursive"
	EncodingFlag  = "encoding"
	TreeFlag      = "tree"
	// ChrootFlag roots the crawl filesystem at a directory
	ChrootFlag = "chroot"

	LogLevelFlag  = "log-level"
	LogFormatFlag = "log-format"
	// LogFileFlag names a file that receives a copy of every log line at debug level
	LogFileFlag = "log-file"

	OutputFlag = "output"
	// SelectFlag narrows printing to the node at a slash-separated key path
	SelectFlag     = "select"
	ArgFlag        = "arg"
	NoColorFlag    = "no-color"
	ForceColorFlag = "force-color"
	NoOSExitFlag   = "no-os-exit"
)
