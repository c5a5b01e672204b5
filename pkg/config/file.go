package config

// File documents the keys a config file may set. Every key maps onto the
// flag of the same name; patterns are regular expressions.
type File struct {
	Dir       string `json:"dir,omitempty"`
	Not       string `json:"not,omitempty"`
	Match     string `json:"match,omitempty"`
	Ignore    string `json:"ignore,omitempty"`
	Require   string `json:"require,omitempty"`
	Recursive bool   `json:"recursive,omitempty"`
	Tree      bool   `json:"tree,omitempty"`
	Encoding  string `json:"encoding,omitempty"`
	Chroot    string `json:"chroot,omitempty"`

	// Output is yaml, json or table
	Output    string `json:"output,omitempty"`
	Select    string `json:"select,omitempty"`
	LogLevel  string `json:"log-level,omitempty"`
	LogFormat string `json:"log-format,omitempty"`
	LogFile   string `json:"log-file,omitempty"`
}
