package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// SQLExtension is the file extension picked up when formatting directories
	SQLExtension = ".sql"

	// ConfigBaseName is the base name of the configuration file discovered by walking
	// up from the working directory. Any of the ConfigExtensions may follow it.
	ConfigBaseName = ".tsqlfmt"
)

// ConfigExtensions lists the configuration file extensions in lookup order.
var ConfigExtensions = []string{".yaml", ".yml", ".toml"}
