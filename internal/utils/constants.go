package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// Ignore file and configuration naming shared by the loaders.
const (
	// GitIgnoreFileName is the only ignore file consulted, and only at the scan root.
	GitIgnoreFileName = ".gitignore"
	// CommentPrefix marks ignore file lines that carry no pattern.
	CommentPrefix = "#"
	// DirectoryMarker is the trailing marker stripped from patterns before prefix matching.
	DirectoryMarker = "/"
	// ConfigFileName is the local configuration file looked up in the working directory.
	ConfigFileName = ".dirdoc.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".dirdoc"
	// GlobalConfigFileName is the file name of the global configuration.
	GlobalConfigFileName = "config.yaml"
)

// Messages used by the entry point.
const (
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %v"
	ApplicationExecutionFailedMessage       = "dirdoc failed"
)
