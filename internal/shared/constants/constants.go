package constants

import "io/fs"

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// DefaultDatabasePath is where the entry store lives unless configured otherwise.
	DefaultDatabasePath = "data/crypto_risk.db"
	// DefaultOutputFormat is used by analyzer commands when --format is not given.
	DefaultOutputFormat = "text"
	// ReportRuleWidth is the width of separator rules in text reports.
	ReportRuleWidth = 80
)
