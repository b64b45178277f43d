package datename

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Rename files to their modification timestamp"
	MsgVersionShort = "Print version information"
	MsgConfigShort  = "Print the effective configuration as TOML"

	// Flag descriptions
	MsgFlagDirectory = "Directory whose files are renamed"
	MsgFlagSimulate  = "Report the renames without performing them"

	// Status messages
	MsgVersionFormat = "datename %s\n"
	MsgUsageHint     = "Run 'datename --help' for usage."

	// Error messages
	MsgErrInvalidArgs = "invalid arguments"
	MsgErrNoArgs      = "datename takes no positional arguments"
)

// MsgRootLong is the long description of the root command.
const MsgRootLong = `datename moves every regular file of a directory into its new/
subdirectory, renaming it after its last modification time:

  photo.jpg  -->  new/2024-07-01 10.00.00.jpg

Files modified within the same second get a numeric suffix (-1, -2, ...)
so nothing is overwritten. Hidden files and subdirectories are left alone.

Use --simulate to see what would happen without touching anything.`

// MsgRootExample is shown in the root command's help.
const MsgRootExample = `  datename                  # rename files in the current directory
  datename -d ~/Pictures    # rename files in ~/Pictures
  datename -s -d ~/Pictures # only show what would be renamed`
