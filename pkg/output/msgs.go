package output

// Report lines. These are the program's stdout contract.
const (
	MsgSimulating          = "Simulating..."
	MsgCreatingDestination = "Creating new location"
	MsgRenameVerb          = "Renaming"
	MsgRenameArrow         = "-->"
)
