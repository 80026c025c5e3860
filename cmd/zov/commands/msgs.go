package commands

// Short messages (one-liners)
const (
	MsgRootShort    = "A typed configuration language"
	MsgBuildShort   = "Evaluate a zov file and emit the result"
	MsgAstShort     = "Print the parse tree of a zov file"
	MsgCheckShort   = "Parse and evaluate files, reporting problems"
	MsgVersionShort = "Print version information"
	MsgTopicsShort  = "List reference topics or show one"
	MsgSetupShort   = "Install zov and manage PATH registration"
	MsgInstallShort = "Install the running executable on this machine"
	MsgPathShort    = "Add or remove a directory on the persistent PATH"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: json, yaml, toml or xml"
	MsgFlagOutput   = "Write output to a file instead of stdout"
	MsgFlagDecimal  = "Evaluate arithmetic in exact decimal mode"
	MsgFlagManifest = "Path to a setup manifest (defaults to zov-setup.toml if present)"
	MsgFlagDryRun   = "Show planned steps without changing the system"
	MsgFlagScope    = "Environment scope: user or machine"
	MsgFlagRemove   = "Remove the directory from PATH instead of adding it"

	// Status messages
	MsgPathAdded     = "Added %s to the %s PATH."
	MsgPathPresent   = "%s is already on the %s PATH."
	MsgPathRemoved   = "Removed %s from the %s PATH."
	MsgPathNotFound  = "%s was not on the %s PATH."
	MsgInstallDone   = "Installed %s to %s."
	MsgDryRunNotice  = "Dry run. No changes were made."
	MsgCheckOK       = "%s: ok"
	MsgCheckProblems = "%d of %d files failed"
)

// Long messages
const (
	MsgRootLong = `zov evaluates typed configuration files into JSON, YAML, TOML or XML.
Values keep their type through evaluation, so durations, sizes, dates and
computed expressions come out as what they are.

Run 'zov help topics' for the language and setup references.`

	MsgBuildLong = `Build parses a zov file, evaluates every expression, and writes the
resulting configuration tree to stdout or to the file given with -o.`

	MsgCheckLong = `Check parses and evaluates each file without producing output. Problems
are reported with their position and the offending source line, which makes
it suitable as a pre-commit gate.`

	MsgInstallLong = `Install copies the running executable into the scope's install directory,
creates a Start-menu shortcut, and registers the directory on PATH.

The defaults can be overridden with a zov-setup.toml manifest next to the
binary or a file given with --manifest. PATH registration failures do not
fail the install; the directory to add manually is printed instead.`
)
