package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/realmtools/cloner"
	"github.com/erraggy/realmtools/parser"
)

// CloneFlags contains flags for the clone command
type CloneFlags struct {
	Name    string
	OldName string
	Output  string
	Quiet   bool
}

// SetupCloneFlags creates and configures a FlagSet for the clone command.
// Returns the FlagSet and a CloneFlags struct with bound flag variables.
func SetupCloneFlags() (*flag.FlagSet, *CloneFlags) {
	fs := flag.NewFlagSet("clone", flag.ContinueOnError)
	flags := &CloneFlags{}

	fs.StringVar(&flags.Name, "n", "", "name for the cloned realm (default: <realm>-copy)")
	fs.StringVar(&flags.Name, "name", "", "name for the cloned realm (default: <realm>-copy)")
	fs.StringVar(&flags.OldName, "old", "", "override the source realm name detected from the document")
	fs.StringVar(&flags.Output, "o", "", "output file path, or '-' for stdout (default: <name>-realm.<ext>)")
	fs.StringVar(&flags.Output, "output", "", "output file path, or '-' for stdout (default: <name>-realm.<ext>)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: realmtools clone [flags] <file|->\n\n")
		Writef(output, "Clone a Keycloak realm export under a new name with fresh identifiers.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nWhat Gets Rewritten:\n")
		Writef(output, "  - Every UUID-shaped identifier is replaced with a fresh one; fields that\n")
		Writef(output, "    referenced the same identifier still reference each other afterwards\n")
		Writef(output, "  - The realm name, display names, and the default-roles-<realm> role names\n")
		Writef(output, "  - Realm-scoped client URLs (/realms/<old>/... -> /realms/<new>/...)\n")
		Writef(output, "  - Masked client secrets (**********) are removed so the server\n")
		Writef(output, "    generates fresh credentials on import\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  realmtools clone ajax-realm.json\n")
		Writef(output, "  realmtools clone -n ajax-dev ajax-realm.json\n")
		Writef(output, "  realmtools clone -n ajax-dev -o dev.json ajax-realm.json\n")
		Writef(output, "  kcadm get realms/ajax | realmtools clone -q -n ajax-dev -o - - > dev.json\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use '-o -' to write the cloned document to stdout\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Clone written successfully\n")
		Writef(output, "  1    Failed to parse or clone the realm export\n")
	}

	return fs, flags
}

// HandleClone executes the clone command
func HandleClone(args []string) error {
	fs, flags := SetupCloneFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("clone command requires exactly one file path or '-' for stdin")
	}

	realmPath := fs.Arg(0)

	// Clone the file or stdin with timing
	startTime := time.Now()
	var result *cloner.CloneResult
	var err error

	if realmPath == StdinFilePath {
		p := parser.New()
		parseResult, parseErr := p.ParseReader(os.Stdin)
		if parseErr != nil {
			return fmt.Errorf("parsing stdin: %w", parseErr)
		}
		result, err = cloner.CloneWithOptions(
			cloner.WithParsed(parseResult),
			cloner.WithNewName(flags.Name),
			cloner.WithOldName(flags.OldName),
		)
		if err != nil {
			return fmt.Errorf("cloning from stdin: %w", err)
		}
	} else {
		result, err = cloner.CloneWithOptions(
			cloner.WithFilePath(realmPath),
			cloner.WithNewName(flags.Name),
			cloner.WithOldName(flags.OldName),
		)
		if err != nil {
			return fmt.Errorf("cloning file: %w", err)
		}
	}
	totalTime := time.Since(startTime)

	// Print diagnostic messages (to stderr to keep stdout clean for pipelining)
	if !flags.Quiet {
		Writef(os.Stderr, "Keycloak Realm Cloner\n")
		Writef(os.Stderr, "=====================\n\n")
		OutputRealmHeader(realmPath, result.OldName)
		Writef(os.Stderr, "Cloned As: %s\n", result.NewName)
		if result.OldID != "" {
			Writef(os.Stderr, "Realm ID: %s -> %s\n", result.OldID, result.NewID)
		}
		Writef(os.Stderr, "Identifiers Remapped: %d\n", result.IDCount)
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if result.HasRewrites() {
			Writef(os.Stderr, "Rewrites (%d):\n", result.RewriteCount)
			for _, rw := range result.Rewrites {
				Writef(os.Stderr, "  - [%s] %s: %s\n", rw.Type, rw.Path, rw.Description)
			}
			Writef(os.Stderr, "\n")
		}
	}

	// Write output
	data, err := MarshalDocument(result.Document, result.SourceFormat)
	if err != nil {
		return fmt.Errorf("marshaling cloned document: %w", err)
	}

	outputPath := flags.Output
	if outputPath == "" {
		outputPath = DefaultCloneOutput(result.NewName, result.SourceFormat)
	}

	if outputPath == StdoutFilePath {
		if _, err = os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing cloned document to stdout: %w", err)
		}
		return nil
	}

	if err := ValidateOutputPath(outputPath, []string{realmPath}); err != nil {
		return err
	}
	if err := RejectSymlinkOutput(filepath.Clean(outputPath)); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if !flags.Quiet {
		Writef(os.Stderr, "✓ Clone written to: %s\n", outputPath)
	}

	return nil
}

// DefaultCloneOutput returns the output path used when the caller does not
// choose one: <name>-realm.<ext> in the current directory.
func DefaultCloneOutput(newName string, format parser.SourceFormat) string {
	return fmt.Sprintf("%s-realm.%s", newName, format.Extension())
}
