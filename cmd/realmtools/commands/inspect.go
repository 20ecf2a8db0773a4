package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/realmtools/parser"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	Format            string
	ValidateStructure bool
	Quiet             bool
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
// Returns the FlagSet and an InspectFlags struct with bound flag variables.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.ValidateStructure, "validate-structure", true, "validate document structure during parsing")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the summary, no diagnostic header")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the summary, no diagnostic header")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: realmtools inspect [flags] <file|->\n\n")
		Writef(output, "Parse a Keycloak realm export and display a structural summary.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  realmtools inspect ajax-realm.json\n")
		Writef(output, "  realmtools inspect -f json ajax-realm.json\n")
		Writef(output, "  kcadm get realms/ajax | realmtools inspect -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed or structural errors found\n")
	}

	return fs, flags
}

// RealmSummary is the structured output of the inspect command.
type RealmSummary struct {
	Realm           string            `json:"realm"            yaml:"realm"`
	ID              string            `json:"id,omitempty"     yaml:"id,omitempty"`
	KeycloakVersion string            `json:"keycloakVersion,omitempty" yaml:"keycloakVersion,omitempty"`
	Format          string            `json:"format"           yaml:"format"`
	SourceSize      int64             `json:"sourceSize"       yaml:"sourceSize"`
	Stats           parser.RealmStats `json:"stats"            yaml:"stats"`
	Warnings        []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	fs, flags := SetupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	realmPath := fs.Arg(0)

	p := parser.New()
	p.ValidateStructure = flags.ValidateStructure

	var result *parser.ParseResult
	var err error
	if realmPath == StdinFilePath {
		result, err = p.ParseReader(os.Stdin)
	} else {
		result, err = p.Parse(realmPath)
	}
	if err != nil {
		return fmt.Errorf("parsing realm export: %w", err)
	}

	rootID, _ := result.RootID()
	summary := RealmSummary{
		Realm:           result.RealmName,
		ID:              rootID,
		KeycloakVersion: result.KeycloakVersion,
		Format:          string(result.SourceFormat),
		SourceSize:      result.SourceSize,
		Stats:           result.Stats,
		Warnings:        result.Warnings,
	}

	if flags.Format != FormatText {
		if err := OutputStructured(summary, flags.Format); err != nil {
			return err
		}
	} else {
		if !flags.Quiet {
			Writef(os.Stderr, "Keycloak Realm Inspector\n")
			Writef(os.Stderr, "========================\n\n")
			OutputRealmHeader(realmPath, result.RealmName)
			if result.KeycloakVersion != "" {
				Writef(os.Stderr, "Keycloak Version: %s\n", result.KeycloakVersion)
			}
			Writef(os.Stderr, "\n")
		}
		OutputRealmStats(result.SourceSize, result.Stats, result.LoadTime)
		Writef(os.Stderr, "Identity Providers: %d\n", result.Stats.IdentityProviderCount)
		Writef(os.Stderr, "Authentication Flows: %d\n", result.Stats.AuthenticationFlowCount)
		Writef(os.Stderr, "Components: %d\n", result.Stats.ComponentCount)
	}

	if len(result.Warnings) > 0 && flags.Format == FormatText {
		Writef(os.Stderr, "\nWarnings (%d):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			Writef(os.Stderr, "  - %s\n", warning)
		}
	}

	if len(result.Errors) > 0 {
		Writef(os.Stderr, "\nStructural Errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			Writef(os.Stderr, "  - %s\n", e)
		}
		os.Exit(1)
	}

	return nil
}
