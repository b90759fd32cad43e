// Package flags provides flag parsing utilities shared by the CLI commands
package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// AddOutputFlags registers the --json and --quiet flags every command carries
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool) {
	jsonOutput, _ = p.cmd.Flags().GetBool("json")
	quietMode, _ = p.cmd.Flags().GetBool("quiet")
	return jsonOutput, quietMode
}

// Changed reports whether the flag was set on the command line
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts a string flag, nil when it was not set
func (p *FlagParser) ParseStringOptional(flagName string) (*string, error) {
	if !p.Changed(flagName) {
		return nil, nil
	}
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return &value, nil
}

// ParseStatus extracts a status flag, nil when it was not set.
// Any non-empty value is accepted; non-canonical statuses stay off the board.
func (p *FlagParser) ParseStatus(flagName string) (*models.Status, error) {
	if !p.Changed(flagName) {
		return nil, nil
	}
	value, err := p.ParseString(flagName)
	if err != nil {
		return nil, err
	}
	status := models.Status(value)
	return &status, nil
}

// ParseIntOptional extracts an int flag and whether it was set
func (p *FlagParser) ParseIntOptional(flagName string) (int, bool, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return value, p.Changed(flagName), nil
}
