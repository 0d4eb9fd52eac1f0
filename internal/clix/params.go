package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// ParseOutputFormat reads the "output" flag, defaulting to text.
func ParseOutputFormat(flags *pflag.FlagSet) (string, error) {
	format, _ := flags.GetString("output")
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "", OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected text or json)", format)
	}
}

// JoinMessage joins positional args into one message.
func JoinMessage(args []string) string {
	return strings.Join(args, " ")
}
