package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rulebot/internal/clix"
	"rulebot/internal/inputprocessor"
	"rulebot/internal/models"
	"rulebot/internal/services"
)

var (
	classifyOutput string
	classifyFile   string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [message...]",
	Short: "Classify a support message and print the matching checklist",
	Long: `Classifies the message given as arguments. With --file, classifies each
non-blank line of the file. With neither, reads messages from standard input,
one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		format, err := clix.ParseOutputFormat(cmd.Flags())
		if err != nil {
			return err
		}
		if len(args) > 0 && classifyFile != "" {
			return fmt.Errorf("pass either a message or --file, not both")
		}

		out := cmd.OutOrStdout()
		if len(args) > 0 {
			return classifyOne(cmd.Context(), appInstance.ChatService, out, format, clix.JoinMessage(args))
		}

		var input inputprocessor.Result
		if classifyFile != "" {
			input, err = appInstance.InputProcessor.ProcessFile(cmd.Context(), classifyFile)
		} else {
			input, err = appInstance.InputProcessor.ProcessReader(cmd.Context(), cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("reading messages: %w", err)
		}

		for i, msg := range input.Messages {
			if i > 0 && format == clix.OutputText {
				fmt.Fprintln(out)
			}
			if err := classifyOne(cmd.Context(), appInstance.ChatService, out, format, msg); err != nil {
				return err
			}
		}
		return nil
	},
}

// cliReply adds the matched category to the JSON output.
type cliReply struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword,omitempty"`
	models.ChatReply
}

func classifyOne(ctx context.Context, svc *services.ChatService, out io.Writer, format, message string) error {
	reply, err := svc.Reply(ctx, message)
	if err != nil {
		return fmt.Errorf("classify failed: %w", err)
	}

	if format == clix.OutputJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		return enc.Encode(cliReply{Category: reply.Category, Keyword: reply.Keyword, ChatReply: reply})
	}

	printReply(out, reply)
	return nil
}

func printReply(out io.Writer, reply models.ChatReply) {
	color.New(color.Bold, color.FgCyan).Fprintln(out, reply.Title)
	meta := "[" + reply.Category
	if reply.Keyword != "" {
		meta += fmt.Sprintf(" via %q", reply.Keyword)
	}
	color.New(color.Faint).Fprintln(out, meta+"]")
	fmt.Fprintln(out)

	if !reply.HasSteps() {
		fmt.Fprintln(out, reply.Body)
		return
	}
	for _, s := range reply.Steps {
		fmt.Fprintf(out, "- %s\n", s)
	}
	if tip := strings.TrimSpace(reply.Tip); tip != "" {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s %s\n", color.YellowString("Tip:"), tip)
	}
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVarP(&classifyOutput, "output", "o", clix.OutputText, "Output format: text or json")
	classifyCmd.Flags().StringVarP(&classifyFile, "file", "f", "", "Read messages from a text file, one per line")
}
