package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule catalog in evaluation order",
	Long: `Lists every rule with its trigger keywords. Rules are tried top to bottom
and the first rule with a keyword contained in the message wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"#", "Rule", "Keywords", "Title", "Steps"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, r := range appInstance.ChatService.ListRules() {
			steps := "-"
			if r.Steps > 0 {
				steps = strconv.Itoa(r.Steps)
			}
			table.Append([]string{
				strconv.Itoa(r.Order),
				r.Name,
				strings.Join(r.Keywords, ", "),
				r.Title,
				steps,
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
