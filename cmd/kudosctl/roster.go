package main

import (
	"fmt"
	"io"

	"radya-hi5/internal/entities"
	"radya-hi5/internal/roster"

	"github.com/spf13/cobra"
)

const (
	membersFlagName = "members"
	emailsFlagName  = "emails"
	valuesFlagName  = "values"
)

func rosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "inspect the static roster files",
	}
	cmd.AddCommand(rosterValidateCmd())
	return cmd
}

func rosterValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "load the roster, fallback emails and values and report problems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			members, _ := flags.GetString(membersFlagName)
			emails, _ := flags.GetString(emailsFlagName)
			values, _ := flags.GetString(valuesFlagName)
			return validateRoster(cmd.OutOrStdout(), members, emails, values)
		},
	}
	cmd.Flags().String(membersFlagName, "data/team-members.json", "roster file (JSON or YAML)")
	cmd.Flags().String(emailsFlagName, "data/team-members-email.json", "fallback email file, empty to skip")
	cmd.Flags().String(valuesFlagName, "data/values.json", "value catalog file")
	return cmd
}

func validateRoster(out io.Writer, membersFile, emailsFile, valuesFile string) error {
	dir, err := roster.Load(membersFile, emailsFile)
	if err != nil {
		return err
	}
	catalog, err := roster.LoadValues(valuesFile)
	if err != nil {
		return err
	}

	var undeliverable int
	for _, m := range dir.Members() {
		if entities.IsDeliverable(m.Email) {
			continue
		}
		id := m.ID
		if _, ok := dir.DeliveryAddress(m.Email, &id); ok {
			continue
		}
		undeliverable++
		fmt.Fprintf(out, "warning: %s (%s) has no deliverable email\n", m.ID, m.Name)
	}
	fmt.Fprintf(out, "members: %d, values: %d, undeliverable: %d\n", dir.Len(), len(catalog.All()), undeliverable)
	return nil
}
