package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/seaboard/dashkit/userform"
)

var errInvalidUser = errors.New("user form is invalid")

func validateUserCmd() *cobra.Command {
	var f userform.Form

	cmd := &cobra.Command{
		Use:   "validate-user",
		Short: "Validate user form values and print the result as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := userform.Validate(f)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.OK {
				return errInvalidUser
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.FirstName, userform.FieldFirstName, "", "First name")
	cmd.Flags().StringVar(&f.LastName, userform.FieldLastName, "", "Last name")
	cmd.Flags().StringVar(&f.Email, userform.FieldEmail, "", "Email address")
	cmd.Flags().StringVar(&f.Company, userform.FieldCompany, "", "Company id (numeric)")
	cmd.Flags().StringVar(&f.UserRole, userform.FieldUserRole, "", "Role id (numeric)")
	return cmd
}
