package password

import (
	"fmt"

	"github.com/felixgeelhaar/tasklet/internal/password"
	"github.com/spf13/cobra"
)

var (
	length      int
	special     bool
	noDigits    bool
	noUppercase bool
	noLowercase bool
)

// Cmd generates a random password. It shares no state with the task
// engine and touches no storage.
var Cmd = &cobra.Command{
	Use:   "password",
	Short: "Generate a random password",
	Long: `Generate a strong random password.

Lowercase letters, uppercase letters, and digits are included by
default; special characters are opt-in.

Examples:
  tasklet password
  tasklet password --length 24 --special
  tasklet password --length 12 --no-uppercase --no-digits`,
	Aliases: []string{"pw"},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := password.DefaultOptions()
		opts.Length = length
		opts.Special = special
		opts.Digits = !noDigits
		opts.Uppercase = !noUppercase
		opts.Lowercase = !noLowercase

		generated, err := password.Generate(opts)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), generated)
		return nil
	},
}

func init() {
	Cmd.Flags().IntVarP(&length, "length", "l", password.DefaultOptions().Length, fmt.Sprintf("password length (%d-%d)", password.MinLength, password.MaxLength))
	Cmd.Flags().BoolVar(&special, "special", false, "include special characters")
	Cmd.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	Cmd.Flags().BoolVar(&noUppercase, "no-uppercase", false, "exclude uppercase letters")
	Cmd.Flags().BoolVar(&noLowercase, "no-lowercase", false, "exclude lowercase letters")
}
