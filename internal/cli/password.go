package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for auth.managers[].password_hash",
		Long:  `Hash a manager password. Without an argument the password is read from the terminal (no echo) or from the first line of stdin.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				var err error
				if password, err = readPassword(cmd); err != nil {
					return err
				}
			}
			if password == "" {
				return errors.New("empty password")
			}
			hash, err := service.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout(cmd), hash)
			return nil
		},
	}
}

func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		return string(b), err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
