package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/payord-api/pkg/jwt"
)

func newTokenCommand(deps Deps) *cobra.Command {
	var subject, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT firmado con JWT_SECRET para la API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !deps.Config.JWT.Enabled() {
				return errors.New("JWT_SECRET no configurado")
			}
			tok, err := jwt.Generate(deps.Config.JWT.Secret, subject, role, deps.Config.JWT.Issuer, deps.Config.JWT.Expiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "identificador del operador")
	cmd.Flags().StringVar(&role, "role", "operator", "rol: operator | admin")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
