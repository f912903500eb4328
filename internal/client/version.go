package client

import "github.com/spf13/cobra"

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Annotations: map[string]string{skipAppAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c.out.PrintMessage(c.info.String())
			return nil
		},
	}
}
