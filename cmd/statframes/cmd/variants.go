package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/statframes/internal/app"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the configured frame variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		injector := app.NewContainer(cfg, appFs)
		defer app.Close(cmd.Context(), injector)

		catalog, err := do.Invoke[*frame.Catalog](injector)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTITLE\tENDPOINTS\tRESET\tDEFAULT")
		for _, name := range catalog.Names() {
			v, _ := catalog.Get(name)
			def := ""
			if name == catalog.Default().Name {
				def = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", v.Name, v.Title, len(v.Endpoints), v.Reset.Kind, def)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
