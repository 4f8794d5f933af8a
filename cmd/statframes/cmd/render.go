package cmd

import (
	"bytes"
	"fmt"

	"github.com/nfrund/statframes/internal/app"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/nfrund/statframes/internal/storage"
	frametmpl "github.com/nfrund/statframes/web/src/templates/frames"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a frame image for a fid",
	Long: `Render fetches the profile and stats of a fid exactly as the frame
route does and writes the resulting SVG image. Without --fid the splash
image is rendered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fid, _ := cmd.Flags().GetString("fid")
		variantName, _ := cmd.Flags().GetString("variant")
		out, _ := cmd.Flags().GetString("out")

		if fid != "" && !frame.ValidFID(fid) {
			return fmt.Errorf("fid %q is not numeric", fid)
		}

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
		variant := catalog.Default()
		if variantName != "" {
			var ok bool
			if variant, ok = catalog.Get(variantName); !ok {
				return fmt.Errorf("unknown variant %q", variantName)
			}
		}

		view := do.MustInvoke[*frame.Builder](injector).Build(cmd.Context(), variant, fid, nil)
		svg, err := frametmpl.Render(view)
		if err != nil {
			return err
		}

		if out == "-" {
			_, err = cmd.OutOrStdout().Write(svg)
			return err
		}
		if _, err := storage.NewAferoStore(appFs).Save(cmd.Context(), out, bytes.NewReader(svg)); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s image for %s to %s\n", view.State(), variant.Name, out)
		return nil
	},
}

func init() {
	renderCmd.Flags().String("fid", "", "Farcaster fid to render")
	renderCmd.Flags().String("variant", "", "variant name, defaults to FRAME_VARIANT")
	renderCmd.Flags().StringP("out", "o", "frame.svg", `output file, "-" for stdout`)
	rootCmd.AddCommand(renderCmd)
}
