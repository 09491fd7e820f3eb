package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oleander/sketchfeed/pkg/openprocessing"
)

// catalogCommand creates the catalog listing command.
func (c *CLI) catalogCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the merged curation catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			client, err := c.newClient(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}

			items := client.CurationSketches(cmd.Context(), limit)
			if len(items) == 0 {
				printWarning("Catalog is empty")
				return nil
			}

			printSuccess("%d sketches", len(items))
			printNewline()
			printItems(items)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "per-collection fetch limit (0 = unbounded)")

	return cmd
}

// sketchCommand creates the single-sketch inspection command.
func (c *CLI) sketchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sketch [id]",
		Short: "Show one sketch's metadata, dimensions, and URLs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			client, err := c.newClient(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}

			id := args[0]
			detail := client.Sketch(cmd.Context(), id)
			dims := client.SketchSize(cmd.Context(), id)

			fmt.Println(StyleTitle.Render(titleOrID(detail.Title, id)))
			printNewline()
			printKeyValue("id", detail.VisualID)
			printKeyValue("mode", detail.Mode)
			printKeyValue("license", detail.License)
			printKeyValue("submitted", detail.SubmittedOn)
			printKeyValue("size", formatDimensions(dims))
			printKeyValue("page", openprocessing.SketchURL(id))
			printKeyValue("embed", openprocessing.EmbedURL(id))

			thumb := client.ResolveThumbnail(id)
			if thumb.Asset != nil {
				printKeyValue("thumbnail", thumb.Asset.Path+" (bundled)")
			} else {
				printKeyValue("thumbnail", thumb.URL)
			}

			if detail.Description != "" {
				printNewline()
				printDetail("%s", detail.Description)
			}
			return nil
		},
	}
}

// randomCommand creates the random sampling command.
func (c *CLI) randomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random [count]",
		Short: "Pick random sketches from the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid count %q", args[0])
				}
				count = n
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			client, err := c.newClient(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}

			items := client.RandomCurationSketches(cmd.Context(), count)
			if len(items) == 0 {
				printWarning("Catalog is empty")
				return nil
			}
			printItems(items)
			return nil
		},
	}
}

// printItems renders catalog entries one per line.
func printItems(items []openprocessing.CurationItem) {
	for _, item := range items {
		tag := StyleDim.Render(item.Curation)
		title := StyleValue.Render(titleOrID(item.Title, item.VisualID))
		fmt.Printf("  %s  %s  %s\n", StyleHighlight.Render(item.VisualID), tag, title)
		if item.Fullname != "" {
			printDetail("by %s", item.Fullname)
		}
	}
}

func titleOrID(title, id string) string {
	if title != "" {
		return title
	}
	return "sketch " + id
}

func formatDimensions(d openprocessing.Dimensions) string {
	if d.Width == nil || d.Height == nil {
		return "unknown (window-sized or not inferable)"
	}
	return fmt.Sprintf("%g × %g", *d.Width, *d.Height)
}
