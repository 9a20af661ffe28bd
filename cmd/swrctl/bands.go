package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RMahshie/swrscope/internal/repository/filestore"
	"github.com/RMahshie/swrscope/internal/swr"
)

func newBandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "Print the band catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := filestore.NewCatalog(catalogPath)
			if err != nil {
				return err
			}
			bands, err := catalog.Bands(cmd.Context())
			if err != nil {
				return err
			}
			plans, err := catalog.BandPlans(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "BAND\tSTART\tEND\tSEGMENTS")
			for _, b := range bands {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
					b.Name, swr.FormatFrequency(b.StartFreq), swr.FormatFrequency(b.EndFreq), len(plans[b.Name]))
			}
			return tw.Flush()
		},
	}
}
