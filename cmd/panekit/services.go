package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/panekit/panekit/internal/config"
)

type serviceInfo struct {
	ID          string `json:"id"`
	Location    string `json:"location"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
}

func servicesCmd(configDir *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List the registered client script services",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configDir)
			if err != nil {
				return err
			}
			return listServices(cmd.OutOrStdout(), cfg, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

func listServices(w io.Writer, cfg *config.Config, asJSON bool) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	container, err := buildContainer(cfg, logger, nil)
	if err != nil {
		return err
	}
	defer container.Close()

	reg := container.Registry()
	infos := make([]serviceInfo, 0, reg.Len())
	for _, id := range reg.IDs() {
		svc, ok := reg.Get(id)
		if !ok {
			continue
		}
		infos = append(infos, serviceInfo{
			ID:          svc.ID(),
			Location:    svc.Location(),
			ContentType: svc.ContentType(),
			URL:         container.Resolver().Asset(id),
		})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLOCATION\tURL")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.ID, info.Location, info.URL)
	}
	return tw.Flush()
}
