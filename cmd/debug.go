package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// DebugCatalog reports provider credential status.
//
// Mirrors the /debug/catalog endpoint so a misconfigured provider can be
// diagnosed without a running server.
func (r *Runner) DebugCatalog(ctx context.Context, cmd *cli.Command) error {
	cat := r.config.Credentials.Catalog

	canFetch := false
	if r.creds != nil {
		_, err := r.creds.Token(ctx)
		canFetch = err == nil
	}

	status := map[string]bool{
		"hasClientId":     cat.ClientID != "",
		"hasClientSecret": cat.ClientSecret != "",
		"hasAccessToken":  cat.AccessToken != "",
		"canFetchToken":   canFetch,
	}

	return r.writeJSON(status, cmd.Bool("pretty"))
}

// debugCommand surfaces provider configuration status
func debugCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "debug",
		Usage: "Show catalog provider credential status",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.DebugCatalog,
	}
}
