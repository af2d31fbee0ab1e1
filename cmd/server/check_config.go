package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"commentgate/internal/config"
)

func checkConfigCommand() *cli.Command {
	return &cli.Command{
		Name:   "check-config",
		Usage:  "Validate the configuration and site file without starting the server",
		Action: runCheckConfig,
	}
}

func runCheckConfig(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load config: %v", err), 1)
	}

	site, err := config.LoadSite(cfg.Server.SiteConfig)
	if err != nil {
		fmt.Fprintf(c.App.Writer, "error: site file %s: %v\n", cfg.Server.SiteConfig, err)
	} else {
		defer site.Close()
	}

	problems := config.Validate(cfg, site)
	for _, p := range problems {
		fmt.Fprintln(c.App.Writer, p.String())
	}
	if config.HasFatal(problems) {
		return cli.Exit("configuration is not usable", 1)
	}

	fmt.Fprintln(c.App.Writer, "configuration ok")
	return nil
}
