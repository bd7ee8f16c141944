// Command goroles prints the compiled role catalog, a single role or a role group.
//
//	goroles [-config file.yaml] [-format text|yaml|json] [-role name] [-group name] [-metrics] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"cdr.dev/slog/v3"
	"cdr.dev/slog/v3/sloggers/sloghuman"

	goRoles "github.com/MrEthical07/goRoles"
	"github.com/MrEthical07/goRoles/catalog"
	"github.com/MrEthical07/goRoles/export"
	"github.com/MrEthical07/goRoles/metrics/export/prometheus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("goroles", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML configuration file; defaults apply when empty")
		format     = fs.String("format", "text", "output format: text, yaml or json")
		roleName   = fs.String("role", "", "print only this role")
		groupName  = fs.String("group", "", "print only the roles of this group")
		metrics    = fs.Bool("metrics", false, "print table gauges in Prometheus text format")
		verbose    = fs.Bool("v", false, "log each resolved role")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *roleName != "" && *groupName != "" {
		fmt.Fprintln(stderr, "-role and -group are mutually exclusive")
		return 2
	}

	f, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	ctx := context.Background()
	logger := slog.Make(sloghuman.Sink(stderr))
	if *verbose {
		logger = logger.Leveled(slog.LevelDebug)
	}

	cfg := goRoles.DefaultConfig()
	if *configPath != "" {
		cfg, err = goRoles.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "load config", slog.F("path", *configPath), slog.Error(err))
			return 1
		}
	}
	for _, w := range cfg.Lint() {
		logger.Warn(ctx, w.Message, slog.F("code", w.Code))
	}

	table, err := catalog.Build(cfg, logger)
	if err != nil {
		logger.Error(ctx, "build role table", slog.Error(err))
		return 1
	}

	switch {
	case *metrics:
		_, err = io.WriteString(stdout, prometheus.NewPrometheusExporter(table).Render())
	case *roleName != "":
		var role *goRoles.Role
		role, err = table.Role(*roleName)
		if err == nil {
			err = export.WriteRoles(stdout, []*goRoles.Role{role}, f)
		}
	case *groupName != "":
		var roles []*goRoles.Role
		roles, err = table.Group(*groupName)
		if err == nil {
			err = export.WriteRoles(stdout, roles, f)
		}
	default:
		err = export.Write(stdout, table, f)
	}
	if err != nil {
		logger.Error(ctx, "render", slog.Error(err))
		return 1
	}
	return 0
}
