package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/klauern/lazyopencode/internal/filter"
	"github.com/klauern/lazyopencode/internal/model"
	"github.com/klauern/lazyopencode/internal/paths"
	"github.com/klauern/lazyopencode/internal/ui"
	"github.com/klauern/lazyopencode/internal/ui/tui"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List discovered customizations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "Scope filter: all, global, or project",
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Case-insensitive substring match on name or description",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: table or json",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)

			level, err := filter.ParseLevel(cmd.String("level"))
			if err != nil {
				return err
			}

			catalog := newStore(cfg).Refresh()
			entries := filter.Apply(*catalog, level, cmd.String("query"))

			format := cmd.String("format")
			if format == "" {
				format = cfg.Output.Format
			}

			switch format {
			case "json":
				return printJSON(entries)
			case "table", "":
				printTable(entries)
				if n := len(catalog.Diagnostics); n > 0 {
					fmt.Println(ui.Dim(fmt.Sprintf("%d diagnostic(s); run 'lazyopencode diagnostics' for details", n)))
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q (valid: table, json)", format)
			}
		},
	}
}

func diagnosticsCommand() *cli.Command {
	return &cli.Command{
		Name:  "diagnostics",
		Usage: "Show non-fatal problems from the last scan",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)
			catalog := newStore(cfg).Refresh()

			if len(catalog.Diagnostics) == 0 {
				fmt.Println(ui.StatusValid("no diagnostics"))
				return nil
			}

			for _, d := range catalog.Diagnostics {
				fmt.Printf("%s %s\n  %s\n", ui.Warning(ui.SymbolDegraded), d.Path, ui.Dim(d.Message))
			}
			fmt.Printf("\n%s\n", ui.Bold(fmt.Sprintf("%d diagnostic(s)", len(catalog.Diagnostics))))
			return nil
		},
	}
}

func browseCommand() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse customizations interactively",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)
			m := tui.NewBrowseModel(newStore(cfg))
			_, err := tui.Run(m)
			return err
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Display the resolved scan roots",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)
			fmt.Println(ui.Header("Scan roots:"))
			fmt.Printf("  Global:  %s\n", paths.GlobalRoot(cfg.HomeDir()))
			fmt.Printf("  Project: %s\n", cfg.ProjectDir())
			fmt.Println()
			fmt.Println(ui.Header("Artifact locations (fixed):"))
			for _, typ := range model.AllTypes() {
				for _, scope := range model.AllScopes() {
					for _, p := range paths.Resolve(typ, scope, cfg.HomeDir(), cfg.ProjectDir()) {
						fmt.Printf("  %-8s %-8s %s\n", typ.Label(), scope.Label(), p.Glob)
					}
				}
			}
			return nil
		},
	}
}

// printJSON writes entries as a JSON array to stdout.
func printJSON(entries []model.Customization) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// printTable writes entries as an aligned table sized to the terminal.
func printTable(entries []model.Customization) {
	if len(entries) == 0 {
		fmt.Println(ui.Dim("no customizations found"))
		return
	}

	descWidth := 40
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 60 {
		descWidth = w - 52
	}

	fmt.Printf("%s\n", ui.Header(fmt.Sprintf("%-2s %-9s %-8s %-22s %s", "", "TYPE", "SCOPE", "NAME", "DESCRIPTION")))
	for _, c := range entries {
		symbol := ui.StatusValid("")
		if !c.Status.IsValid() {
			symbol = ui.StatusDegraded("")
		}
		desc := c.Description
		if len(desc) > descWidth && descWidth > 3 {
			desc = desc[:descWidth-3] + "..."
		}
		fmt.Printf("%-2s %-9s %-8s %-22s %s\n", symbol, c.Type.Label(), c.Scope.Label(), c.Name, desc)
	}
	fmt.Printf("\n%s\n", ui.Dim(fmt.Sprintf("%d customization(s)", len(entries))))
}
