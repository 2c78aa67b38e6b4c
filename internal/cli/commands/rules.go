package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/embedtools/archlint/internal/cli/output"
	"github.com/embedtools/archlint/pkg/rules"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group string // filter by group
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [code]",
		Short: "List validation rule codes",
		Long: `List every rule code the validator can report, with severity and
description. Codes listed here are valid values for exclude_codes.`,
		Example: `  # List all rules
  archlint rules

  # Show one rule
  archlint rules ER027

  # List script rules as JSON
  archlint rules --group script -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0])
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group (structure, tree, resource, ioc, buildcfg, trustzone, script)")
	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd).Renderer

	var defs []rules.Def
	if opts.Group != "" {
		defs = rules.GetByGroup(opts.Group)
		if len(defs) == 0 {
			return fmt.Errorf("no rules in group %q", opts.Group)
		}
	} else {
		defs = rules.GetAll()
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(defs)
	case output.ModeYAML:
		return r.YAML(defs)
	default:
		return listRulesText(r, defs)
	}
}

func listRulesText(r *output.Renderer, defs []rules.Def) error {
	styles := r.Styles()

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Code", "Severity", "Group", "Name"})
	for _, def := range defs {
		sev := def.Severity.String()
		if def.Advisory {
			sev += " (advisory)"
		}
		t.AppendRow(table.Row{styles.Bold.Render(def.Code), sev, def.Group, def.Name})
	}
	t.Render()
	r.Printf("%d rules\n", len(defs))
	return nil
}

func showRule(cmd *cobra.Command, code string) error {
	r := NewCommandContext(cmd).Renderer

	def, ok := rules.GetByCode(code)
	if !ok {
		return fmt.Errorf("unknown rule code: %s", code)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(def)
	case output.ModeYAML:
		return r.YAML(def)
	default:
		styles := r.Styles()
		r.Println(styles.Bold.Render(def.Code) + ": " + def.Name)
		r.Println()
		r.Println("Severity:", def.Severity.String())
		r.Println("Group:   ", def.Group)
		if def.Advisory {
			r.Println("Advisory: does not fail the project it is reported on")
		}
		r.Println()
		r.Println(def.Description)
		return nil
	}
}
