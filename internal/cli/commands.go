package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/ui"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a todo (text can be multiple words)",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return usagef("add: empty text")
			}
			if err := opts.app.store.AddTodo(text); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), opts.palette(), "added")
			return nil
		},
	}
}

func newDoneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle done for the todo at a 1-based index (as shown by ls)",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.todoAt(args[0])
			if err != nil {
				return err
			}
			if err := opts.app.store.ToggleTodo(t.ID); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), opts.palette(), "toggled")
			return nil
		},
	}
}

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"remove"},
		Short:   "Remove the todo at a 1-based index",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.todoAt(args[0])
			if err != nil {
				return err
			}
			if err := opts.app.store.RemoveTodo(t.ID); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), opts.palette(), "removed")
			return nil
		},
	}
}

func newThemeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Toggle the theme, or set it explicitly",
		Args:      usageArgs(cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs)),
		ValidArgs: []string{string(model.ThemeLight), string(model.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if len(args) == 1 {
				err = opts.app.store.Dispatch(model.SetTheme{Theme: model.Theme(args[0])})
			} else {
				err = opts.app.store.ToggleTheme()
			}
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), opts.palette(), "theme: "+opts.app.store.State().Theme.String())
			return nil
		},
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all todos",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.store.ResetAll(); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), opts.palette(), "reset")
			return nil
		},
	}
}

// todoAt resolves a 1-based index into the newest-first list.
func (o *rootOptions) todoAt(arg string) (model.Todo, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.Todo{}, usagef("not a number: %s", arg)
	}
	todos := o.app.store.State().Todos
	if n < 1 || n > len(todos) {
		return model.Todo{}, usagef("index out of range: have %d, got %d (run `demo ls` to see valid indexes)", len(todos), n)
	}
	return todos[n-1], nil
}

type listOptions struct {
	output string
	group  bool
	match  string
}

func newListCmd(opts *rootOptions) *cobra.Command {
	lo := &listOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			todos := opts.app.store.State().Todos
			rows := filterRows(todos, lo.match)
			out := cmd.OutOrStdout()

			switch lo.output {
			case "table":
				fmt.Fprintln(out, renderTable(todos, rows, lo.group, opts.palette()))
			case "json":
				b, err := json.MarshalIndent(selectTodos(todos, rows), "", "  ")
				if err != nil {
					return fmt.Errorf("json marshal: %w", err)
				}
				fmt.Fprintln(out, string(b))
			case "yaml":
				b, err := yaml.Marshal(selectTodos(todos, rows))
				if err != nil {
					return fmt.Errorf("yaml marshal: %w", err)
				}
				fmt.Fprint(out, string(b))
			default:
				return usagef("unknown output %q (table|json|yaml)", lo.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lo.output, "output", "o", "table", "output format (table|json|yaml)")
	cmd.Flags().BoolVar(&lo.group, "group", false, "group output by pending/done")
	cmd.Flags().StringVar(&lo.match, "match", "", "only show todos fuzzy-matching this pattern")
	return cmd
}

func selectTodos(todos []model.Todo, rows []int) []model.Todo {
	out := make([]model.Todo, 0, len(rows))
	for _, i := range rows {
		out = append(out, todos[i])
	}
	return out
}
