package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"contribcard/internal/directory"
	"contribcard/internal/search"
)

var (
	listLimit   int
	listAvatars bool
)

var listCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List contributors, optionally those whose login starts with prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum number of logins (0 for all)")
	listCmd.Flags().BoolVar(&listAvatars, "avatars", false, "print avatar URLs")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.closeLog()

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Data.Timeout())
	defer cancel()

	dir, err := a.client.LoadDirectory(ctx)
	if err != nil {
		return err
	}

	limit := listLimit
	if limit <= 0 {
		limit = dir.Len()
	}
	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	out := cmd.OutOrStdout()
	for _, login := range search.Filter(dir, prefix, limit) {
		if !listAvatars {
			fmt.Fprintln(out, login)
			continue
		}
		id, _ := dir.Lookup(login)
		fmt.Fprintf(out, "%s\t%s\n", login, directory.AvatarURL(id))
	}
	return nil
}
