package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contribcard/internal/datasource"
	"contribcard/internal/directory"
	"contribcard/internal/ui/views"
)

var (
	cardJSON  bool
	cardWidth int
)

var cardCmd = &cobra.Command{
	Use:   "card <login>",
	Short: "Print the card of a contributor",
	Args:  cobra.ExactArgs(1),
	RunE:  runCard,
}

func init() {
	cardCmd.Flags().BoolVar(&cardJSON, "json", false, "print the contributor document as JSON")
	cardCmd.Flags().IntVarP(&cardWidth, "width", "w", 80, "card width")
}

func runCard(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.closeLog()

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Data.Timeout())
	defer cancel()

	login := args[0]
	contributor, err := a.client.Contributor(ctx, login)
	if errors.Is(err, datasource.ErrNotFound) {
		fmt.Fprintln(os.Stderr, views.NotFoundMessage)
		return fmt.Errorf("%s: %w", login, err)
	}
	if err != nil {
		return err
	}

	if cardJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(contributor)
	}

	state := views.CardState{
		Status:       views.CardLoaded,
		Login:        login,
		Contributor:  contributor,
		SiteURL:      a.cfg.UISettings.SiteURL,
		ShareMessage: a.cfg.UISettings.ShareMessage,
		ShowShare:    true,
	}
	if dir, err := a.client.LoadDirectory(ctx); err == nil {
		if id, ok := dir.Lookup(login); ok {
			state.AvatarURL = directory.AvatarURL(id)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), views.NewCardRenderer(views.NewStyles()).Render(state, cardWidth))
	return nil
}
