package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/state"
)

// forgetCmd clears the remembered item of a deck.
var forgetCmd = &cobra.Command{
	Use:   "forget [deck]",
	Short: "Forget the last item viewed in a deck",
	Long: `Forget the remembered position of a deck so the next run starts on
its first item. Without an argument the deck from the config is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runForget,
}

func init() {
	rootCmd.AddCommand(forgetCmd)
}

func runForget(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	deckPath, err := resolveDeck(cfg, args)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(deckPath)
	if err != nil {
		return err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer stateMgr.Close()

	return forget(stateMgr, abs, cmd)
}

func forget(s state.Interface, deckPath string, cmd *cobra.Command) error {
	if err := s.ForgetPosition(deckPath); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpStateSave, deckPath, err))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Forgot position for %s\n", deckPath)
	return nil
}
