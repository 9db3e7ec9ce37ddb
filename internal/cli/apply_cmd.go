package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workboard/internal/cli/formatter"
	"github.com/alexanderramin/workboard/internal/contract"
	"github.com/alexanderramin/workboard/internal/fixture"
	"github.com/spf13/cobra"
)

type applyView struct {
	Results []contract.OpResult     `json:"results"`
	Board   *contract.BoardResponse `json:"board,omitempty"`
}

func newApplyCmd(app *App) *cobra.Command {
	var showBoard bool
	var today *time.Time

	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Apply create/update/delete operations from a file, then print the board",
		Long: "Runs each operation in order against the loaded board. Failed operations are\n" +
			"reported and skipped. Changes live only for this invocation.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, err := fixture.LoadOps(args[0])
			if err != nil {
				return fmt.Errorf("loading ops: %w", err)
			}
			results, err := app.Board.Apply(ctx, ops)
			if err != nil {
				return err
			}

			view := applyView{Results: results}
			if showBoard {
				view.Board, err = app.Board.Board(ctx, contract.BoardRequest{
					Timescale:  string(app.Config.Timescale),
					Today:      today,
					LaneHeight: app.Config.LaneHeight,
				})
				if err != nil {
					return err
				}
			}
			return app.render(cmd.OutOrStdout(), view, func() string {
				out := formatter.FormatOpResults(view.Results)
				if view.Board != nil {
					out += "\n" + formatter.FormatBoard(view.Board)
				}
				return out
			})
		},
	}

	cmd.Flags().BoolVar(&showBoard, "board", true, "Print the resulting board")
	dateFlag(cmd.Flags(), &today, "today", "Reference date for the board range")

	return cmd
}
