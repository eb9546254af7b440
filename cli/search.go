package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <target> [values...]",
		Short:   "Print the index where target belongs in the sorted values",
		Example: "bisect search 3 1 2 2 3 3 3 4\nbisect search --bias left --range 2..6 3 1 2 2 3 3 3 4",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: a.bindSearchFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.newRequest(cmd, args)
			if err != nil {
				return err
			}
			res, err := a.run(req, false)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.index)
			return nil
		},
	}
	addSearchFlags(cmd)
	return cmd
}

func (a *app) insortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "insort <target> [values...]",
		Short:   "Insert target into the sorted values and print the result",
		Example: "bisect insort 3 1 2 4\nprintf 'b\\nc\\n' | bisect insort --type string a",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: a.bindSearchFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.newRequest(cmd, args)
			if err != nil {
				return err
			}
			res, err := a.run(req, true)
			if err != nil {
				return err
			}
			a.log.Infof("inserted %s at %d", req.target, res.index)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.values, " "))
			return nil
		},
	}
	addSearchFlags(cmd)
	return cmd
}
