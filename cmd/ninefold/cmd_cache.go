package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ninefold/report"
	"github.com/katalvlaran/ninefold/store"
)

var errNoCache = errors.New("no cache configured (use --cache or cache.path)")

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the report cache",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List cached reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(st *store.Store) error {
				entries, err := st.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				return report.WriteEntries(cmd.OutOrStdout(), a.format, entries)
			})
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "Maximum entries (0 = all)")

	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete every cached report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(st *store.Store) error {
				n, err := st.Purge(cmd.Context())
				if err != nil {
					return err
				}
				a.log.Info("cache purged", "removed", n)
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached reports\n", n)
				return err
			})
		},
	}

	cmd.AddCommand(list, purge)

	return cmd
}

func (a *app) withStore(fn func(*store.Store) error) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	if st == nil {
		return errNoCache
	}
	defer st.Close()

	return fn(st)
}
