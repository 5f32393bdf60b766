package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/klowq/admin-dashboard/internal/blogs"
	"github.com/klowq/admin-dashboard/internal/doctors"
	"github.com/klowq/admin-dashboard/internal/models"
	"github.com/klowq/admin-dashboard/internal/preferences"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newBlogsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "blogs", Short: "Inspect blog posts"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every blog post as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			list, err := blogs.NewStore(cfg.Data.Dir).List()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	})
	return cmd
}

func newPreferencesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "preferences", Short: "Inspect or seed preferences"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every preference as JSON, seeding defaults when empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			list, err := preferences.NewStore(cfg.Data.Dir).List()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	}, &cobra.Command{
		Use:   "seed",
		Short: "Write the default preferences if the file is missing or empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			list, err := preferences.NewStore(cfg.Data.Dir).Seed()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d preferences\n", len(list))
			return nil
		},
	})
	return cmd
}

func newDoctorsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "doctors", Short: "Inspect or import the doctor roster"}

	var query, status string
	list := &cobra.Command{
		Use:   "list",
		Short: "Print doctors as JSON, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			all, err := doctors.NewLoader(cfg.Data.Dir).List()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doctors.Filter(all, query, models.DoctorStatus(status)))
		},
	}
	list.Flags().StringVarP(&query, "query", "q", "", "match id, name, specialization or title")
	list.Flags().StringVar(&status, "status", "", "only doctors with this status")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the doctor roster with a JSON file",
		Long: `Import validates a JSON array of doctors and replaces doctors.json with it.
Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			n, err := doctors.Import(cfg.Data.Dir, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d doctors\n", n)
			return nil
		},
	}
	cmd.AddCommand(list, importCmd)
	return cmd
}
