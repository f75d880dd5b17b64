package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jclemens/inkplot/internal/pipeline"
	"github.com/jclemens/inkplot/internal/render"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the local dataset store",
	Long: `Datasets are saved explicitly and kept until deleted — the store is an
accumulator, not a cache. Saved datasets feed any chart or table command
via --from.`,
	Example: `  cat crime.jsonl | inkplot store put crime
  inkplot store list
  inkplot store get crime --format jsonl | inkplot bar --label borough --value incidents
  inkplot store delete crime`,
}

var storePutCmd = &cobra.Command{
	Use:   "put NAME",
	Short: "Save stdin JSONL as a named dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		records, err := pipeline.ReadRecords(os.Stdin)
		if err != nil {
			return err
		}
		s, err := openStore(deps)
		if err != nil {
			return err
		}
		defer s.Close()
		if prev, found, _ := s.GetInfo(args[0]); found {
			warn(deps, "replacing dataset %q (%d records)", prev.Name, prev.Records)
		}
		if err := s.Put(args[0], records); err != nil {
			return err
		}
		if !deps.Config.Quiet {
			fmt.Printf("saved %d records as %q\n", len(records), args[0])
		}
		return nil
	},
}

var storeGetCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Print a stored dataset (--format selects the encoding)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		s, err := openStore(deps)
		if err != nil {
			return err
		}
		defer s.Close()
		records, found, err := s.Get(args[0])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("dataset %q not found (see `inkplot store list`)", args[0])
		}
		return render.RenderTo(globalFlags.Out, records, deps.Config.Format)
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		s, err := openStore(deps)
		if err != nil {
			return err
		}
		defer s.Close()
		infos, err := s.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("store is empty")
			return nil
		}
		for _, info := range infos {
			fmt.Printf("%-20s  %6d records  saved %s\n",
				info.Name, info.Records, info.SavedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var storeInfoCmd = &cobra.Command{
	Use:   "info NAME",
	Short: "Show fields and record count for a stored dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		s, err := openStore(deps)
		if err != nil {
			return err
		}
		defer s.Close()
		info, found, err := s.GetInfo(args[0])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("dataset %q not found", args[0])
		}
		fmt.Printf("name:     %s\n", info.Name)
		fmt.Printf("records:  %d\n", info.Records)
		fmt.Printf("saved at: %s\n", info.SavedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("fields:\n")
		for _, f := range info.Fields {
			fmt.Printf("  %s\n", f)
		}
		return nil
	},
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a stored dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		s, err := openStore(deps)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Delete(args[0]); err != nil {
			return err
		}
		if !deps.Config.Quiet {
			fmt.Printf("deleted %q\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storePutCmd)
	storeCmd.AddCommand(storeGetCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeInfoCmd)
	storeCmd.AddCommand(storeDeleteCmd)
}
