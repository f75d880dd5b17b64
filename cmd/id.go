package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jclemens/inkplot/internal/uid"
)

var (
	idCount  int
	idLength int
)

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Generate short unique identifiers",
	Long: `Generates short identifiers for labeling chart exports and dataset
snapshots. The alphabet excludes ambiguous characters (0/O, 1/l/I).
Uniqueness is guaranteed within one invocation; across invocations the
IDs are only probabilistically unique.`,
	Example: `  inkplot id
  inkplot id --count 5 --length 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := uid.NewGeneratorLen(idLength)
		for i := 0; i < idCount; i++ {
			id, err := gen.Next()
			if err != nil {
				return err
			}
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(idCmd)

	idCmd.Flags().IntVar(&idCount, "count", 1, "how many IDs to generate")
	idCmd.Flags().IntVar(&idLength, "length", uid.DefaultLength, "characters per ID")
}
