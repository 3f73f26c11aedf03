package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/accord-sh/accord/internal/adapter/outbound/batchsource"
	"github.com/accord-sh/accord/internal/adapter/outbound/celquery"
)

var (
	queryConstraintsPath string
	queryExpr            string
)

// queryCmd is a reporting/debugging tool for administrators managing large
// constraint sets: it never participates in conflict evaluation itself
// (internal/domain/conflict's five-comparator algebra is unchanged by it).
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Report which constraint records match a CEL boolean expression",
	Long: `query loads a constraint batch and evaluates a CEL boolean expression
over each record's document_count, actor_count, action_kind, comparator,
owner, and value_count fields, printing the matching records as JSON.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryConstraintsPath, "constraints", "", "path to a JSON array of constraint records")
	queryCmd.Flags().StringVar(&queryExpr, "expr", "", "CEL boolean expression over constraint fields")
	_ = queryCmd.MarkFlagRequired("constraints")
	_ = queryCmd.MarkFlagRequired("expr")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rows, err := batchsource.LoadConstraints(queryConstraintsPath)
	if err != nil {
		return err
	}

	matched, err := celquery.QueryBatch(ctx, rows, queryExpr)
	if err != nil {
		return fmt.Errorf("querying constraints: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(matched)
}
