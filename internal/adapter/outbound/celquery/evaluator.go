// Package celquery lets an administrator query a constraint batch with a
// CEL boolean expression over each raw record's fields: document count,
// actor count, action kind, comparator, owner, and allowed-value count.
// It is a read-only reporting tool, grounded on the teacher's
// internal/adapter/outbound/cel package, and is deliberately kept out of
// the evaluation algebra in internal/domain/conflict — it never becomes a
// sixth comparator.
package celquery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/cel-go/cel"

	"github.com/accord-sh/accord/internal/domain/constraint"
)

// maxExpressionLength bounds administrator-supplied query expressions,
// mirroring the teacher's CEL hardening limits.
const maxExpressionLength = 1024

// maxCostBudget bounds CEL evaluation cost per expression.
const maxCostBudget = 100_000

// evalTimeout bounds a single query evaluation.
const evalTimeout = 5 * time.Second

// Evaluator compiles and evaluates CEL expressions over constraint records.
type Evaluator struct {
	env *cel.Env
}

// NewConstraintQueryEnvironment builds the CEL environment exposing
// constraint-record fields as query variables.
func NewConstraintQueryEnvironment() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("document_count", cel.IntType),
		cel.Variable("actor_count", cel.IntType),
		cel.Variable("action_kind", cel.StringType),
		cel.Variable("comparator", cel.StringType),
		cel.Variable("owner", cel.StringType),
		cel.Variable("value_count", cel.IntType),
	)
}

// NewEvaluator returns an Evaluator over the constraint-query environment.
func NewEvaluator() (*Evaluator, error) {
	env, err := NewConstraintQueryEnvironment()
	if err != nil {
		return nil, fmt.Errorf("celquery: building environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Compile parses and type-checks a query expression.
func (e *Evaluator) Compile(expr string) (cel.Program, error) {
	if len(expr) > maxExpressionLength {
		return nil, fmt.Errorf("celquery: expression too long: %d characters (max %d)", len(expr), maxExpressionLength)
	}
	if expr == "" {
		return nil, errors.New("celquery: expression is empty")
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("celquery: compilation failed: %w", issues.Err())
	}

	prg, err := e.env.Program(ast, cel.EvalOptions(cel.OptOptimize), cel.CostLimit(maxCostBudget))
	if err != nil {
		return nil, fmt.Errorf("celquery: program creation failed: %w", err)
	}
	return prg, nil
}

// Matches evaluates the compiled query against one raw constraint row's
// queryable fields. Returns false (not an error) when the program's result
// isn't boolean.
func Matches(ctx context.Context, prg cel.Program, row constraint.RawRecord) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, evalTimeout)
	defer cancel()

	out, _, err := prg.ContextEval(ctx, map[string]any{
		"document_count": len(row.DocumentIDs),
		"actor_count":    len(row.ActorIDs),
		"action_kind":    row.ActionType,
		"comparator":     row.Comparator,
		"owner":          row.Owner,
		"value_count":    len(row.AllowedValues),
	})
	if err != nil {
		return false, fmt.Errorf("celquery: evaluation failed: %w", err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, nil
	}
	return b, nil
}

// QueryBatch runs expr against every row in rows and returns the matching
// subset.
func QueryBatch(ctx context.Context, rows []constraint.RawRecord, expr string) ([]constraint.RawRecord, error) {
	ev, err := NewEvaluator()
	if err != nil {
		return nil, err
	}
	prg, err := ev.Compile(expr)
	if err != nil {
		return nil, err
	}

	var matched []constraint.RawRecord
	for _, row := range rows {
		ok, err := Matches(ctx, prg, row)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return matched, nil
}
