// Package filter parses AIP-160 campaign list filters into SQL conditions.
package filter

import (
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	apperrors "github.com/pipps42/dm-assistant-sub001/internal/platform/errors"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
)

// CampaignDeclarations returns the field declarations for campaign filtering.
func CampaignDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("name", filtering.TypeString),
		filtering.DeclareIdent("setting", filtering.TypeString),
		filtering.DeclareIdent("status", filtering.TypeString),
		filtering.DeclareIdent("difficulty", filtering.TypeString),
		filtering.DeclareIdent("is_active", filtering.TypeBool),
		filtering.DeclareIdent("current_session", filtering.TypeInt),
		filtering.DeclareIdent("total_sessions", filtering.TypeInt),
		filtering.DeclareIdent("player_count", filtering.TypeInt),
		filtering.DeclareIdent("active_characters", filtering.TypeInt),
		filtering.DeclareIdent("average_level", filtering.TypeFloat),
		filtering.DeclareIdent("created_at", filtering.TypeTimestamp),
		filtering.DeclareIdent("updated_at", filtering.TypeTimestamp),
		filtering.DeclareIdent("last_session_date", filtering.TypeTimestamp),
	)
}

// SQLCondition represents a SQL WHERE clause fragment with parameters.
type SQLCondition struct {
	// Clause is the SQL WHERE clause (e.g., "status = ?").
	Clause string
	// Params are the positional parameters for the clause.
	Params []any
}

// column describes how a filter field is stored.
type column struct {
	name    string
	convert func(any) (any, error)
}

// columns maps filter field names to SQL columns of the campaigns table.
// Enums are stored as integers and timestamps as Unix milliseconds.
var columns = map[string]column{
	"name":              {name: "name"},
	"setting":           {name: "setting"},
	"status":            {name: "status", convert: statusValue},
	"difficulty":        {name: "difficulty", convert: difficultyValue},
	"is_active":         {name: "is_active", convert: boolValue},
	"current_session":   {name: "current_session"},
	"total_sessions":    {name: "total_sessions"},
	"player_count":      {name: "player_count"},
	"active_characters": {name: "active_characters"},
	"average_level":     {name: "average_level"},
	"created_at":        {name: "created_at", convert: millisValue},
	"updated_at":        {name: "updated_at", convert: millisValue},
	"last_session_date": {name: "last_session_at", convert: millisValue},
}

// ParseCampaignFilter parses an AIP-160 filter expression and returns a SQL
// condition. An empty filter yields an empty condition. Errors carry the
// CAMPAIGN_INVALID_FILTER code.
func ParseCampaignFilter(filterStr string) (SQLCondition, error) {
	if strings.TrimSpace(filterStr) == "" {
		return SQLCondition{}, nil
	}

	decls, err := CampaignDeclarations()
	if err != nil {
		return SQLCondition{}, fmt.Errorf("create declarations: %w", err)
	}

	filter, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return SQLCondition{}, invalid(fmt.Errorf("parse filter: %w", err))
	}

	cond, err := translateExpr(filter.CheckedExpr.Expr)
	if err != nil {
		return SQLCondition{}, invalid(err)
	}
	return cond, nil
}

func invalid(err error) error {
	return apperrors.Wrap(apperrors.CodeCampaignInvalidFilter, "invalid campaign filter: "+err.Error(), err)
}

// translateExpr translates a CEL expression to a SQL condition.
func translateExpr(e *expr.Expr) (SQLCondition, error) {
	if e == nil {
		return SQLCondition{}, nil
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return translateCall(kind.CallExpr)
	default:
		return SQLCondition{}, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

// translateCall translates a CEL function call to a SQL condition.
func translateCall(call *expr.Expr_Call) (SQLCondition, error) {
	switch call.Function {
	case "_&&_", "AND":
		return translateLogical(call.Args, "AND")
	case "_||_", "OR":
		return translateLogical(call.Args, "OR")
	case "NOT":
		return translateNot(call.Args)
	case "_==_", "=":
		return translateComparison(call.Args, "=")
	case "_!=_", "!=":
		return translateComparison(call.Args, "!=")
	case "_<_", "<":
		return translateComparison(call.Args, "<")
	case "_<=_", "<=":
		return translateComparison(call.Args, "<=")
	case "_>_", ">":
		return translateComparison(call.Args, ">")
	case "_>=_", ">=":
		return translateComparison(call.Args, ">=")
	default:
		return SQLCondition{}, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func translateLogical(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) < 2 {
		return SQLCondition{}, fmt.Errorf("%s requires at least 2 arguments", op)
	}

	parts := make([]string, 0, len(args))
	var params []any
	for _, arg := range args {
		cond, err := translateExpr(arg)
		if err != nil {
			return SQLCondition{}, err
		}
		parts = append(parts, cond.Clause)
		params = append(params, cond.Params...)
	}

	return SQLCondition{
		Clause: "(" + strings.Join(parts, " "+op+" ") + ")",
		Params: params,
	}, nil
}

func translateNot(args []*expr.Expr) (SQLCondition, error) {
	if len(args) != 1 {
		return SQLCondition{}, fmt.Errorf("NOT requires 1 argument")
	}
	inner, err := translateExpr(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	return SQLCondition{
		Clause: "NOT " + inner.Clause,
		Params: inner.Params,
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := extractFieldName(args[0])
	if err != nil {
		return SQLCondition{}, err
	}

	col, ok := columns[field]
	if !ok {
		return SQLCondition{}, fmt.Errorf("unknown field: %s", field)
	}

	value, err := extractValue(args[1])
	if err != nil {
		return SQLCondition{}, err
	}
	if col.convert != nil {
		if value, err = col.convert(value); err != nil {
			return SQLCondition{}, fmt.Errorf("field %s: %w", field, err)
		}
	}

	return SQLCondition{
		Clause: fmt.Sprintf("%s %s ?", col.name, op),
		Params: []any{value},
	}, nil
}

func extractFieldName(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return kind.IdentExpr.Name, nil
	default:
		return "", fmt.Errorf("expected identifier, got %T", kind)
	}
}

func extractValue(e *expr.Expr) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_ConstExpr:
		return extractConstValue(kind.ConstExpr)
	case *expr.Expr_IdentExpr:
		// Bare true/false are parsed as identifiers.
		switch kind.IdentExpr.Name {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("unexpected identifier in value position: %s", kind.IdentExpr.Name)
	case *expr.Expr_CallExpr:
		if kind.CallExpr.Function == "timestamp" && len(kind.CallExpr.Args) == 1 {
			return extractTimestampValue(kind.CallExpr.Args[0])
		}
		return nil, fmt.Errorf("unsupported function in value position: %s", kind.CallExpr.Function)
	default:
		return nil, fmt.Errorf("expected constant or timestamp, got %T", kind)
	}
}

func extractConstValue(c *expr.Constant) (any, error) {
	if c == nil {
		return nil, fmt.Errorf("nil constant")
	}

	switch kind := c.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	case *expr.Constant_BoolValue:
		return kind.BoolValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

func extractTimestampValue(e *expr.Expr) (time.Time, error) {
	if e == nil {
		return time.Time{}, fmt.Errorf("nil timestamp argument")
	}

	kind, ok := e.ExprKind.(*expr.Expr_ConstExpr)
	if !ok {
		return time.Time{}, fmt.Errorf("timestamp argument must be a constant string")
	}
	strVal, ok := kind.ConstExpr.ConstantKind.(*expr.Constant_StringValue)
	if !ok {
		return time.Time{}, fmt.Errorf("timestamp argument must be a string")
	}
	t, err := time.Parse(time.RFC3339Nano, strVal.StringValue)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp format: %s", strVal.StringValue)
	}
	return t.UTC(), nil
}

func statusValue(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected a status name, got %T", v)
	}
	status, ok := campaign.ParseStatus(s)
	if !ok {
		return nil, fmt.Errorf("unknown status %q", s)
	}
	return int64(status), nil
}

func difficultyValue(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected a difficulty name, got %T", v)
	}
	d, ok := campaign.ParseDifficulty(s)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", s)
	}
	return int64(d), nil
}

func boolValue(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("expected a boolean, got %T", v)
	}
	if b {
		return int64(1), nil
	}
	return int64(0), nil
}

func millisValue(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("expected timestamp(...), got %T", v)
	}
	return t.UnixMilli(), nil
}
