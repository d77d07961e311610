// Package specchecker validates OpenAPI documents. Validation rules come from
// kin-openapi; this package only loads the YAML, hands it over, and turns the
// first violation into a *fault.ValidationError with a dotted path.
package specchecker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"go.yaml.in/yaml/v3"

	"github.com/okian/leaguelogic/internal/domain/fault"
	"github.com/okian/leaguelogic/pkg/logger"
	"github.com/okian/leaguelogic/pkg/metrics"
)

// DefaultFile is checked when no path is given.
const DefaultFile = "openapi.yaml"

// CheckFile reads path and validates it. A missing or unreadable file is a
// configuration error, not a validation error.
func CheckFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fault.Configuration("file", "cannot read "+path, err)
	}
	return Check(ctx, data)
}

// Check validates one YAML or JSON OpenAPI document held in memory.
func Check(ctx context.Context, data []byte) error {
	err := check(ctx, data)
	metrics.RecordSpecCheck(err == nil)
	if err != nil {
		logger.Get().Debug(ctx, "openapi document rejected", logger.Error(err))
	}
	return err
}

func check(ctx context.Context, data []byte) error {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return &fault.ValidationError{Rule: "document is not valid YAML", Err: err}
	}
	root, ok := normalize(tree).(map[string]any)
	if !ok {
		return &fault.ValidationError{Rule: "document must be a mapping", Err: ErrNotMapping}
	}

	raw, err := json.Marshal(root)
	if err != nil {
		return &fault.ValidationError{Rule: "document cannot be represented as JSON", Err: err}
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return violation(err)
	}
	if err := doc.Validate(ctx); err != nil {
		return violation(err)
	}
	return nil
}

// normalize converts YAML mappings with non-string keys (e.g. response codes)
// into map[string]any so the tree can be encoded as JSON.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalize(val)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range x {
			x[i] = normalize(val)
		}
		return x
	default:
		return v
	}
}

const (
	invalidPrefix = "invalid "
	valuePrefix   = "value of "
)

// violation recovers a dotted location from kin-openapi's wrapped messages,
// e.g. "invalid paths: invalid path /pets: ..." yields "paths./pets". A
// trailing "value of X must ..." names the final segment.
func violation(err error) *fault.ValidationError {
	msg := err.Error()
	var path []string
	for strings.HasPrefix(msg, invalidPrefix) {
		idx := strings.Index(msg, ": ")
		if idx < 0 {
			break
		}
		seg := msg[len(invalidPrefix):idx]
		if sp := strings.IndexByte(seg, ' '); sp >= 0 {
			seg = seg[sp+1:]
		}
		path = append(path, strings.Trim(seg, `"`))
		msg = msg[idx+2:]
	}
	if strings.HasPrefix(msg, valuePrefix) {
		rest := msg[len(valuePrefix):]
		if end := strings.Index(rest, " must"); end > 0 {
			path = append(path, rest[:end])
		}
	}
	return &fault.ValidationError{Path: strings.Join(path, "."), Rule: msg, Err: err}
}
