// Package liability reads, edits and versions the liability_config.json
// documents that drive a pALM run.
package liability

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// ConfigFileName is the name pALM reads a run's settings from.
const ConfigFileName = "liability_config.json"

// Document holds a liability config as decoded JSON. Keys the tooling does
// not know about are carried through untouched.
type Document map[string]any

// Summary is the typed view of the keys the run pipeline reads.
type Summary struct {
	FileName              string `mapstructure:"sFileName"`
	CashPath              string `mapstructure:"sCashPath"`
	TimeStep              int    `mapstructure:"iTimeStep"`
	TotalScenarios        int    `mapstructure:"iTotalScenarios"`
	InnerLoopScenariosNum int    `mapstructure:"iInnerLoopScenariosNum"`
	OuterLoopScenario     string `mapstructure:"sOutterLoopScenario"`
	InnerLoopScenario     string `mapstructure:"sInnerLoopScenario"`
	PlanSpecPath          string `mapstructure:"sPlanSpecPath"`
	LiabilityPath         string `mapstructure:"sLiabilityPath"`
	RiskN                 bool   `mapstructure:"bRiskN"`
	Debugger              bool   `mapstructure:"bDebugger"`
	RunSAA                bool   `mapstructure:"bRunSAA"`
	InvestPortfolio       string `mapstructure:"invest_portfolio"`
	StartDate             string `mapstructure:"dtStart"`
	ValuationDate         string `mapstructure:"dtValuation"`
}

// Decode parses a liability config. JSON5 input is accepted: comments,
// trailing commas and unquoted keys all occur in hand-edited configs.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json5.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(data []byte) (Document, error) {
	return Decode(bytes.NewReader(data))
}

// Summary decodes the well-known keys. Numbers written as strings and
// similar loose encodings are accepted.
func (d Document) Summary() (Summary, error) {
	var s Summary
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return Summary{}, err
	}
	if err := dec.Decode(map[string]any(d)); err != nil {
		return Summary{}, &DecodeError{Cause: err}
	}
	return s, nil
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = cloneValue(inner)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, inner := range t {
			s[i] = cloneValue(inner)
		}
		return s
	default:
		return v
	}
}

// Keys returns the top-level keys in sorted order.
func (d Document) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// Encode renders d as JSON indented by two spaces, the layout pALM's own
// tools write.
func Encode(d Document) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode liability config: %w", err)
	}
	return data, nil
}

var (
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	emptyValue    = regexp.MustCompile(`:\s*,`)
	emptyLast     = regexp.MustCompile(`:\s*([}\]])`)
)

// CleanJSON repairs text produced by form editors: trailing commas before a
// closing brace or bracket are removed, and keys left without a value get "".
func CleanJSON(s string) string {
	s = trailingComma.ReplaceAllString(s, "$1")
	s = emptyValue.ReplaceAllString(s, `: "",`)
	return emptyLast.ReplaceAllString(s, `: ""$1`)
}
