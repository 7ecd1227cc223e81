package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/streampath/jsonstream"
)

type filterJSONInput struct {
	Document string   `json:"document"  jsonschema:"The JSON document to filter"`
	Patterns []string `json:"patterns"  jsonschema:"JSONPath patterns to emit; each is $.field, $.items[*], or $.config.*"`
}

type filterMatch struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

type filterJSONOutput struct {
	Matches []filterMatch `json:"matches"`
}

func handleFilterJSON(_ context.Context, _ *mcp.CallToolRequest, input filterJSONInput) (*mcp.CallToolResult, filterJSONOutput, error) {
	var matches []filterMatch
	emit := func(path string, value any) {
		matches = append(matches, filterMatch{Path: path, Value: value})
	}

	eng, err := jsonstream.New(input.Patterns, emit)
	if err != nil {
		return errResult(err), filterJSONOutput{}, nil
	}

	if err := eng.Write([]byte(input.Document)); err != nil {
		return errResult(err), filterJSONOutput{}, nil
	}
	if err := eng.Close(); err != nil {
		return errResult(err), filterJSONOutput{}, nil
	}

	return nil, filterJSONOutput{Matches: matches}, nil
}
