// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package input reads and writes scoring requests: a query article together
// with the candidate records a search provider returned for it, in provider
// rank order.
package input

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/republication-tracker/pkg/types"
)

// Request is the on-disk representation of one query and its candidates.
// Candidates keep every provider field so that the scored output can carry
// them through. JSON files are read with the same decoder.
type Request struct {
	Query      types.QueryArticle       `json:"query" yaml:"query"`
	Candidates []types.CandidateArticle `json:"candidates" yaml:"candidates"`
}

// ReadRequest loads a request file from disk.
func ReadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	return ParseRequest(data)
}

// ParseRequest decodes a request from YAML or JSON bytes. A request
// without candidates is an error.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}
	if len(req.Candidates) == 0 {
		return nil, fmt.Errorf("request has no candidates")
	}
	for i, c := range req.Candidates {
		if c == nil {
			return nil, fmt.Errorf("candidate %d is empty", i)
		}
	}
	return &req, nil
}

// WriteRequest saves a request to a YAML file.
func WriteRequest(path string, req *Request) error {
	data, err := yaml.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling request file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
