// Package instance - JSON document format shared by the cmd/ front ends.
//
// A Document carries the instance definition plus an optional embedded
// Solution record, so a solver run can read a file and write it back with
// the result attached. Numeric arrays are compacted onto single lines to
// keep large matrices readable.
package instance

import (
	"encoding/json"
	"os"
	"regexp"
)

// Document is the on-disk representation of a TSPTW instance.
type Document struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	NodeCount   int         `json:"node_count"`
	EdgeWeights [][]float64 `json:"edge_weights"`
	TimeWindows []Window    `json:"time_windows"`

	Solution *Solution `json:"solution,omitempty"`
}

// Solution is the result record embedded into a Document after a run.
type Solution struct {
	Tour       []int   `json:"tour"`
	Cost       float64 `json:"cost"`
	Violations int     `json:"violations"`
	Feasible   bool    `json:"feasible"`
	Iterations int     `json:"iterations"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo records the basic system information of the solving host.
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

// NewDocument wraps an instance into a savable Document, deep-copying the
// matrix and windows so the document owns its payload.
func NewDocument(in *Instance, name, comment string) *Document {
	var (
		n = in.NumNodes()
		d = &Document{
			Name:        name,
			Comment:     comment,
			Type:        "TSPTW",
			NodeCount:   n,
			EdgeWeights: make([][]float64, n),
			TimeWindows: make([]Window, n),
		}
		i, j int
	)
	for i = 0; i < n; i++ {
		d.EdgeWeights[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d.EdgeWeights[i][j], _ = in.EdgeWeight(i, j)
		}
		d.TimeWindows[i], _ = in.TimeWindow(i)
	}

	return d
}

// Instance builds a validated *Instance from the document payload.
func (d *Document) Instance() (*Instance, error) {
	return New(d.EdgeWeights, d.TimeWindows)
}

// Load reads and decodes a Document from path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Save encodes the document with indentation, compacts numeric arrays onto
// single lines, and writes it to path.
func (d *Document) Save(path string) error {
	raw, err := json.MarshalIndent(d, "", "\t")
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(sanitizeJSONArrayLineBreaks(string(raw))), 0o644)
}

var (
	jsonNumberPairs   = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	jsonNumberBracket = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
)

// sanitizeJSONArrayLineBreaks collapses indented numeric arrays produced by
// MarshalIndent onto single lines. Matrix rows stay one-per-line; the
// numbers inside each row are joined.
func sanitizeJSONArrayLineBreaks(s string) string {
	res := s
	for jsonNumberPairs.MatchString(res) {
		res = jsonNumberPairs.ReplaceAllString(res, "$1,$3$5")
	}
	for jsonNumberBracket.MatchString(res) {
		res = jsonNumberBracket.ReplaceAllString(res, "[$1]$5$6")
	}

	return res
}
