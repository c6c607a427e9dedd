package model

import "fmt"

type Layer string

const (
	LayerAPI         Layer = "api"
	LayerFile        Layer = "file"
	LayerCertificate Layer = "certificate"
)

// Title is the bracketed category shown in front of every line
func (l Layer) Title() string {
	switch l {
	case LayerAPI:
		return "API layer"
	case LayerFile:
		return "File layer"
	case LayerCertificate:
		return "Certificate layer"
	default:
		return string(l)
	}
}

type Status string

const (
	StatusOK            Status = "ok"
	StatusNotAvailable  Status = "not_available"
	StatusNotFound      Status = "not_found"
	StatusNotPresent    Status = "not_present"
	StatusFieldNotFound Status = "field_not_found"
	StatusParseFailed   Status = "parse_failed"
	StatusReadError     Status = "read_error"
)

// ResultLine is one entry of an inspection pass. Lines are produced in
// display order and never modified afterwards.
type ResultLine struct {
	Layer  Layer  `json:"layer"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Status Status `json:"status"`
}

func (l ResultLine) OK() bool {
	return l.Status == StatusOK
}

func (l ResultLine) String() string {
	return fmt.Sprintf("[%s] %s:\n%s", l.Layer.Title(), l.Label, l.Value)
}
