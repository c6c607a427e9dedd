package output

import (
	"encoding/json"

	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

// ToJSON renders the result as indented JSON. Values are left as decoded,
// escaping is up to the JSON encoder.
func ToJSON(r model.Result) (string, error) {
	if r.Lines == nil {
		r.Lines = []model.ResultLine{}
	}
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
