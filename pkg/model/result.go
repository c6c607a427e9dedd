package model

type Result struct {
	// Bundle is the path the inspection was run against
	Bundle   string       `json:"bundle"`
	Lines    []ResultLine `json:"lines"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Line returns the first line with the given layer and label
func (r Result) Line(layer Layer, label string) (ResultLine, bool) {
	for _, l := range r.Lines {
		if l.Layer == layer && l.Label == label {
			return l, true
		}
	}
	return ResultLine{}, false
}
