package upload

import (
	"fmt"
	"strings"
)

// Status is the classified state of a decoded upload response.
type Status int

const (
	// Imported means the server accepted and newly stored the chart.
	Imported Status = iota + 1
	// Skipped means the server already holds this chart.
	Skipped
	// Rejected means the server processed the request but declined it.
	Rejected
)

func (s Status) String() string {
	switch s {
	case Imported:
		return "imported"
	case Skipped:
		return "skipped"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is the result of an attempt that was transported and decoded
// successfully.
type Outcome struct {
	Status  Status
	Message string
	Result  ImportResult
}

// classify maps a decoded response body to an Outcome. It fails only when
// required fields are absent.
func classify(body importBody) (Outcome, error) {
	if missing := body.missing(); len(missing) > 0 {
		return Outcome{}, &Failure{
			Kind:        KindInvalidResponse,
			Description: fmt.Sprintf("missing fields in body: %s", strings.Join(missing, ", ")),
		}
	}

	res := body.result()
	out := Outcome{Message: res.Message, Result: res}
	switch res.Status {
	case "imported":
		out.Status = Imported
	case "skipped":
		out.Status = Skipped
	default:
		out.Status = Rejected
	}
	return out, nil
}
