package trigger

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/domain/types"
)

const (
	collectionCircles = "circles"
	collectionAlerts  = "alerts"
)

// AlertPath identifies an alert document, circles/{circleId}/alerts/{alertId}.
type AlertPath struct {
	CircleID types.CircleID
	AlertID  types.AlertID
}

// ParseAlertPath extracts the circle and alert IDs from a document name. Both
// the full resource name (projects/p/databases/d/documents/...) and the
// relative path are accepted.
func ParseAlertPath(name string) (*AlertPath, error) {
	rel := name
	if i := strings.Index(name, "/documents/"); i >= 0 {
		rel = name[i+len("/documents/"):]
	}

	parts := strings.Split(strings.Trim(rel, "/"), "/")
	if len(parts) != 4 || parts[0] != collectionCircles || parts[2] != collectionAlerts {
		return nil, goerr.New("document is not an alert",
			goerr.V("name", name),
			goerr.T(errs.TagInvalidRequest))
	}

	p := &AlertPath{
		CircleID: types.CircleID(parts[1]),
		AlertID:  types.AlertID(parts[3]),
	}
	if err := p.CircleID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid circle ID", goerr.V("name", name), goerr.T(errs.TagInvalidRequest))
	}
	if err := p.AlertID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid alert ID", goerr.V("name", name), goerr.T(errs.TagInvalidRequest))
	}

	return p, nil
}
