package cli_test

import (
	"testing"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/cli"
)

func TestDefineFirestoreIndexes(t *testing.T) {
	config := cli.DefineFirestoreIndexes()
	gt.V(t, config).NotNil()
	gt.A(t, config.Collections).Length(1).Required()

	users := config.Collections[0]
	gt.Equal(t, users.Name, "users")
	gt.A(t, users.Indexes).Length(1).Required()

	index := users.Indexes[0]
	gt.Equal(t, index.QueryScope, fireconf.QueryScopeCollection)
	gt.A(t, index.Fields).Length(2).Required()
	gt.Equal(t, index.Fields[0].Path, "circleId")
	gt.Equal(t, index.Fields[0].Order, fireconf.OrderAscending)
	gt.Equal(t, index.Fields[1].Path, "__name__")
}
