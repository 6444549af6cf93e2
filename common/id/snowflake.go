package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the process-wide snowflake node. Each replica of the API and
// the CLI must use a distinct node id.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a time-ordered int64 id for users, sessions, businesses,
// members, leads and API keys.
func New() int64 {
	return node.Generate().Int64()
}
