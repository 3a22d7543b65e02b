package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zigcli/internal/core/ports"
)

// NodeID is the unique identifier for the tool locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.ToolLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolLocator, error) {
			return New(), nil
		},
	})
}
