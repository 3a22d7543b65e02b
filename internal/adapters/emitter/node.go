package emitter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zigcli/internal/core/ports"
)

// NodeID is the unique identifier for the directive writer Graft node.
const NodeID graft.ID = "adapter.emitter"

func init() {
	graft.Register(graft.Node[ports.DirectiveWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DirectiveWriter, error) {
			return New(), nil
		},
	})
}
