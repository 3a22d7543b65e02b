package zig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zigcli/internal/core/ports"
)

// NodeID is the unique identifier for the invocation builder Graft node.
const NodeID graft.ID = "adapter.builder"

func init() {
	graft.Register(graft.Node[ports.InvocationBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.InvocationBuilder, error) {
			return NewBuilder(), nil
		},
	})
}
