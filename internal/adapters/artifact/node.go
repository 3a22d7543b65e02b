package artifact

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zigcli/internal/core/ports"
)

// NodeID is the unique identifier for the artifact resolver Graft node.
const NodeID graft.ID = "adapter.artifact"

func init() {
	graft.Register(graft.Node[ports.ArtifactResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ArtifactResolver, error) {
			return NewResolver(), nil
		},
	})
}
