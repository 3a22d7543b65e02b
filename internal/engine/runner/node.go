package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zigcli/internal/adapters/artifact"
	"go.trai.ch/zigcli/internal/adapters/logger"
	"go.trai.ch/zigcli/internal/adapters/shell"
	"go.trai.ch/zigcli/internal/adapters/telemetry"
	"go.trai.ch/zigcli/internal/core/ports"
)

// NodeID is the unique identifier for the build runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			artifact.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (ports.Executor, error) {
			process, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ArtifactResolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[trace.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(process, resolver, log, WithTracer(tracer)), nil
		},
	})
}
