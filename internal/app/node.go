package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zigcli/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/zigcli/internal/adapters/emitter" //nolint:depguard // Wired in app layer
	"go.trai.ch/zigcli/internal/adapters/locator" //nolint:depguard // Wired in app layer
	"go.trai.ch/zigcli/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/zigcli/internal/adapters/zig"     //nolint:depguard // Wired in app layer
	"go.trai.ch/zigcli/internal/core/ports"
	"go.trai.ch/zigcli/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			locator.NodeID,
			zig.NodeID,
			runner.NodeID,
			emitter.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	loc, err := graft.Dep[ports.ToolLocator](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[ports.InvocationBuilder](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.DirectiveWriter](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, loc, builder, executor, writer, log), nil
}
