// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/zigcli/internal/adapters/artifact"
	_ "go.trai.ch/zigcli/internal/adapters/config"
	_ "go.trai.ch/zigcli/internal/adapters/emitter"
	_ "go.trai.ch/zigcli/internal/adapters/locator"
	_ "go.trai.ch/zigcli/internal/adapters/logger"
	_ "go.trai.ch/zigcli/internal/adapters/shell"
	_ "go.trai.ch/zigcli/internal/adapters/telemetry"
	_ "go.trai.ch/zigcli/internal/adapters/zig"
	// Register app and engine nodes.
	_ "go.trai.ch/zigcli/internal/app"
	_ "go.trai.ch/zigcli/internal/engine/runner"
)
