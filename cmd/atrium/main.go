package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/atriumhq/atrium/internal/config"
	"github.com/atriumhq/atrium/internal/logger"
	"github.com/atriumhq/atrium/internal/migration"
	"github.com/atriumhq/atrium/internal/server"
	"github.com/atriumhq/atrium/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
