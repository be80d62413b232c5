package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/easymart/pos-backend/internal/api"
	"github.com/easymart/pos-backend/internal/config"
	"github.com/easymart/pos-backend/internal/db"
	"github.com/easymart/pos-backend/internal/logger"
	"github.com/easymart/pos-backend/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	sqliteDB, err := db.OpenSQLite(conf.SQLite)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if conf.SQLite.Seed {
		if err = dao.Seed(sqliteDB); err != nil {
			return fmt.Errorf("failed to seed database -> %w", err)
		}
	}

	s := api.NewServer(conf, sqliteDB)

	addr := conf.API.Host + ":" + conf.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
