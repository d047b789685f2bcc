package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamio/internal/infra"
)

var Module = fx.Options(
	fx.Provide(infra.InitPostgresql),
	fx.Invoke(registerLifecycle),
)

func registerLifecycle(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
