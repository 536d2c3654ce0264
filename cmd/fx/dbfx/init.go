package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripwise/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(infra.BootstrapSchema),
)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
