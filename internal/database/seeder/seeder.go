package seeder

import (
	"context"

	"github.com/Chidwan3578/Veridex-Local/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
