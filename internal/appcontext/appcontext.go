package appcontext

import (
	"time"

	"github.com/Konaisya/construction-company/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Context struct {
	DB     *gorm.DB
	Logger *zap.Logger

	Storage storage.FileStore

	JWTSecret []byte
	TokenTTL  time.Duration
	Port      string
}
