// =================================
// File: internal/ui/screen/deps.go
// =================================
package screen

import (
	"go.uber.org/zap"

	"github.com/niveshak-app/niveshak/internal/config"
	"github.com/niveshak-app/niveshak/internal/market"
)

// Deps carries the shared collaborators every screen needs.
type Deps struct {
	Cfg    *config.Config
	Client *market.Client
	Logger *zap.Logger
}
