package adnet

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/finpoint/finpoint/internal/config"
)

// Module exposes the ad-network client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.AdNetworkAddress, p.Logger)
}
