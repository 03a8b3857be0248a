// Package search builds and runs queries against the novel, R18 novel and
// user search endpoints.
package search

import (
	"github.com/lepinkainen/narou/internal/transport"
)

// Endpoints are the base URLs of every API the client talks to.
type Endpoints struct {
	Novel          string
	Novel18        string
	Ranking        string
	RankingHistory string
	User           string
}

// DefaultEndpoints returns the live service URLs.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Novel:          "https://api.syosetu.com/novelapi/api/",
		Novel18:        "https://api.syosetu.com/novel18api/api/",
		Ranking:        "https://api.syosetu.com/rank/rankget/",
		RankingHistory: "https://api.syosetu.com/rank/rankin/",
		User:           "https://api.syosetu.com/userapi/api/",
	}
}

// API binds a transport to a set of endpoints. Builders created from it send
// their requests through that transport.
type API struct {
	transport transport.Transport
	endpoints Endpoints
}

// NewAPI creates an API. Empty endpoint fields fall back to the defaults.
func NewAPI(t transport.Transport, endpoints Endpoints) *API {
	def := DefaultEndpoints()
	if endpoints.Novel == "" {
		endpoints.Novel = def.Novel
	}
	if endpoints.Novel18 == "" {
		endpoints.Novel18 = def.Novel18
	}
	if endpoints.Ranking == "" {
		endpoints.Ranking = def.Ranking
	}
	if endpoints.RankingHistory == "" {
		endpoints.RankingHistory = def.RankingHistory
	}
	if endpoints.User == "" {
		endpoints.User = def.User
	}
	return &API{transport: t, endpoints: endpoints}
}

// Transport returns the transport requests go through.
func (a *API) Transport() transport.Transport {
	return a.transport
}

// Endpoints returns the configured endpoints.
func (a *API) Endpoints() Endpoints {
	return a.endpoints
}
