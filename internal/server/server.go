package server

import (
	"context"

	"git.appkode.ru/pub/go/failure"

	"harbour-market/internal/domain/value"
	"harbour-market/pkg/contextx"
	"harbour-market/pkg/errcodes"
)

// Server combines the entity-specific HTTP servers.
type Server struct {
	NegotiationServer
	CatalogServer
}

func NewServer(
	negotiationServer NegotiationServer,
	catalogServer CatalogServer,
) Server {
	return Server{
		NegotiationServer: negotiationServer,
		CatalogServer:     catalogServer,
	}
}

// callerID reads the identity the gateway attached to the request.
func callerID(ctx context.Context) (value.UserID, error) {
	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return "", failure.NewUnauthorizedError(
			"caller identity is missing",
			failure.WithCode(errcodes.Unauthenticated),
		)
	}

	return value.ParseUserID(userID.String())
}
