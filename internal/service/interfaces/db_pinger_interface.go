package interfaces

import "context"

// DBPingerInterface is the connect-and-release probe used by the startup
// check and the stub payment endpoints.
type DBPingerInterface interface {
	Ping(ctx context.Context) error
}
