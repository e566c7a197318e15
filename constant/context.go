package constant

type contextKey string

// ActorKey carries the authenticated actor (JWT subject or internal service name).
const ActorKey contextKey = "actor"

const (
	ActorSystem = "system"
)

// SessionKeyPrefix namespaces session ids issued by the identity service.
const SessionKeyPrefix = "session:"

// InternalActor is recorded on movements performed through the internal API.
const InternalActor = "internal"
