package access

import (
	"time"

	"dzairbox/internal/domain/users"
)

type Policy struct {
	State        AccessState
	Capabilities []string
}

func ComputePolicy(now time.Time, u users.User) Policy {
	state := ComputeAccessState(now, u)

	return Policy{
		State:        state,
		Capabilities: CapabilitiesFor(state, u.Plan),
	}
}
