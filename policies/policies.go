package policies

// ExecuteAPIInvoke is the only action a Lambda authorizer's policy speaks to.
const ExecuteAPIInvoke = "execute-api:Invoke"

// Invoke returns a Document with a single execute-api:Invoke statement.
func Invoke(effect Effect, resource string) *Document {
	return &Document{
		Statement: []Statement{{
			Action:   ExecuteAPIInvoke,
			Effect:   effect,
			Resource: resource,
		}},
	}
}

// AllowOrDeny picks Allow when ok is true and Deny otherwise.
func AllowOrDeny(ok bool) Effect {
	if ok {
		return Allow
	}
	return Deny
}
