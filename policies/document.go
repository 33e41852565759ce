package policies

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoStatements is returned by Validate for a Document that would grant or
// deny nothing. API Gateway rejects such a policy outright.
var ErrNoStatements = errors.New("policy document has no statements")

type Document struct {
	Version   version
	Statement []Statement
}

func (d *Document) Validate() error {
	if d == nil || len(d.Statement) == 0 {
		return ErrNoStatements
	}
	for _, statement := range d.Statement {
		if err := statement.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Statement is the single-action, single-resource shape API Gateway expects
// back from a Lambda authorizer. Action and Resource are plain strings rather
// than lists so the JSON matches what the authorizer contract documents.
type Statement struct {
	Action   string
	Effect   Effect
	Resource string
}

func (s Statement) Validate() error {
	if s.Action == "" {
		return fmt.Errorf("statement has no Action")
	}
	if s.Resource == "" {
		return fmt.Errorf("statement for %s has no Resource", s.Action)
	}
	switch s.Effect {
	case Allow, Deny, "":
	default:
		return EffectError(s.Effect)
	}
	return nil
}

type Effect string

const (
	Allow Effect = "Allow"
	Deny  Effect = "Deny" // default, thanks to MarshalJSON
)

func (e Effect) MarshalJSON() ([]byte, error) {
	switch e {
	case Allow, Deny:
	case "":
		e = Deny
	default:
		return nil, EffectError(e)
	}
	return []byte(fmt.Sprintf("%q", string(e))), nil
}

func (e Effect) String() string {
	if e == "" {
		return string(Deny)
	}
	return string(e)
}

func (e *Effect) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch effect := Effect(s); effect {
	case Allow, Deny:
		*e = effect
	default:
		return EffectError(effect)
	}
	return nil
}

type EffectError Effect

func (err EffectError) Error() string {
	return fmt.Sprintf("invalid Effect %q", string(err))
}

// Version is the IAM policy language version every Document carries.
const Version = "2012-10-17"

type version struct{}

func (version) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Version + `"`), nil
}

func (version) String() string { return Version }

func (*version) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s != Version {
		return fmt.Errorf("unsupported policy Version %q", s)
	}
	return nil
}
