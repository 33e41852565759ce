package lambdautil

import "fmt"

type UnsupportedEventTypeError string

func (err UnsupportedEventTypeError) Error() string {
	return fmt.Sprintf("unsupported authorizer event type %q", string(err))
}
