package discovery

import "errors"

var (
	ErrNoInstances     = errors.New("no live instances of service")
	ErrInvalidInstance = errors.New("service instance needs name, id and address")
)
