package template

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTemplate indicates a non-empty template without a format version.
	ErrMalformedTemplate = errors.New("the template file format in the current directory is incorrect")

	// ErrResourceExists indicates a resource name is already taken.
	ErrResourceExists = errors.New("resource already exists")
)

// ResourceCollisionError reports an attempt to register an existing resource.
type ResourceCollisionError struct {
	// Name is the colliding resource name.
	Name string

	// Type is the declared type of the existing resource.
	Type string
}

func (e *ResourceCollisionError) Error() string {
	switch e.Type {
	case ServiceType:
		return fmt.Sprintf("the service that needs to be imported already exists: %s", e.Name)
	case CustomDomainType:
		return fmt.Sprintf("the custom domain that needs to be imported already exists: %s", e.Name)
	default:
		return fmt.Sprintf("the resource that needs to be imported already exists: %s, type: %s", e.Name, e.Type)
	}
}

// Unwrap lets errors.Is match ErrResourceExists.
func (e *ResourceCollisionError) Unwrap() error {
	return ErrResourceExists
}
