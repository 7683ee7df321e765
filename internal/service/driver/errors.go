package driver

import "errors"

var (
	ErrInvalidCity        = errors.New("invalid city")
	ErrInvalidDriverID    = errors.New("invalid driver id")
	ErrInvalidGracePeriod = errors.New("invalid grace period")

	// ErrNoAvailableDrivers штатный исход поиска, а не сбой: в городе просто нет свободных водителей.
	ErrNoAvailableDrivers = errors.New("no available drivers")
	ErrDriverNotFound     = errors.New("driver not found")
)
