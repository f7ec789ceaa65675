package services

// NotFoundError signals that a referenced record does not exist, or
// that a referenced owner is not active.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}

// ConflictError signals a business-rule collision: duplicate email,
// an occupied schedule slot, or a soft delete of an already-inactive
// record.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

// BadRequestError signals malformed input detected outside the
// declarative validation layer, such as a non-numeric identifier.
type BadRequestError struct {
	Message string
}

func (e BadRequestError) Error() string {
	return e.Message
}
