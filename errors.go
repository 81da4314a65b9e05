package chainmap

// KeyNotFound - Custom error to inform that the key is not stored in the hash map.
// Returned by At, BucketIndex and BucketSize. Test for it with errors.Is(err, KeyNotFound{}).
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that a key was not found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key was not found"
	}
	return E.msg
}

// Is - Matches any KeyNotFound regardless of message
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// LengthMismatch - Custom error to inform that paired key and value slices differ in length
type LengthMismatch struct {
	msg string
}

// Error - Used to notify that keys and values can not be paired
func (E LengthMismatch) Error() string {
	if E.msg == "" {
		return "keys and values are not the same length"
	}
	return E.msg
}

// Is - Matches any LengthMismatch regardless of message
func (E LengthMismatch) Is(target error) bool {
	_, ok := target.(LengthMismatch)
	return ok
}

// InvalidCursor - Custom error to inform that an iterator was dereferenced at End or after the hash map it
// points into was structurally changed
type InvalidCursor struct {
	msg string
}

// Error - Used to notify that there is no pair at the cursor
func (E InvalidCursor) Error() string {
	if E.msg == "" {
		return "iterator does not point at a pair"
	}
	return E.msg
}

// Is - Matches any InvalidCursor regardless of message
func (E InvalidCursor) Is(target error) bool {
	_, ok := target.(InvalidCursor)
	return ok
}

// NoHashAlgorithm - Custom error to inform that no hash algorithm was given and there is no internal one for the key type
type NoHashAlgorithm struct {
	msg string
}

// Error - Used to notify that a hash algorithm is missing
func (E NoHashAlgorithm) Error() string {
	if E.msg == "" {
		return "no hash algorithm available for key type"
	}
	return E.msg
}

// Is - Matches any NoHashAlgorithm regardless of message
func (E NoHashAlgorithm) Is(target error) bool {
	_, ok := target.(NoHashAlgorithm)
	return ok
}

// InvalidCapacity - Custom error to inform that a requested initial capacity is not usable
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that the capacity is invalid
func (E InvalidCapacity) Error() string {
	if E.msg == "" {
		return "initial capacity must be a positive value higher than 0 (zero)"
	}
	return E.msg
}

// Is - Matches any InvalidCapacity regardless of message
func (E InvalidCapacity) Is(target error) bool {
	_, ok := target.(InvalidCapacity)
	return ok
}
