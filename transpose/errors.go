package transpose

import "errors"

// ErrTokenResolution marks an unexpected failure while resolving a single
// token. The token is left verbatim and conversion continues.
var ErrTokenResolution = errors.New("token resolution failed")
