package timestamp

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("timestamp")
