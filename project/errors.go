// SPDX-License-Identifier: EPL-2.0

package project

import "errors"

// ErrInvalidProject is wrapped by every validation failure.
var ErrInvalidProject = errors.New("project: invalid")
