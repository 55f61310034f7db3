// Package domain contains the core types for framesrv.
//
// The domain is transport-agnostic: it does not depend on net/http or the
// filesystem. Infra/adapters map these values onto the HTTP stack.
package domain
