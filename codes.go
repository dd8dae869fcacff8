// codes.go: platform status codes and the domains that interpret them.
//
// Intent:
//   - A StatusCode is a plain number plus the Domain that gives it meaning,
//     so errno values and gRPC codes can share one adapter.
//   - Value 0 means "no error" in every built-in domain.
//   - Projects may add domains by implementing Domain; there is no registry.
package xgxresult

import (
	"strconv"
	"syscall"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain interprets the numeric value of a StatusCode.
type Domain interface {
	// Name is a short lowercase identifier, e.g. "system".
	Name() string
	// Describe returns the human-readable text for value.
	Describe(value int) string
	// Err returns the domain's native error for value, or nil for 0.
	Err(value int) error
}

// Built-in domains.
var (
	SystemDomain Domain = systemDomain{}
	RPCDomain    Domain = rpcDomain{}
)

// allBuiltinDomains is the ordered set of domains the core ships with.
var allBuiltinDomains = []Domain{
	SystemDomain,
	RPCDomain,
}

// BuiltinDomains returns a copy of the built-in domains in a stable order.
func BuiltinDomains() []Domain {
	out := make([]Domain, len(allBuiltinDomains))
	copy(out, allBuiltinDomains)
	return out
}

// systemDomain interprets values as operating system errno codes.
type systemDomain struct{}

func (systemDomain) Name() string { return "system" }

func (systemDomain) Describe(value int) string {
	if value == 0 {
		return "success"
	}
	return syscall.Errno(value).Error()
}

func (systemDomain) Err(value int) error {
	if value == 0 {
		return nil
	}
	return syscall.Errno(value)
}

// rpcDomain interprets values as gRPC status codes.
type rpcDomain struct{}

func (rpcDomain) Name() string { return "rpc" }

func (rpcDomain) Describe(value int) string {
	return codes.Code(value).String()
}

func (rpcDomain) Err(value int) error {
	if value == 0 {
		return nil
	}
	c := codes.Code(value)
	return status.Error(c, c.String())
}

// StatusCode is a numeric status in a Domain. The zero value is success in
// the system domain. Codes built with Status, Errno or RPC compare equal with
// == exactly when value and domain match.
type StatusCode struct {
	value  int
	domain Domain
}

// Status builds a StatusCode for value in domain. A nil domain means
// SystemDomain.
func Status(value int, domain Domain) StatusCode {
	if domain == nil {
		domain = SystemDomain
	}
	return StatusCode{value: value, domain: domain}
}

// Errno builds a StatusCode in the system domain.
func Errno(e syscall.Errno) StatusCode {
	return StatusCode{value: int(e), domain: SystemDomain}
}

// RPC builds a StatusCode in the gRPC domain.
func RPC(c codes.Code) StatusCode {
	return StatusCode{value: int(c), domain: RPCDomain}
}

// Value returns the numeric code.
func (c StatusCode) Value() int { return c.value }

// Domain returns the interpreting domain, never nil.
func (c StatusCode) Domain() Domain {
	if c.domain == nil {
		return SystemDomain
	}
	return c.domain
}

// OK reports whether c represents "no error".
func (c StatusCode) OK() bool { return c.value == 0 }

// Describe returns the domain's text for c.
func (c StatusCode) Describe() string { return c.Domain().Describe(c.value) }

// Err returns the domain's native error for c, or nil when c is OK.
func (c StatusCode) Err() error {
	if c.OK() {
		return nil
	}
	return c.Domain().Err(c.value)
}

// String renders "<domain>:<value>".
func (c StatusCode) String() string {
	return c.Domain().Name() + ":" + strconv.Itoa(c.value)
}
