package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// EmailDomainChecker reports whether the domain part of an email can receive mail.
type EmailDomainChecker func(ctx context.Context, email string) bool

// AcceptAnyDomain is used when the DNS check is switched off.
func AcceptAnyDomain(context.Context, string) bool { return true }

// DNSDomainChecker accepts a domain with an MX record or, failing that, any
// address record. Lookups are bounded by timeout.
func DNSDomainChecker(resolver *net.Resolver, timeout time.Duration) EmailDomainChecker {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return func(ctx context.Context, email string) bool {
		domain, ok := EmailDomain(email)
		if !ok {
			return false
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
			return true
		}
		if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
			return true
		}
		return false
	}
}

func EmailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
