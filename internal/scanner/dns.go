package scanner

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"
)

const dnsTimeout = 4 * time.Second

// Resolver answers address lookups for the pipeline. Implementations must be
// safe for concurrent use from up to the scanner's DNS budget of callers.
type Resolver interface {
	// LookupIPs returns every A and AAAA address for host, nil when the
	// name does not resolve for any reason.
	LookupIPs(ctx context.Context, host string) []string
}

// newResolver builds the shared resolver: direct queries against the
// system-configured nameservers with a per-query timeout. Platforms without
// a readable resolv.conf fall back to the stdlib resolver.
func newResolver() Resolver {
	cfg, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(cfg.Servers) == 0 {
		return &stdResolver{}
	}

	servers := make([]string, 0, len(cfg.Servers))
	for _, s := range cfg.Servers {
		servers = append(servers, net.JoinHostPort(s, cfg.Port))
	}

	return &dnsResolver{
		client:  &dns.Client{Timeout: dnsTimeout},
		servers: servers,
	}
}

type dnsResolver struct {
	client  *dns.Client
	servers []string
}

func (r *dnsResolver) LookupIPs(ctx context.Context, host string) []string {
	var ips []string

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(host), qtype)

		for _, server := range r.servers {
			in, _, err := r.client.ExchangeContext(ctx, msg, server)
			if err != nil || in == nil || in.Rcode != dns.RcodeSuccess {
				continue
			}
			for _, rr := range in.Answer {
				switch a := rr.(type) {
				case *dns.A:
					ips = append(ips, a.A.String())
				case *dns.AAAA:
					ips = append(ips, a.AAAA.String())
				}
			}
			break
		}
	}

	return ips
}

type stdResolver struct{}

func (r *stdResolver) LookupIPs(ctx context.Context, host string) []string {
	lookupCtx, cancel := context.WithTimeout(ctx, dnsTimeout)
	defer cancel()

	addrs, err := net.DefaultResolver.LookupHost(lookupCtx, host)
	if err != nil {
		return nil
	}
	return addrs
}
