package scanner

import (
	"context"
	"net"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vulnverified/prowl/internal/modules"
	"github.com/vulnverified/prowl/internal/report"
	"github.com/vulnverified/prowl/pkg/ports"
)

const portConnectTimeout = 3 * time.Second

// ScanPorts fans TCP connect attempts across the common-ports catalogue with
// the given concurrency and returns host with its open ports populated.
// Closed and filtered ports are silently skipped.
func ScanPorts(ctx context.Context, concurrency int, host report.Host) report.Host {
	var (
		mu   sync.Mutex
		open []report.Port
	)

	dialer := &net.Dialer{Timeout: portConnectTimeout}

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for _, port := range ports.MostCommon {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			addr := net.JoinHostPort(host.Domain, strconv.Itoa(int(port)))
			conn, err := dialer.DialContext(ctx, "tcp", addr)
			if err != nil {
				return nil
			}
			conn.Close()

			mu.Lock()
			open = append(open, report.Port{
				Port:     port,
				Protocol: report.ProtocolTCP,
				Findings: []modules.Finding{},
			})
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	sort.Slice(open, func(i, j int) bool { return open[i].Port < open[j].Port })
	if open == nil {
		open = []report.Port{}
	}
	host.Ports = open

	return host
}
