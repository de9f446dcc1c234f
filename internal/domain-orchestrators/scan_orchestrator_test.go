package orchestrators

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burpctl/burpctl/internal/domain/interfaces/gateways"
	"github.com/burpctl/burpctl/internal/domain/services"
)

// fakeScanner records the gateway calls it receives, in order. Unused
// interface methods come from the embedded nil interface and panic if hit.
type fakeScanner struct {
	gateways.ScannerGateway
	calls    []string
	statuses []int
	statusAt int
	onStatus func() // invoked after each status call, when set
}

func (f *fakeScanner) IncludeInScope(_ context.Context, target string) error {
	f.calls = append(f.calls, "scope:"+target)
	return nil
}

func (f *fakeScanner) SeedSpider(_ context.Context, target string) error {
	f.calls = append(f.calls, "seed:"+target)
	return nil
}

func (f *fakeScanner) IsInScope(_ context.Context, target string) (bool, error) {
	f.calls = append(f.calls, "in-scope:"+target)
	return true, nil
}

func (f *fakeScanner) StartActiveScan(_ context.Context, target string) error {
	f.calls = append(f.calls, "scan-active:"+target)
	return nil
}

func (f *fakeScanner) StartPassiveScan(_ context.Context, target string) error {
	f.calls = append(f.calls, "scan-passive:"+target)
	return nil
}

func (f *fakeScanner) SpiderStatus(_ context.Context) (int, error) {
	f.calls = append(f.calls, "spider-status")
	return f.nextStatus(), nil
}

func (f *fakeScanner) ScanStatus(_ context.Context) (int, error) {
	f.calls = append(f.calls, "scan-status")
	return f.nextStatus(), nil
}

func (f *fakeScanner) nextStatus() int {
	if f.onStatus != nil {
		defer f.onStatus()
	}
	if f.statusAt >= len(f.statuses) {
		return 100
	}
	s := f.statuses[f.statusAt]
	f.statusAt++
	return s
}

func newTestOrchestrator(fake *fakeScanner) (*ScanOrchestrator, *bytes.Buffer) {
	var out bytes.Buffer
	orch := NewScanOrchestrator(services.NewScannerService(fake), fake, &out,
		PollOptions{Interval: time.Millisecond})
	return orch, &out
}

func TestRunSpider_PerTargetOrder(t *testing.T) {
	fake := &fakeScanner{}
	orch, _ := newTestOrchestrator(fake)

	err := orch.RunSpider(context.Background(), []string{"http://a", "http://b"}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"scope:http://a", "seed:http://a",
		"scope:http://b", "seed:http://b",
	}, fake.calls)
}

func TestRunSpider_FollowPollsToCompletion(t *testing.T) {
	fake := &fakeScanner{statuses: []int{0, 40, 100}}
	orch, out := newTestOrchestrator(fake)

	err := orch.RunSpider(context.Background(), []string{"http://a"}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"scope:http://a", "seed:http://a",
		"spider-status", "spider-status", "spider-status",
	}, fake.calls)
	assert.Contains(t, out.String(), "spider at 40%")
	assert.Contains(t, out.String(), "spider completed")
}

func TestRunScan_PassiveNeverActive(t *testing.T) {
	fake := &fakeScanner{statuses: []int{100}}
	orch, _ := newTestOrchestrator(fake)

	err := orch.RunScan(context.Background(), []string{"http://a"},
		ScanOptions{Passive: true, Spider: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"scope:http://a", "seed:http://a",
		"spider-status",
		"scan-passive:http://a",
	}, fake.calls)
}

func TestRunScan_ActiveByDefault(t *testing.T) {
	fake := &fakeScanner{statuses: []int{100}}
	orch, _ := newTestOrchestrator(fake)

	err := orch.RunScan(context.Background(), []string{"http://a"},
		ScanOptions{Spider: true})
	require.NoError(t, err)
	assert.Equal(t, "scan-active:http://a", fake.calls[len(fake.calls)-1])
}

func TestRunScan_BatchSpidersBeforeAnyScan(t *testing.T) {
	fake := &fakeScanner{statuses: []int{100}}
	orch, _ := newTestOrchestrator(fake)

	err := orch.RunScan(context.Background(), []string{"http://a", "http://b"},
		ScanOptions{Spider: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"scope:http://a", "seed:http://a",
		"scope:http://b", "seed:http://b",
		"spider-status",
		"scan-active:http://a", "scan-active:http://b",
	}, fake.calls)
}

func TestRunScan_SpiderDisabled(t *testing.T) {
	fake := &fakeScanner{}
	orch, _ := newTestOrchestrator(fake)

	err := orch.RunScan(context.Background(), []string{"http://a"},
		ScanOptions{Spider: false})
	require.NoError(t, err)
	assert.Equal(t, []string{"in-scope:http://a", "scan-active:http://a"}, fake.calls)
}

func TestRunScan_InterruptDuringSpiderWaitSkipsScans(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// Interrupt arrives right after the first status poll.
	fake := &fakeScanner{statuses: []int{10, 20, 30}, onStatus: cancel}
	orch, out := newTestOrchestrator(fake)

	err := orch.RunScan(ctx, []string{"http://a"}, ScanOptions{Spider: true})
	require.NoError(t, err)

	for _, call := range fake.calls {
		assert.NotContains(t, call, "scan-active")
		assert.NotContains(t, call, "scan-passive")
	}
	assert.Contains(t, out.String(), "may still be running")
}
