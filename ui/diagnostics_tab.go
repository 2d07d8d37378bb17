package ui

import (
	"context"
	"fmt"
	"net"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/pion/stun"
	"github.com/txthinking/socks5"

	"fynemvp/core/actions"
	"fynemvp/core/events"
	"fynemvp/internal/debuglog"
	"fynemvp/internal/process"
	"fynemvp/ui/components"
)

var (
	actionCheckIP     = actions.NewViewAction("diagnostics", "check-ip")
	actionStartProbe  = actions.NewViewAction("diagnostics", "start-probe")
	actionCancelProbe = actions.NewViewAction("diagnostics", "cancel-probe")
	actionProbeSocks  = actions.NewViewAction("diagnostics", "probe-socks")
	actionFindProcess = actions.NewViewAction("diagnostics", "find-process")
)

const probeRounds = 10

// checkSTUN performs a STUN binding request to determine the external IP
// address.
func checkSTUN(serverAddr string) (string, error) {
	conn, err := net.Dial("udp", serverAddr)
	if err != nil {
		return "", fmt.Errorf("failed to dial STUN server: %w", err)
	}
	defer debuglog.CloseWithLog("diagnostics: stun conn", conn)

	c, err := stun.NewClient(conn)
	if err != nil {
		return "", fmt.Errorf("failed to create STUN client: %w", err)
	}
	defer debuglog.CloseWithLog("diagnostics: stun client", c)

	message := stun.MustBuild(stun.TransactionID, stun.BindingRequest)

	var xorAddr stun.XORMappedAddress
	var errResult error
	done := make(chan struct{})

	go func() {
		err := c.Do(message, func(res stun.Event) {
			if res.Error != nil {
				errResult = res.Error
				return
			}
			if err := xorAddr.GetFrom(res.Message); err != nil {
				errResult = err
			}
		})
		if err != nil {
			errResult = err
		}
		close(done)
	}()

	select {
	case <-done:
		if errResult != nil {
			return "", fmt.Errorf("STUN request failed: %w", errResult)
		}
		return xorAddr.IP.String(), nil
	case <-time.After(5 * time.Second):
		return "", fmt.Errorf("STUN request timed out")
	}
}

// probeSocks connects through the SOCKS5 proxy at proxyAddr and dials a
// well-known endpoint to verify the proxy answers.
func probeSocks(proxyAddr string) error {
	client, err := socks5.NewClient(proxyAddr, "", "", 5, 5)
	if err != nil {
		return fmt.Errorf("failed to create SOCKS5 client: %w", err)
	}
	conn, err := client.Dial("tcp", "example.com:80")
	if err != nil {
		return fmt.Errorf("SOCKS5 dial failed: %w", err)
	}
	debuglog.CloseWithLog("diagnostics: socks conn", conn)
	return nil
}

type diagnosticsPresenter struct {
	ctx        *AppContext
	dispatcher *actions.Dispatcher

	lines []string
	list  *widget.List

	probeCancel  context.CancelFunc
	busy         bool
	processEntry *widget.Entry
}

// CreateDiagnosticsTab builds the async-operation demo: every check runs
// on a background goroutine, reports through the aggregator, and the
// latency probe shows cooperative cancellation between rounds.
func CreateDiagnosticsTab(ctx *AppContext) fyne.CanvasObject {
	p := &diagnosticsPresenter{ctx: ctx}

	p.list = widget.NewList(
		func() int { return len(p.lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(p.lines[i])
		},
	)
	p.processEntry = widget.NewEntry()
	p.processEntry.SetPlaceHolder("process name")

	dispatcher := actions.NewDispatcher()
	p.dispatcher = dispatcher
	binder := actions.NewBinder(dispatcher)

	// Updates land on the UI goroutine via the aggregator's poster.
	events.Subscribe(ctx.Bus, func(m DiagnosticsUpdate) {
		switch {
		case m.Err != nil:
			p.appendLine(fmt.Sprintf("%s: error: %v", m.Op, m.Err))
		case m.Text != "":
			p.appendLine(fmt.Sprintf("%s: %s", m.Op, m.Text))
		}
		if m.Done {
			p.finishOp()
		}
	})

	notBusy := func() bool { return !p.busy }

	dispatcher.Register(actionCheckIP, func() {
		p.busy = true
		dispatcher.RaiseCanExecuteChanged()
		server := ctx.Settings.STUNServer
		go func() {
			ip, err := checkSTUN(server)
			if err != nil {
				events.Publish(ctx.Bus, DiagnosticsUpdate{Op: "stun", Err: err, Done: true})
				return
			}
			events.Publish(ctx.Bus, DiagnosticsUpdate{
				Op: "stun", Text: fmt.Sprintf("external IP %s (via [UDP]%s)", ip, server), Done: true,
			})
		}()
	}, notBusy)

	dispatcher.Register(actionStartProbe, func() {
		probeCtx, cancel := context.WithCancel(context.Background())
		p.probeCancel = cancel
		p.busy = true
		dispatcher.RaiseCanExecuteChanged()
		go runLatencyProbe(probeCtx, ctx.Bus, ctx.Settings.STUNServer)
	}, notBusy)

	dispatcher.Register(actionCancelProbe, func() {
		p.probeCancel()
	}, func() bool { return p.probeCancel != nil })

	dispatcher.Register(actionProbeSocks, func() {
		p.busy = true
		dispatcher.RaiseCanExecuteChanged()
		proxy := ctx.Settings.SocksProbe
		go func() {
			if err := probeSocks(proxy); err != nil {
				events.Publish(ctx.Bus, DiagnosticsUpdate{Op: "socks", Err: err, Done: true})
				return
			}
			events.Publish(ctx.Bus, DiagnosticsUpdate{
				Op: "socks", Text: fmt.Sprintf("proxy %s answered", proxy), Done: true,
			})
		}()
	}, notBusy)

	dispatcher.Register(actionFindProcess, func() {
		name := p.processEntry.Text
		go func() {
			found, err := process.FindByName(name)
			if err != nil {
				events.Publish(ctx.Bus, DiagnosticsUpdate{Op: "process", Err: err, Done: true})
				return
			}
			text := fmt.Sprintf("%d process(es) matching %q", len(found), name)
			for i, pr := range found {
				if i == 5 {
					text += ", ..."
					break
				}
				text += fmt.Sprintf(", pid %d %s", pr.PID, pr.Name)
			}
			events.Publish(ctx.Bus, DiagnosticsUpdate{Op: "process", Text: text, Done: true})
		}()
	}, func() bool { return p.processEntry.Text != "" })
	p.processEntry.OnChanged = func(string) { dispatcher.RaiseCanExecuteChanged() }

	checkIP := widget.NewButton("Check External IP", nil)
	startProbe := widget.NewButton("Latency Probe", nil)
	cancelProbe := widget.NewButton("Cancel", nil)
	socksBtn := widget.NewButton("Probe SOCKS5", nil)
	findBtn := widget.NewButton("Find Process", nil)
	components.BindButton(binder, checkIP, actionCheckIP)
	components.BindButton(binder, startProbe, actionStartProbe)
	components.BindButton(binder, cancelProbe, actionCancelProbe)
	components.BindButton(binder, socksBtn, actionProbeSocks)
	components.BindButton(binder, findBtn, actionFindProcess)

	controls := container.NewVBox(
		widget.NewLabel("Diagnostics"),
		container.NewHBox(checkIP, startProbe, cancelProbe, socksBtn),
		container.NewBorder(nil, nil, nil, findBtn, p.processEntry),
	)
	return container.NewBorder(controls, nil, nil, nil, p.list)
}

// finishOp resets the busy state once an operation reports Done. The
// probe's cancel func is called before being dropped so the context's
// resources are released even when the probe ended on its own.
func (p *diagnosticsPresenter) finishOp() {
	p.busy = false
	if p.probeCancel != nil {
		p.probeCancel()
		p.probeCancel = nil
	}
	p.dispatcher.RaiseCanExecuteChanged()
}

func (p *diagnosticsPresenter) appendLine(line string) {
	p.lines = append(p.lines, line)
	p.list.Refresh()
	p.list.ScrollToBottom()
}

// runLatencyProbe measures a handful of sequential STUN round trips.
// Cancellation is checked between rounds, never mid-request.
func runLatencyProbe(ctx context.Context, bus *events.Aggregator, server string) {
	for round := 1; round <= probeRounds; round++ {
		select {
		case <-ctx.Done():
			events.Publish(bus, DiagnosticsUpdate{Op: "probe", Text: "cancelled", Done: true})
			return
		default:
		}
		start := time.Now()
		if _, err := checkSTUN(server); err != nil {
			events.Publish(bus, DiagnosticsUpdate{Op: "probe", Err: err, Done: true})
			return
		}
		events.Publish(bus, DiagnosticsUpdate{
			Op: "probe", Text: fmt.Sprintf("round %d/%d: %v", round, probeRounds, time.Since(start).Round(time.Millisecond)),
		})
	}
	events.Publish(bus, DiagnosticsUpdate{Op: "probe", Text: "finished", Done: true})
}
