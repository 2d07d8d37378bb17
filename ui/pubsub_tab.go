package ui

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fynemvp/core/actions"
	"fynemvp/core/events"
	"fynemvp/ui/components"
)

var (
	actionPublishHello = actions.NewViewAction("pubsub", "publish-hello")
	actionStartTicker  = actions.NewViewAction("pubsub", "start-ticker")
	actionStopTicker   = actions.NewViewAction("pubsub", "stop-ticker")
	actionForgetWeak   = actions.NewViewAction("pubsub", "forget-weak")
)

// tickCounter is the weak-subscribed demo object: the aggregator holds it
// only weakly, so once the presenter forgets it the counter stops
// updating after the next collection.
type tickCounter struct {
	label *widget.Label
	seen  int
}

func (c *tickCounter) onTick(m TickMessage) {
	c.seen++
	c.label.SetText(fmt.Sprintf("weak counter: %d tick(s) seen", c.seen))
}

type pubsubPresenter struct {
	ctx *AppContext

	lines []string
	list  *widget.List

	counter      *tickCounter
	counterLabel *widget.Label

	tickerCancel context.CancelFunc
}

// CreatePubSubTab builds the event-aggregator demo: publishes from the UI
// goroutine and from background goroutines, a filtered subscription, and
// a weak subscription that dies with its owner.
func CreatePubSubTab(ctx *AppContext) fyne.CanvasObject {
	p := &pubsubPresenter{ctx: ctx}

	p.list = widget.NewList(
		func() int { return len(p.lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(p.lines[i])
		},
	)
	p.counterLabel = widget.NewLabel("weak counter: 0 tick(s) seen")
	p.counter = &tickCounter{label: p.counterLabel}

	// Handlers touch widgets directly: the aggregator posts them onto the
	// UI goroutine no matter where Publish happened.
	events.Subscribe(ctx.Bus, func(m StatusMessage) {
		p.appendLine(fmt.Sprintf("[%s] %s", m.Source, m.Text))
	})
	events.Subscribe(ctx.Bus, func(m TickMessage) {
		p.appendLine(fmt.Sprintf("tick %d", m.N))
	})
	events.Subscribe(ctx.Bus, func(m TickMessage) {
		p.appendLine(fmt.Sprintf("even tick %d", m.N))
	}, events.WithFilter(func(m TickMessage) bool { return m.N%2 == 0 }))
	events.SubscribeWeak(ctx.Bus, p.counter, (*tickCounter).onTick)

	dispatcher := actions.NewDispatcher()
	binder := actions.NewBinder(dispatcher)

	dispatcher.Register(actionPublishHello, func() {
		events.Publish(ctx.Bus, StatusMessage{Source: "ui", Text: "hello from the UI goroutine"})
		go events.Publish(ctx.Bus, StatusMessage{Source: "worker", Text: "hello from a background goroutine"})
	}, nil)
	dispatcher.Register(actionStartTicker, func() {
		tickCtx, cancel := context.WithCancel(context.Background())
		p.tickerCancel = cancel
		go runTicker(tickCtx, ctx.Bus)
		dispatcher.RaiseCanExecuteChanged()
	}, func() bool { return p.tickerCancel == nil })
	dispatcher.Register(actionStopTicker, func() {
		p.tickerCancel()
		p.tickerCancel = nil
		dispatcher.RaiseCanExecuteChanged()
	}, func() bool { return p.tickerCancel != nil })
	dispatcher.Register(actionForgetWeak, func() {
		p.counter = nil
		runtime.GC()
		p.appendLine("weak counter forgotten; it stops counting once collected")
		dispatcher.RaiseCanExecuteChanged()
	}, func() bool { return p.counter != nil })

	hello := widget.NewButton("Publish Hello", nil)
	start := widget.NewButton("Start Ticker", nil)
	stop := widget.NewButton("Stop Ticker", nil)
	forget := widget.NewButton("Forget Weak Counter", nil)
	components.BindButton(binder, hello, actionPublishHello)
	components.BindButton(binder, start, actionStartTicker)
	components.BindButton(binder, stop, actionStopTicker)
	components.BindButton(binder, forget, actionForgetWeak)

	controls := container.NewVBox(
		widget.NewLabel("Event Aggregator"),
		hello,
		container.NewHBox(start, stop),
		forget,
		p.counterLabel,
	)
	return container.NewBorder(controls, nil, nil, nil, p.list)
}

func (p *pubsubPresenter) appendLine(line string) {
	p.lines = append(p.lines, line)
	p.list.Refresh()
	p.list.ScrollToBottom()
}

// runTicker publishes a tick roughly every 700ms until ctx is cancelled.
// Cancellation is cooperative, checked between units of work.
func runTicker(ctx context.Context, bus *events.Aggregator) {
	ticker := time.NewTicker(700 * time.Millisecond)
	defer ticker.Stop()
	n := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n++
			events.Publish(bus, TickMessage{N: n})
		}
	}
}
