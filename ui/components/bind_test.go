package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"fynemvp/core/actions"
)

func TestBindButton(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	d := actions.NewDispatcher()
	b := actions.NewBinder(d)
	action := actions.NewViewAction("test", "run")

	allowed := true
	ran := 0
	d.Register(action, func() { ran++ }, func() bool { return allowed })

	btn := widget.NewButton("Run", nil)
	BindButton(b, btn, action)

	if btn.Disabled() {
		t.Fatal("button should start enabled")
	}
	test.Tap(btn)
	if ran != 1 {
		t.Errorf("expected 1 dispatch, got %d", ran)
	}

	allowed = false
	d.RaiseCanExecuteChanged()
	if !btn.Disabled() {
		t.Error("button should be disabled after the predicate flips")
	}
	if d.CanExecute(action) {
		t.Error("dispatcher should report not executable")
	}
}

func TestBindCheck(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	d := actions.NewDispatcher()
	b := actions.NewBinder(d)
	action := actions.NewViewAction("test", "toggle")

	var got []bool
	actions.RegisterWith(d, action, func(on bool) { got = append(got, on) }, nil)

	chk := widget.NewCheck("Toggle", nil)
	BindCheck(b, chk, action)

	chk.SetChecked(true)
	chk.SetChecked(false)

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("expected checked states [true false], got %v", got)
	}
}
