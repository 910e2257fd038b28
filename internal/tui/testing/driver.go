package testing

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// maxRounds bounds command chains so self-rescheduling commands cannot
// spin forever.
const maxRounds = 16

// Driver runs a Bubble Tea model without a terminal. Commands returned by
// Update are executed synchronously and their messages fed back in.
type Driver struct {
	Model    tea.Model
	pending  []tea.Cmd
	Messages []tea.Msg
	Quit     bool
}

// NewDriver wraps model.
func NewDriver(model tea.Model) *Driver {
	return &Driver{Model: model}
}

// Init queues the model's initial command.
func (d *Driver) Init() *Driver {
	d.queue(d.Model.Init())
	return d
}

// Send delivers msg to the model and queues the resulting command without
// running it.
func (d *Driver) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.queue(cmd)
	return cmd
}

// Press sends each key in turn, flushing commands after every key.
func (d *Driver) Press(keys ...tea.KeyMsg) *Driver {
	for _, k := range keys {
		d.Send(k)
		d.Flush()
	}
	return d
}

// Flush runs queued commands until none remain. Spinner ticks are
// recorded but not fed back, since they reschedule themselves.
func (d *Driver) Flush() []tea.Msg {
	var delivered []tea.Msg
	for round := 0; round < maxRounds && len(d.pending) > 0; round++ {
		cmds := d.pending
		d.pending = nil

		for _, cmd := range cmds {
			for _, msg := range expand(cmd) {
				d.Messages = append(d.Messages, msg)
				switch msg.(type) {
				case spinner.TickMsg:
					continue
				case tea.QuitMsg:
					d.Quit = true
					continue
				}
				delivered = append(delivered, msg)
				d.Send(msg)
			}
		}
	}
	return delivered
}

// View renders the model with ANSI codes removed.
func (d *Driver) View() string {
	return StripANSI(d.Model.View())
}

// Pending returns the number of queued commands.
func (d *Driver) Pending() int {
	return len(d.pending)
}

func (d *Driver) queue(cmd tea.Cmd) {
	if cmd != nil {
		d.pending = append(d.pending, cmd)
	}
}

// expand runs cmd, unpacking batches and sequences into their messages.
func expand(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, expand(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}
