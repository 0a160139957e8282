// Package viewer hosts the Bubble Tea program that presents the loaded
// signals one full-screen frame at a time.
package viewer

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/quietfield/drift/pkg/feed"
	"github.com/quietfield/drift/pkg/gesture"
	"github.com/quietfield/drift/pkg/nav"
	"github.com/quietfield/drift/pkg/signal"
)

type state int

const (
	stateLoading state = iota
	stateReady
	stateEmpty
	stateFailed
)

const (
	// wheelNotchDelta is the scroll magnitude one terminal wheel notch
	// contributes to the accumulator.
	wheelNotchDelta = 40.0

	// transitionSteps/transitionInterval shape the brief reveal played
	// when the active frame changes. Reduced motion skips it.
	transitionSteps    = 3
	transitionInterval = 40 * time.Millisecond

	maxCaptionWidth = 72
)

type keyMap struct {
	Advance key.Binding
	Retreat key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Advance: key.NewBinding(
			key.WithKeys("down", "pgdown", " ", "enter"),
			key.WithHelp("↓/space", "next"),
		),
		Retreat: key.NewBinding(
			key.WithKeys("up", "pgup"),
			key.WithHelp("↑/pgup", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Retreat, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Advance, k.Retreat, k.Quit}}
}

// Options wires the viewer to its fetcher and tunables. Zero values
// fall back to the package defaults.
type Options struct {
	Client         *feed.Client
	Cooldown       time.Duration
	WheelThreshold float64
	SwipeRows      int
	ReducedMotion  bool
}

// Model is the full viewer state. One fetch per session feeds it; after
// that only navigation and lazy image loads mutate it.
type Model struct {
	client *feed.Client

	state   state
	loadErr error

	signals []*signal.Signal
	frames  []*Frame
	ctrl    *nav.Controller

	acc   *gesture.Accumulator
	swipe *gesture.Swipe

	cooldown      time.Duration
	reducedMotion bool
	transition    int

	spin  spinner.Model
	keys  keyMap
	help  help.Model
	theme Theme

	profile termenv.Profile
	width   int
	height  int

	clock func() time.Time
}

// New builds the viewer model. The color profile and reduced-motion
// preference are read once here, never re-checked.
func New(opts Options) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	swipeThreshold := float64(opts.SwipeRows)
	return Model{
		client:        opts.Client,
		state:         stateLoading,
		acc:           gesture.NewAccumulator(opts.WheelThreshold),
		swipe:         gesture.NewSwipe(swipeThreshold),
		cooldown:      opts.Cooldown,
		reducedMotion: opts.ReducedMotion,
		spin:          sp,
		keys:          defaultKeyMap(),
		help:          help.New(),
		theme:         Default(),
		profile:       termenv.EnvColorProfile(),
		width:         80,
		height:        24,
		clock:         time.Now,
	}
}

type signalsLoadedMsg struct{ signals []*signal.Signal }
type fetchFailedMsg struct{ err error }
type wheelIdleMsg struct{ gen int }
type imageLoadedMsg struct {
	index int
	img   image.Image
}
type imageFailedMsg struct{ index int }
type transitionMsg struct{}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetch())
}

// fetch issues the session's single content request.
func (m Model) fetch() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		signals, err := client.Fetch(context.Background())
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return signalsLoadedMsg{signals: signals}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case signalsLoadedMsg:
		if len(msg.signals) == 0 {
			m.state = stateEmpty
			break
		}
		m.signals = msg.signals
		m.frames = BuildFrames(msg.signals)
		m.ctrl = nav.NewController(len(m.frames), m.cooldown)
		m.state = stateReady
		cmds = append(cmds, m.loadImages(0)...)

	case fetchFailedMsg:
		m.state = stateFailed
		m.loadErr = msg.err

	case imageLoadedMsg:
		if msg.index >= 0 && msg.index < len(m.frames) {
			m.frames[msg.index].SetImage(msg.img)
		}

	case imageFailedMsg:
		if msg.index >= 0 && msg.index < len(m.frames) {
			m.frames[msg.index].Broken = true
		}

	case wheelIdleMsg:
		// Only the most recent quiet-timer may evaluate; earlier ones
		// were superseded by later wheel events.
		if msg.gen == m.acc.Generation() {
			cmds = append(cmds, m.dispatch(m.acc.Evaluate())...)
		}

	case transitionMsg:
		if m.transition > 0 {
			m.transition--
			if m.transition > 0 {
				cmds = append(cmds, tickTransition())
			}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Advance):
			cmds = append(cmds, m.dispatch(nav.Advance)...)
		case key.Matches(msg, m.keys.Retreat):
			cmds = append(cmds, m.dispatch(nav.Retreat)...)
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg)...)
	}

	return m, tea.Batch(cmds...)
}

// handleMouse feeds the wheel and drag interpreters.
func (m *Model) handleMouse(msg tea.MouseMsg) []tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			gen := m.acc.Add(wheelNotchDelta)
			return []tea.Cmd{tickWheelIdle(gen)}
		case tea.MouseButtonWheelUp:
			gen := m.acc.Add(-wheelNotchDelta)
			return []tea.Cmd{tickWheelIdle(gen)}
		case tea.MouseButtonLeft:
			m.swipe.Start(float64(msg.Y))
		}
	case tea.MouseActionRelease:
		return m.dispatch(m.swipe.End(float64(msg.Y)))
	}
	return nil
}

// dispatch routes one navigation command through the controller and, on
// an actual move, kicks off the transition and neighboring image loads.
func (m *Model) dispatch(cmd nav.Command) []tea.Cmd {
	if m.state != stateReady || m.ctrl == nil {
		return nil
	}
	if !m.ctrl.Handle(cmd, m.clock()) {
		return nil
	}

	cmds := m.loadImages(m.ctrl.Index())
	if !m.reducedMotion {
		m.transition = transitionSteps
		cmds = append(cmds, tickTransition())
	}
	return cmds
}

// loadImages starts lazy fetches for the frame at idx and its
// neighbors, skipping frames already requested.
func (m *Model) loadImages(idx int) []tea.Cmd {
	var cmds []tea.Cmd
	for _, i := range []int{idx, idx + 1, idx - 1} {
		if i < 0 || i >= len(m.frames) {
			continue
		}
		f := m.frames[i]
		if !f.Loadable() {
			continue
		}
		f.requested = true
		index, url := i, f.Signal.ImageURL
		cmds = append(cmds, func() tea.Msg {
			img, err := fetchImage(context.Background(), url)
			if err != nil {
				return imageFailedMsg{index: index}
			}
			return imageLoadedMsg{index: index, img: img}
		})
	}
	return cmds
}

func tickWheelIdle(gen int) tea.Cmd {
	return tea.Tick(gesture.WheelQuiet, func(time.Time) tea.Msg {
		return wheelIdleMsg{gen: gen}
	})
}

func tickTransition() tea.Cmd {
	return tea.Tick(transitionInterval, func(time.Time) tea.Msg {
		return transitionMsg{}
	})
}

func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return m.centered(m.spin.View() + " tuning in…")
	case stateFailed:
		detail := ""
		if m.loadErr != nil {
			detail = "\n\n" + m.theme.Status.Render(m.loadErr.Error())
		}
		return m.centered(m.theme.Broken.Render("failed to load") + "\n\n" +
			m.theme.Hint.Render("the signal did not come through, try again later") + detail)
	case stateEmpty:
		return m.centered("no content yet" + "\n\n" +
			m.theme.Hint.Render("nothing has surfaced yet, check back soon"))
	}

	f := m.activeFrame()
	if f == nil {
		return ""
	}

	header := m.renderHeader(f)
	footer := m.renderFooter()
	frameH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if frameH < 1 {
		frameH = 1
	}

	return header + "\n" + m.renderFrame(f, m.width, frameH) + "\n" + footer
}

func (m Model) activeFrame() *Frame {
	if m.ctrl == nil || len(m.frames) == 0 {
		return nil
	}
	return m.frames[m.ctrl.Index()]
}

func (m Model) renderHeader(f *Frame) string {
	title := m.theme.Title.Render("d r i f t")
	pos := m.theme.Position.Render(fmt.Sprintf("%d / %d", f.Index+1, len(m.frames)))
	id := m.theme.SignalID.Render(f.Signal.ID)

	left := title + "  " + pos
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(id) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + id
}

func (m Model) renderFooter() string {
	hint := m.theme.Hint.Render("scroll · drag · ↑↓")
	return " " + hint + "  " + m.help.View(m.keys)
}

// renderFrame draws one display unit into a w×h box: image (once
// loaded) above, caption pinned near the bottom.
func (m Model) renderFrame(f *Frame, w, h int) string {
	captionBlock := ""
	captionH := 0
	if f.Caption != "" {
		capW := w - 4
		if capW > maxCaptionWidth {
			capW = maxCaptionWidth
		}
		if capW < 1 {
			capW = 1
		}
		wrapped := wordwrap.String(f.Caption, capW)
		style := m.theme.Caption
		if m.transition > 0 {
			style = m.theme.Dim
		}
		captionBlock = style.Render(wrapped)
		captionH = lipgloss.Height(captionBlock) + 1
	}

	imageH := h - captionH
	if imageH < 1 {
		imageH = 1
	}
	body := m.renderImageArea(f, w, imageH)

	out := lipgloss.Place(w, imageH, lipgloss.Center, lipgloss.Center, body)
	if captionBlock != "" {
		out += "\n" + lipgloss.PlaceHorizontal(w, lipgloss.Center, captionBlock)
	}
	return out
}

func (m Model) renderImageArea(f *Frame, w, h int) string {
	switch {
	case f.Broken:
		return m.theme.Broken.Render("✕ image unavailable")
	case f.Image == nil && f.Signal.ImageURL != "":
		return m.theme.Status.Render("…")
	case f.Image == nil:
		return ""
	case m.transition > 0:
		// The image snaps in once the reveal finishes.
		return m.theme.Dim.Render("·")
	case m.profile == termenv.Ascii:
		return m.theme.Status.Render("[image]")
	}
	return renderImage(f.Image, w, h, f.Fit)
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run launches the viewer program. Mouse reporting is enabled so the
// wheel and drag interpreters receive their events.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
