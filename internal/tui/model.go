// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typerush/internal/engine"
	"github.com/verte-zerg/typerush/internal/generator"
	"github.com/verte-zerg/typerush/internal/logging"
	"github.com/verte-zerg/typerush/internal/model"
	"github.com/verte-zerg/typerush/internal/sound"
	"github.com/verte-zerg/typerush/internal/textgen"
)

const generateTimeout = 45 * time.Second

type screen int

const (
	screenSetup screen = iota
	screenLoading
	screenTyping
	screenResults
)

// Options wires the model to its collaborators.
type Options struct {
	Config model.Config
	Vocab  generator.Vocabulary
	Gen    *generator.Generator
	Text   textgen.Provider
	Images textgen.ImageProvider
	Sound  *sound.Subscriber
	Logger *slog.Logger
	// SkipSetup starts generating text for Config right away.
	SkipSetup bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model implements the Bubble Tea typing UI. Every session event is handled
// in Update, which makes the model the single owner of the session.
type Model struct {
	cfg    model.Config
	vocab  generator.Vocabulary
	gen    *generator.Generator
	text   textgen.Provider
	images textgen.ImageProvider
	sound  *sound.Subscriber
	logger *slog.Logger
	now    func() time.Time

	width  int
	height int

	screen   screen
	keys     keyMap
	help     help.Model
	setup    setupForm
	spinner  spinner.Model
	progress progress.Model

	requestID int
	skipSetup bool
	seedText  string
	imageRef  string
	session   *engine.Session
	startedAt time.Time
	result    *model.Result
	err       error
}

type textReadyMsg struct {
	id    int
	text  string
	image string
	err   error
}

type tickMsg struct {
	epoch uint64
}

// NewModel constructs a typing TUI model.
func NewModel(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	images := opts.Images
	if images == nil {
		images = textgen.NoImage{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	sub := opts.Sound
	if sub == nil {
		sub = sound.NewSubscriber(nil, false, logger)
	}
	return &Model{
		cfg:       opts.Config,
		vocab:     opts.Vocab,
		gen:       opts.Gen,
		text:      opts.Text,
		images:    images,
		sound:     sub,
		logger:    logger,
		now:       now,
		keys:      newKeyMap(),
		help:      help.New(),
		setup:     newSetupForm(opts.Config),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(currentWordStyle)),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		skipSetup: opts.SkipSetup,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.skipSetup {
		return m.startLoading()
	}
	return m.setup.focus()
}

// LastResult returns the most recently finished session.
func (m *Model) LastResult() (model.Result, bool) {
	if m.result == nil {
		return model.Result{}, false
	}
	return *m.result, true
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = m.contentWidth()
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenSetup:
			return m.updateSetup(msg)
		case screenLoading:
			if msg.Type == tea.KeyEsc {
				m.requestID++
				m.screen = screenSetup
				return m, m.setup.focus()
			}
			return m, nil
		case screenTyping:
			return m.updateTyping(msg)
		case screenResults:
			return m.updateResults(msg)
		}
		return m, nil
	case spinner.TickMsg:
		if m.screen != screenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case textReadyMsg:
		return m.handleTextReady(msg)
	case tickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.screen {
	case screenSetup:
		content = m.viewSetup()
	case screenLoading:
		content = m.viewLoading()
	case screenTyping:
		content = m.viewTyping()
	case screenResults:
		content = m.viewResults()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) startLoading() tea.Cmd {
	m.requestID++
	m.screen = screenLoading
	m.err = nil
	req := textgen.NewRequest(m.cfg.Topic, m.cfg.Difficulty, m.cfg.Complexity, m.cfg.Duration)
	m.logger.Info("generating text", "topic", req.Topic, "words", req.Words, "difficulty", req.Difficulty)
	return tea.Batch(m.spinner.Tick, generate(m.requestID, req, m.text, m.images, m.cfg.Image, m.logger))
}

func generate(id int, req textgen.Request, text textgen.Provider, images textgen.ImageProvider, withImage bool, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		msg := textReadyMsg{id: id}
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg.text, msg.err = text.Generate(ctx, req)
		}()
		if withImage {
			wg.Add(1)
			go func() {
				defer wg.Done()
				url, err := images.Image(ctx, req.Topic)
				if err != nil {
					logger.Warn("image generation failed", "topic", req.Topic, "error", err)
					return
				}
				msg.image = url
			}()
		}
		wg.Wait()
		return msg
	}
}

func (m *Model) handleTextReady(msg textReadyMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.requestID || m.screen != screenLoading {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Error("failed to prepare text", "error", msg.err)
		m.err = msg.err
		m.screen = screenSetup
		return m, m.setup.focus()
	}
	m.seedText = msg.text
	m.imageRef = msg.image
	m.beginSession()
	return m, nil
}

func (m *Model) newSource() *generator.Source {
	return generator.NewSource(m.seedText, m.vocab, m.gen, m.cfg.LineSize)
}

func (m *Model) beginSession() {
	opts := engine.Options{Duration: m.cfg.Duration, PartialWord: m.cfg.PartialWord}
	if m.session == nil {
		m.session = engine.New(m.newSource(), opts)
	} else {
		m.session.RestartWith(m.newSource(), opts)
	}
	m.startedAt = time.Time{}
	m.screen = screenTyping
}
