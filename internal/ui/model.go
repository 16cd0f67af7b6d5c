package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"contribcard/internal/card"
	"contribcard/internal/config"
	"contribcard/internal/directory"
	"contribcard/internal/eventbus"
	"contribcard/internal/search"
	"contribcard/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	selector *card.Selector

	// search state lives in the controller; input mirrors its query
	controller *search.Controller
	scheduler  *programScheduler
	snapshot   search.Snapshot
	input      textinput.Model

	dir      *directory.Directory
	dirReady bool
	card     views.CardState

	statusMessage string
	statusKind    views.StatusKind

	width       int
	height      int
	help        help.Model
	keys        keyMap
	renderer    *views.Renderer
	pager       *PagerOps
	inPagerMode bool
	copyText    func(string) error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. Committed selections go to selector.
func NewModel(bus eventbus.EventBus, cfg *config.Config, selector *card.Selector) *Model {
	input := textinput.New()
	input.Placeholder = "Type your GitHub login"
	input.Prompt = "› "
	input.CharLimit = 39 // longest GitHub login

	m := &Model{
		bus:       bus,
		config:    cfg,
		selector:  selector,
		scheduler: &programScheduler{},
		input:     input,
		dir:       directory.Empty(),
		help:      help.New(),
		keys:      defaultKeyMap(),
		renderer:  views.NewRenderer(),
		pager:     NewPagerOps(),
		copyText:  clipboard.WriteAll,
	}
	m.input.PromptStyle = m.renderer.Styles().Prompt

	m.controller = search.New(m.dir, search.NavigatorFunc(m.goTo), search.Options{
		MinCharacters: cfg.Search.MinCharacters,
		Delay:         cfg.Search.Delay(),
		MaxResults:    cfg.Search.MaxResults,
		Scheduler:     m.scheduler,
	})
	m.controller.Subscribe(func(s search.Snapshot) {
		m.snapshot = s
	})
	m.controller.Focus()
	m.input.Focus()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.scheduler.send = p.Send
	m.pager.SetProgram(p)
}

// Controller returns the search controller
func (m *Model) Controller() *search.Controller {
	return m.controller
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		if m.controller.Focused() {
			return m, m.handleSearchKey(msg)
		}
		return m, m.handleBrowseKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case runTaskMsg:
		msg.task.run()
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.WithError(msg.err).Warn("ui: pager failed")
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), views.StatusError)
		}
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	// cursor blink and other input internals
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSearchKey routes a key while the search box is focused
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit

	case key.Matches(msg, m.keys.Clear):
		// a second Escape on an empty box leaves it
		if m.controller.Query() == "" && !m.controller.Visible() {
			m.controller.Blur()
		} else {
			m.controller.OnKey(search.KeyEscape)
		}
		return m.syncInput()

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Select):
		m.controller.OnKey(search.ParseKey(msg.String()))
		return m.syncInput()

	case key.Matches(msg, m.keys.Blur):
		m.controller.Blur()
		return m.syncInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.controller.SetQuery(m.input.Value())
	return cmd
}

// handleBrowseKey routes a key while the search box is not focused
func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Focus):
		m.controller.Focus()
		return m.syncInput()

	case key.Matches(msg, m.keys.Directory):
		if !m.dirReady {
			return m.setStatus("Contributors are still loading", views.StatusWarning)
		}
		return m.showDirectory()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case key.Matches(msg, m.keys.Share):
		if m.card.Status == views.CardLoaded {
			if m.card.SiteURL == "" {
				return m.setStatus("Set ui.site_url to share cards", views.StatusWarning)
			}
			m.card.ShowShare = !m.card.ShowShare
		}
		return nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyCardLink()

	case key.Matches(msg, m.keys.Back):
		m.card = views.CardState{}
		m.selector.Clear()
		m.controller.Focus()
		return m.syncInput()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	index, onResult := views.ResultIndexAt(msg.Y, m.snapshot)

	switch msg.Action {
	case tea.MouseActionMotion:
		if onResult {
			m.controller.OnHover(index)
		} else {
			m.controller.OnLeave()
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if onResult {
			m.controller.Select(index)
			return m.syncInput()
		}
		if msg.Y == views.DropdownTop-1 && !m.controller.Focused() {
			m.controller.Focus()
			return m.syncInput()
		}
	}
	return nil
}

// copyCardLink puts the public page of the shown card on the clipboard
func (m *Model) copyCardLink() tea.Cmd {
	if m.card.Status != views.CardLoaded {
		return nil
	}
	link := card.CardURL(m.config.UISettings.SiteURL, m.card.Login)
	if link == "" {
		return m.setStatus("Set ui.site_url to copy card links", views.StatusWarning)
	}
	if err := m.copyText(link); err != nil {
		log.WithError(err).Warn("ui: clipboard write failed")
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err), views.StatusError)
	}
	return m.setStatus("Copied "+link, views.StatusSuccess)
}

// syncInput makes the text input mirror the controller
func (m *Model) syncInput() tea.Cmd {
	if m.input.Value() != m.controller.Query() {
		m.input.SetValue(m.controller.Query())
	}
	switch {
	case m.controller.Focused() && !m.input.Focused():
		return m.input.Focus()
	case !m.controller.Focused() && m.input.Focused():
		m.input.Blur()
	}
	return nil
}

// goTo receives committed selections from the controller
func (m *Model) goTo(login string) {
	m.card = views.CardState{Status: views.CardLoading, Login: login}
	m.selector.GoTo(login)
}

// handleEvent processes domain events
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DirectoryLoadedEvent:
		dir, ok := e.Directory.(*directory.Directory)
		if !ok {
			log.Errorf("ui: unexpected directory type %T", e.Directory)
			return nil
		}
		m.dir = dir
		m.dirReady = true
		m.controller.SetDirectory(dir)
		return m.setStatus(fmt.Sprintf("Loaded %d contributors", dir.Len()), views.StatusSuccess)

	case eventbus.DirectoryLoadFailedEvent:
		return m.setStatus(fmt.Sprintf("Failed to load contributors: %v", e.Err), views.StatusError)

	case eventbus.CardLoadedEvent:
		if e.Login != m.card.Login {
			return nil
		}
		m.card = views.CardState{
			Status:       views.CardLoaded,
			Login:        e.Login,
			Contributor:  e.Contributor,
			SiteURL:      m.config.UISettings.SiteURL,
			ShareMessage: m.config.UISettings.ShareMessage,
		}
		if id, ok := m.dir.Lookup(e.Login); ok {
			m.card.AvatarURL = directory.AvatarURL(id)
		}

	case eventbus.CardNotFoundEvent:
		if e.Login == m.card.Login {
			m.card = views.CardState{Status: views.CardNotFound, Login: e.Login}
		}

	case eventbus.CardFailedEvent:
		if e.Login == m.card.Login {
			m.card = views.CardState{Status: views.CardFailed, Login: e.Login, Err: e.Err}
		}

	case eventbus.ErrorEvent:
		return m.setStatus(fmt.Sprintf("%s: %v", e.Message, e.Err), views.StatusError)
	}
	return nil
}

func (m *Model) setStatus(message string, kind views.StatusKind) tea.Cmd {
	m.statusMessage = message
	m.statusKind = kind
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// showDirectory returns a command that pages the contributor list
func (m *Model) showDirectory() tea.Cmd {
	if m.program == nil {
		return m.setStatus("Pager unavailable", views.StatusWarning)
	}
	listing := DirectoryListing(m.dir)
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(strings.NewReader(listing))

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	var keys help.KeyMap = browseKeys{m.keys}
	if m.controller.Focused() {
		keys = searchKeys{m.keys}
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Input:          m.input.View(),
		Search:         m.snapshot,
		Card:           m.card,
		DirectorySize:  m.dir.Len(),
		DirectoryReady: m.dirReady,
		StatusMessage:  m.statusMessage,
		StatusKind:     m.statusKind,
		HelpModel:      m.help,
		HelpKeys:       keys,
	})
}
