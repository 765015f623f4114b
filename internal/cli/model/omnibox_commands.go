package model

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/logging"
)

const bookmarkEditPattern = "orbit-bookmarks-*.yaml"

type editTarget int

const (
	editConfig editTarget = iota
	editBookmarks
)

type transferOp int

const (
	opExport transferOp = iota
	opImport
	opBookmarkEdit
)

// editorFinishedMsg is sent when $EDITOR exits.
type editorFinishedMsg struct {
	target editTarget
	path   string
	err    error
}

// bookmarkEditReadyMsg is sent once the bookmark list was written to a temp file.
type bookmarkEditReadyMsg struct {
	path string
	err  error
}

// transferDoneMsg reports an export or import.
type transferDoneMsg struct {
	op     transferOp
	path   string
	output usecase.ImportOutput
	copied bool
	err    error
}

// resetDoneMsg reports a confirmed reset.
type resetDoneMsg struct {
	err error
}

var errNoEditor = errors.New("no editor configured")

func (m *Omnibox) registerCommands() {
	actions := map[string]usecase.CommandAction{
		entity.CommandList: func(context.Context) {
			m.resolver.ShowAll()
		},
		entity.CommandConfig: func(context.Context) {
			m.queue(m.openConfigEditor())
		},
		entity.CommandBookmark: func(context.Context) {
			m.queue(m.prepareBookmarkEdit())
		},
		entity.CommandExport: func(context.Context) {
			m.queue(m.exportData())
		},
		entity.CommandImport: func(context.Context) {
			m.queue(m.importData())
		},
		entity.CommandHelp: func(context.Context) {
			m.showHelp = !m.showHelp
		},
		entity.CommandReset: func(context.Context) {
			m.askReset()
		},
	}

	for _, cmd := range entity.BuiltinCommands() {
		m.dispatcher.Register(cmd, actions[cmd.Name])
	}
}

// queue defers a command produced by a command action until the current
// update returns.
func (m *Omnibox) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.effects = append(m.effects, cmd)
	}
}

func (m *Omnibox) drainEffects() tea.Cmd {
	if len(m.effects) == 0 {
		return nil
	}
	cmds := m.effects
	m.effects = nil
	return tea.Batch(cmds...)
}

func (m *Omnibox) askReset() {
	if m.cfg.Reset == nil {
		m.setError(fmt.Errorf("reset not available"))
		return
	}
	confirm := newResetConfirm(m.theme)
	m.confirm = &confirm
}

func (m *Omnibox) resetData() tea.Cmd {
	ctx, reset := m.ctx, m.cfg.Reset
	return func() tea.Msg {
		return resetDoneMsg{err: reset.Execute(ctx, true)}
	}
}

func (m *Omnibox) openConfigEditor() tea.Cmd {
	if m.cfg.Editor == nil || m.cfg.ConfigPath == "" {
		m.setError(errNoEditor)
		return nil
	}
	path := m.cfg.ConfigPath
	return tea.ExecProcess(m.cfg.Editor(path), func(err error) tea.Msg {
		return editorFinishedMsg{target: editConfig, path: path, err: err}
	})
}

// prepareBookmarkEdit writes the bookmark list, without settings, to a temp
// file for the editor.
func (m *Omnibox) prepareBookmarkEdit() tea.Cmd {
	if m.cfg.Editor == nil {
		m.setError(errNoEditor)
		return nil
	}
	if m.cfg.Transfer == nil || m.cfg.Store == nil {
		m.setError(fmt.Errorf("bookmark editing not available"))
		return nil
	}

	ctx, transfer, store, dir := m.ctx, m.cfg.Transfer, m.cfg.Store, m.cfg.TempDir
	return func() tea.Msg {
		doc, err := transfer.BuildDocument(ctx)
		if err != nil {
			return bookmarkEditReadyMsg{err: err}
		}
		doc.Config = nil

		f, err := os.CreateTemp(dir, bookmarkEditPattern)
		if err != nil {
			return bookmarkEditReadyMsg{err: fmt.Errorf("create temp file: %w", err)}
		}
		path := f.Name()
		_ = f.Close()

		if err := store.WriteDocument(ctx, path, doc); err != nil {
			_ = os.Remove(path)
			return bookmarkEditReadyMsg{err: err}
		}
		return bookmarkEditReadyMsg{path: path}
	}
}

func (m *Omnibox) handleBookmarkEditReady(msg bookmarkEditReadyMsg) tea.Cmd {
	if msg.err != nil {
		m.setError(msg.err)
		return nil
	}
	path := msg.path
	return tea.ExecProcess(m.cfg.Editor(path), func(err error) tea.Msg {
		return editorFinishedMsg{target: editBookmarks, path: path, err: err}
	})
}

func (m *Omnibox) handleEditorFinished(msg editorFinishedMsg) tea.Cmd {
	log := logging.FromContext(m.ctx)

	switch msg.target {
	case editConfig:
		if msg.err != nil {
			m.setError(fmt.Errorf("editor: %w", msg.err))
			return nil
		}
		log.Debug().Str("path", msg.path).Msg("config edited")
		m.setStatus("settings saved")
		return nil

	case editBookmarks:
		if msg.err != nil {
			_ = os.Remove(msg.path)
			m.setError(fmt.Errorf("editor: %w", msg.err))
			return nil
		}
		return m.importEditedBookmarks(msg.path)
	}
	return nil
}

// importEditedBookmarks replaces the bookmark list with the edited file.
// Settings in the file, if the user added any, are ignored.
func (m *Omnibox) importEditedBookmarks(path string) tea.Cmd {
	ctx, transfer, store := m.ctx, m.cfg.Transfer, m.cfg.Store
	return func() tea.Msg {
		defer func() { _ = os.Remove(path) }()

		doc, err := store.ReadDocument(ctx, path)
		if err != nil {
			return transferDoneMsg{op: opBookmarkEdit, path: path, err: err}
		}
		doc.Config = nil

		out, err := transfer.ImportDocument(ctx, doc)
		return transferDoneMsg{op: opBookmarkEdit, path: path, output: out, err: err}
	}
}

func (m *Omnibox) exportData() tea.Cmd {
	if m.cfg.Transfer == nil || m.cfg.ExportPath == "" {
		m.setError(fmt.Errorf("export not available"))
		return nil
	}
	ctx, transfer, copier, path := m.ctx, m.cfg.Transfer, m.cfg.Copier, m.cfg.ExportPath
	return func() tea.Msg {
		if err := transfer.Export(ctx, path); err != nil {
			return transferDoneMsg{op: opExport, path: path, err: err}
		}
		copied := false
		if copier != nil {
			if err := copier.Copy(ctx, path); err != nil {
				logging.FromContext(ctx).Debug().Err(err).Msg("export path not copied")
			} else {
				copied = true
			}
		}
		return transferDoneMsg{op: opExport, path: path, copied: copied}
	}
}

func (m *Omnibox) importData() tea.Cmd {
	if m.cfg.Transfer == nil || m.cfg.ExportPath == "" {
		m.setError(fmt.Errorf("import not available"))
		return nil
	}
	ctx, transfer, path := m.ctx, m.cfg.Transfer, m.cfg.ExportPath
	return func() tea.Msg {
		out, err := transfer.Import(ctx, path)
		return transferDoneMsg{op: opImport, path: path, output: out, err: err}
	}
}

func (m *Omnibox) handleTransferDone(msg transferDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.setError(msg.err)
		return nil
	}

	switch msg.op {
	case opExport:
		if msg.copied {
			m.setStatus(fmt.Sprintf("exported to %s (path copied)", msg.path))
		} else {
			m.setStatus("exported to " + msg.path)
		}
		return nil

	case opImport:
		status := fmt.Sprintf("imported %d bookmarks", msg.output.Bookmarks)
		if msg.output.SettingsApplied {
			status += " and settings"
		}
		m.setStatus(status)

	case opBookmarkEdit:
		m.setStatus(fmt.Sprintf("saved %d bookmarks", msg.output.Bookmarks))
	}
	return m.loadBookmarks()
}
