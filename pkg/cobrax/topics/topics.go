// Package topics extends Cobra's help with free-standing help topics loaded
// from a file tree, so reference material ships inside the binary instead of
// pointing users at a website.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help page.
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Manager holds the loaded topics and the help hook state.
type Manager struct {
	topics       map[string]*Topic
	extensions   []string
	renderer     Renderer
	originalHelp func(*cobra.Command, []string)
}

// Options configures a Manager.
type Options struct {
	// Extensions selects which files count as topics. Defaults to
	// [".md", ".txt"].
	Extensions []string

	// Renderer formats topic content for the terminal. Defaults to
	// PlainRenderer.
	Renderer Renderer
}

// NewManager loads every matching file under fsys into a Manager. Topic
// names are the file basenames without extension; directories only group
// files and do not become part of the name.
func NewManager(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".md", ".txt"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		matched := false
		for _, want := range m.extensions {
			if ext == want {
				matched = true
				break
			}
		}
		if !matched {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load help topics: %w", err)
	}
	return m, nil
}

// Get looks up a topic. Leading dashes are stripped so "--decimal" finds the
// "decimal" topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	topic, ok := m.topics[name]
	return topic, ok
}

// List returns the topic names in sorted order.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for display.
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, topic.Ext)
}

// Attach replaces root's help command and help function with topic-aware
// versions. Unknown names fall through to the regular command help.
func (m *Manager) Attach(root *cobra.Command) {
	m.originalHelp = root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: fmt.Sprintf(`Help shows usage for any command, or one of the built-in
reference topics. Run '%s help topics' to list them.`, root.Name()),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.List()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(root, nil)
				return
			}
			if args[0] == "topics" {
				m.printIndex(cmd, root.Name())
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				cmd.Print(m.Render(topic))
				return
			}
			m.originalHelp(root, args)
		},
	}

	for _, cmd := range root.Commands() {
		if cmd.Name() == "help" {
			root.RemoveCommand(cmd)
			break
		}
	}
	root.AddCommand(helpCmd)

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := m.Get(args[0]); ok {
				cmd.Print(m.Render(topic))
				return
			}
		}
		m.originalHelp(cmd, args)
	})
}

func (m *Manager) printIndex(cmd *cobra.Command, appName string) {
	names := m.List()
	if len(names) == 0 {
		cmd.Println("No help topics available.")
		return
	}
	cmd.Println("Available help topics:")
	for _, name := range names {
		cmd.Printf("  %s\n", name)
	}
	cmd.Printf("\nUse '%s help <topic>' to read one.\n", appName)
}
