// Package topics provides a topic-based help system for Cobra CLI
// applications. Topics are markdown or text files read from an fs.FS, so a
// binary can ship them embedded.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// optionPrefix marks topics that document a single flag. They are listed
// and looked up as --name.
const optionPrefix = "option-"

// Topic is one help file.
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Title is the first markdown heading of the topic, or its first non-empty
// line when there is no heading.
func (t *Topic) Title() string {
	first := ""
	for _, line := range strings.Split(t.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
		if first == "" {
			first = line
		}
	}
	return first
}

// Options configures the TopicManager
type Options struct {
	// Extensions lists the file extensions read as topics. Defaults to
	// .txt and .md.
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// TopicManager loads and serves the topics below a root directory.
type TopicManager struct {
	fsys     fs.FS
	root     string
	opts     Options
	topics   map[string]*Topic
	baseHelp func(*cobra.Command, []string)
}

// New creates a TopicManager with default options.
func New(fsys fs.FS, root string) *TopicManager {
	return NewWithOptions(fsys, root, Options{})
}

// NewWithOptions creates a TopicManager reading topics below root in fsys.
func NewWithOptions(fsys fs.FS, root string, opts Options) *TopicManager {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt", ".md"}
	}
	if opts.Renderer == nil {
		opts.Renderer = &PlainRenderer{}
	}
	return &TopicManager{
		fsys:   fsys,
		root:   root,
		opts:   opts,
		topics: make(map[string]*Topic),
	}
}

// scanTopics loads every file with a supported extension. A missing root
// yields no topics.
func (tm *TopicManager) scanTopics() error {
	if _, err := fs.Stat(tm.fsys, tm.root); err != nil {
		return nil
	}

	return fs.WalkDir(tm.fsys, tm.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		ext := path.Ext(p)
		if !slices.Contains(tm.opts.Extensions, ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, FilePath: p, Content: string(content)}
		return nil
	})
}

// GetTopic looks a topic up by name. Flag spellings such as --sort find
// the option-sort topic.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics[optionPrefix+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (tm *TopicManager) render(topic *Topic) string {
	return tm.opts.Renderer.Render(topic.Content, path.Ext(topic.FilePath))
}

// printTopicList writes general topics, then option topics, each with its
// title.
func (tm *TopicManager) printTopicList(w io.Writer, appName string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []*Topic
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, tm.topics[name])
		} else {
			general = append(general, tm.topics[name])
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Available help topics:")
	section := func(header string, list []*Topic, label func(*Topic) string) {
		if len(list) == 0 {
			return
		}
		_, _ = fmt.Fprintf(tw, "\n%s\n", header)
		for _, t := range list {
			_, _ = fmt.Fprintf(tw, "  %s\t%s\n", label(t), t.Title())
		}
	}
	section("General topics:", general, func(t *Topic) string { return t.Name })
	section("Option topics:", options, func(t *Topic) string { return "--" + strings.TrimPrefix(t.Name, optionPrefix) })
	_, _ = fmt.Fprintf(tw, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
	_ = tw.Flush()
}

// Initialize sets up the topic-based help system with default options.
func Initialize(rootCmd *cobra.Command, fsys fs.FS, root string) error {
	return InitializeWithOptions(rootCmd, fsys, root, Options{})
}

// InitializeWithOptions replaces the help command of rootCmd with one that
// also serves topics. Arguments that are neither "topics" nor a topic name
// get the regular command help.
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, root string, opts Options) error {
	tm := NewWithOptions(fsys, root, opts)
	if err := tm.scanTopics(); err != nil {
		return fmt.Errorf("failed to scan topics: %w", err)
	}
	tm.baseHelp = rootCmd.HelpFunc()

	name := rootCmd.Name()
	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + name + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + name + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				tm.baseHelp(rootCmd, nil)
			case args[0] == "topics":
				tm.printTopicList(out, name)
			default:
				if topic, ok := tm.GetTopic(args[0]); ok {
					_, _ = fmt.Fprint(out, tm.render(topic))
					return
				}
				if target, _, err := rootCmd.Find(args); err == nil && target != nil {
					tm.baseHelp(target, nil)
					return
				}
				tm.baseHelp(rootCmd, args)
			}
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)
	return nil
}
