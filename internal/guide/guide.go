// Where: internal/guide/guide.go
// What: Guide rendering and the menu-driven interactive walkthrough.
package guide

import (
	"fmt"

	"github.com/hoangtrann/otk/internal/interaction"
	"github.com/hoangtrann/otk/internal/ui"
)

const backOption = "Back to main menu"

// ShowReference prints one topic. With an entry key it renders that entry in
// full; without one it lists the topic's entries. An unknown topic falls back
// to the help screen, an unknown entry is an error.
func ShowReference(console *ui.Console, topicKey, entryKey string) error {
	topic, ok := TopicByKey(topicKey)
	if !ok {
		ShowHelp(console)
		return nil
	}

	console.Header(topic.Emoji, topic.Title)

	if entryKey == "" {
		listEntries(console, topic)
		return nil
	}

	entry, ok := topic.EntryByKey(entryKey)
	if !ok {
		return fmt.Errorf("unknown %s example %q", topic.Key, entryKey)
	}
	renderEntry(console, entry)
	return nil
}

// ShowHelp prints the topic index and usage examples.
func ShowHelp(console *ui.Console) {
	console.Header("🚀", "Quick Reference")
	console.ItemPlain("")
	console.ItemPlain("Available topics:")
	for _, topic := range Topics {
		console.Item(topic.Key, topic.Summary)
	}
	console.ItemPlain("")
	console.ItemPlain("Usage examples:")
	console.ItemPlain("  otk guide")
	console.ItemPlain("  otk guide form")
	console.ItemPlain("  otk guide form basic_field")
	console.ItemPlain("  otk guide widgets relational_widgets")
	console.ItemPlain("  otk guide patterns modern_attrs")
}

func listEntries(console *ui.Console, topic Topic) {
	console.ItemPlain(fmt.Sprintf("Available %s examples:", topic.Key))
	for _, entry := range topic.Entries {
		console.Item(entry.Key, entry.Description)
	}
	console.ItemPlain("")
	console.ItemPlain(fmt.Sprintf("Usage: otk guide %s <example_name>", topic.Key))
}

func renderEntry(console *ui.Console, entry Entry) {
	console.ItemPlain(entry.Description)
	console.ItemPlain("")

	if len(entry.Bullets) > 0 {
		for _, bullet := range entry.Bullets {
			console.ItemPlain("• " + bullet)
		}
	} else {
		for _, snippet := range entry.Snippets {
			if snippet.Name != "" {
				console.ItemPlain(snippet.Name + ":")
			}
			console.ItemPlain(snippet.Code)
		}
	}

	console.ItemPlain("")
	console.ItemPlain("💡 " + entry.Notes)
}

// RunInteractive drives the menu-based guide until the user exits.
func RunInteractive(console *ui.Console, prompter interaction.Prompter) error {
	console.Header("📚", "Odoo Development Guide")
	console.ItemPlain("Interactive reference for views, widgets, and patterns")

	for {
		options := make([]interaction.SelectOption, 0, len(Topics)+2)
		for _, topic := range Topics {
			options = append(options, interaction.SelectOption{
				Label: fmt.Sprintf("%s %s", topic.Emoji, topic.Summary),
				Value: topic.Key,
			})
		}
		options = append(options,
			interaction.SelectOption{Label: "❓ Help - Show all available options", Value: "help"},
			interaction.SelectOption{Label: "🚪 Exit", Value: "exit"},
		)

		choice, err := prompter.SelectValue("What would you like to explore?", options)
		if err != nil {
			return err
		}

		switch choice {
		case "exit":
			console.Success("Happy coding!")
			return nil
		case "help":
			ShowHelp(console)
		default:
			topic, ok := TopicByKey(choice)
			if !ok {
				continue
			}
			if err := browseTopic(console, prompter, topic); err != nil {
				return err
			}
		}
	}
}

func browseTopic(console *ui.Console, prompter interaction.Prompter, topic Topic) error {
	options := make([]interaction.SelectOption, 0, len(topic.Entries)+1)
	for _, entry := range topic.Entries {
		options = append(options, interaction.SelectOption{
			Label: fmt.Sprintf("%s: %s", entry.Key, entry.Description),
			Value: entry.Key,
		})
	}
	options = append(options, interaction.SelectOption{Label: backOption, Value: ""})

	choice, err := prompter.SelectValue(fmt.Sprintf("Select a %s example:", topic.Key), options)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}
	return ShowReference(console, topic.Key, choice)
}
