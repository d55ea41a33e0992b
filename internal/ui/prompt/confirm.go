package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N", "enter", "ctrl+c", "esc":
			// Default to no
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s [y/N] ", m.prompt)
}

// Confirm shows a yes/no prompt and returns the user's choice.
// Only an explicit affirmative returns true; enter, any other input, and
// end of input all count as no.
func Confirm(promptText string) bool {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		model := confirmModel{prompt: promptText}
		p := tea.NewProgram(model)
		finalModel, err := p.Run()
		if err != nil {
			return false
		}
		return finalModel.(confirmModel).confirmed
	}
	return confirmLine(os.Stdin, os.Stderr, promptText)
}

// confirmLine reads a single line from r. Read failure means no.
func confirmLine(r io.Reader, w io.Writer, promptText string) bool {
	fmt.Fprintf(w, "%s [y/N] ", promptText)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y"
}
