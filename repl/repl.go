package repl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"atomicgo.dev/keyboard/keys"

	"github.com/lisgo-lang/lisgo/compiler"
	"github.com/lisgo-lang/lisgo/config"
	"github.com/lisgo-lang/lisgo/consts"
	. "github.com/lisgo-lang/lisgo/json"
	"github.com/lisgo-lang/lisgo/term"
	"github.com/lisgo-lang/lisgo/utils"
)

var (
	linesHistory = []string{}
	historyPath  = filepath.Join(os.Getenv("HOME"), ".config", "lisgo_history.json")
	blockLines   = []string{}
)

// Repl reads forms line by line, compiles each completed form and prints
// the generated Go text. A form is complete once its parentheses balance
// outside string literals, so forms may span lines. wg gates the banner
// behind the upgrade check.
func Repl(wg *sync.WaitGroup) {
	loadHistory()
	wg.Wait()

	fmt.Printf(
		"lisgo (v%s) - %s to exit\n",
		term.CYAN+consts.VERSION+term.NOCOLOR,
		term.GREEN+"`Esc`"+term.NOCOLOR,
	)

	for {
		line := term.ReadLine(term.ReadLineConfig{
			Prompt:  config.ReplPrompt,
			History: linesHistory,
			KeyFunc: handleKeyboard,
		})
		if strings.TrimSpace(line) == "" {
			continue
		}

		blockLines = append(blockLines, line)
		block := strings.Join(blockLines, "\n")
		if openParenCount(block) > 0 {
			continue
		}
		blockLines = blockLines[:0]

		code, err := compiler.Compile(block, "stdin")
		if err != nil {
			term.Warn("%v", err)
			continue
		}
		term.Green("%s", code)
		updateHistory(block)
	}
}

func handleKeyboard(key keys.Key, rs *[]rune, rIdx *int, lIdx *int) (bool, bool, error) {
	switch key.Code {
	case keys.Esc:
		os.Exit(0)
	// clear history
	case keys.CtrlA:
		linesHistory = []string{}
		writeHistory()
	}
	return false, false, nil
}

func _updateHistory(str string) {
	idx := -1
	for i := range linesHistory {
		if linesHistory[i] == str {
			idx = i
			break
		}
	}
	if idx != -1 {
		linesHistory = append(linesHistory[:idx], linesHistory[idx+1:]...)
	}
	linesHistory = append(linesHistory, str)
}

func updateHistory(str string) {
	str = strings.Trim(str, "\n")
	strs := strings.Split(str, "\n")
	for idx := range strs {
		_updateHistory(strs[idx])
	}
	writeHistory()
}

// openParenCount reports open minus closed parentheses, ignoring any
// inside string literals.
func openParenCount(block string) int {
	open := 0
	inStr := false
	for idx := 0; idx < len(block); idx++ {
		switch block[idx] {
		case '(':
			if !inStr {
				open++
			}
		case ')':
			if !inStr {
				open--
			}
		case '"':
			if idx == 0 || block[idx-1] != '\\' {
				inStr = !inStr
			}
		}
	}
	return open
}

func writeHistory() {
	data, err := Json.MarshalIndent(linesHistory, "", "  ")
	if err != nil {
		term.Warn("[REPL] marshal history failed: %v", err)
		return
	}
	if err := os.WriteFile(historyPath, data, 0644); err != nil {
		term.Warn("[REPL] write history failed: %v", err)
	}
}

func loadHistory() {
	if !utils.Exist(historyPath) {
		return
	}
	data, err := os.ReadFile(historyPath)
	if err != nil {
		term.Warn("[REPL] read history failed: %v", err)
		return
	}
	if err := Json.Unmarshal(data, &linesHistory); err != nil {
		term.Warn("[REPL] unmarshal history failed: %v", err)
	}
}
