package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/lleo/go-hashtable"
	"github.com/pkg/errors"
	survey "gopkg.in/AlecAivazis/survey.v1"
	"gopkg.in/AlecAivazis/survey.v1/terminal"
)

// prompter is the part of survey the menu uses.
type prompter interface {
	Select(message string, options []string) (string, error)
	Input(message string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
	}, &answer, nil); err != nil {
		return "", err
	}
	return answer, nil
}

func (surveyPrompter) Input(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{
		Message: message,
	}, &answer, nil); err != nil {
		return "", err
	}
	return answer, nil
}

const (
	menuInsert = "Insert"
	menuSearch = "Search"
	menuStats  = "Stats"
	menuShow   = "Show table"
	menuExit   = "Exit"
)

var menuOptions = []string{menuInsert, menuSearch, menuStats, menuShow, menuExit}

// runMenu loops until the user picks Exit or interrupts a prompt.
func runMenu(s *session, p prompter) error {
	var keyPrompt = fmt.Sprintf("Key (%s):", keyHint(s.keyType))

	for {
		var choice, err = p.Select("Main menu", menuOptions)
		if err == terminal.InterruptErr {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "menu prompt failed")
		}

		switch choice {
		case menuInsert, menuSearch:
			var id string
			id, err = p.Input(keyPrompt)
			if err == terminal.InterruptErr {
				continue
			}
			if err != nil {
				return errors.Wrap(err, "key prompt failed")
			}

			var result string
			if choice == menuInsert {
				result, err = s.insert(strings.TrimSpace(id))
			} else {
				result, err = s.search(strings.TrimSpace(id))
			}
			if err != nil {
				fmt.Fprintf(s.out, "Invalid key: %v\n", err)
				continue
			}
			fmt.Fprintf(s.out, "%s %s: %s\n", strings.ToLower(choice), id, result)

		case menuStats:
			fmt.Fprint(s.out, s.report())

		case menuShow:
			fmt.Fprintln(s.out, s.table.LongString(""))

		case menuExit:
			return nil
		}
	}
}

func keyHint(keyType string) string {
	if keyType == keyTypePerson {
		return "alu, prof or pas followed by up to 7 digits"
	}
	return "8 digit nif"
}

func tableSummary(t hashtable.Table) string {
	var s = fmt.Sprintf("table:    %s\nentries:  %s in %s buckets",
		t, humanize.Comma(int64(t.Nentries())), humanize.Comma(int64(t.TableSize())))

	if bt, ok := t.(*hashtable.BoundedTable); ok {
		s += fmt.Sprintf(" of %s keys, load factor %s%%",
			humanize.Comma(int64(bt.BlockSize())), humanize.CommafWithDigits(100*bt.LoadFactor(), 2))
	}
	return s + "\n"
}
