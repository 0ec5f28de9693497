// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ConsolePresenter implements Presenter over plain line-oriented streams:
// enumerated 1-based choices, 'q' to cancel, re-prompt on anything else.
// It is the presenter of record for non-TTY sessions and for tests.
type ConsolePresenter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsolePresenter(in io.Reader, out io.Writer) *ConsolePresenter {
	return &ConsolePresenter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *ConsolePresenter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}

		// Input exhausted counts as cancellation, not as a crash.
		return "", ErrCancelled
	}

	return strings.TrimSpace(p.in.Text()), nil
}

// ChooseFrom implements Presenter.  Out-of-range numbers and non-numeric
// input re-prompt with distinct messages and never consume a candidate.
func (p *ConsolePresenter) ChooseFrom(what string, options []string) (int, error) {
	for {
		fmt.Fprintf(p.out, "\nMultiple %ss detected. Please select one:\n", what)
		for i, option := range options {
			fmt.Fprintf(p.out, "  [%d] %s\n", i+1, option)
		}
		fmt.Fprintln(p.out, "  [q] Quit")
		fmt.Fprint(p.out, "Enter a number or 'q' to quit: ")

		choice, err := p.readLine()
		if err != nil {
			return 0, err
		}

		if strings.EqualFold(choice, "q") {
			return 0, ErrCancelled
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number or 'q'.")
			continue
		}

		if n < 1 || n > len(options) {
			fmt.Fprintln(p.out, "Invalid number. Please choose a number from the list.")
			continue
		}

		return n - 1, nil
	}
}

// Confirm implements Presenter.  Empty input takes the default; anything
// other than an explicit yes answers no.
func (p *ConsolePresenter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	fmt.Fprintf(p.out, "%s %s: ", question, hint)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Input implements Presenter.
func (p *ConsolePresenter) Input(prompt, placeholder string) (string, error) {
	if placeholder != "" {
		fmt.Fprintf(p.out, "%s (%s): ", prompt, placeholder)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}

	return p.readLine()
}
