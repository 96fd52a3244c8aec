package assessor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var ErrInputClosed = errors.New("input closed before an answer was given")

// Prompter asks line-based questions on an input/output pair. A question
// waiting for input is abandoned when its context is cancelled.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	pending chan readResult // in-flight line read, nil when idle
}

type readResult struct {
	line string
	err  error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, pterm.FgLightBlue.Sprint(question)+" ")

	if p.pending == nil {
		p.pending = make(chan readResult, 1)
		go p.readLine(p.pending)
	}

	select {
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.err
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	}
}

func (p *Prompter) readLine(result chan<- readResult) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			result <- readResult{err: fmt.Errorf("failed to read answer: %w", err)}
			return
		}
		result <- readResult{err: ErrInputClosed}
		return
	}
	result <- readResult{line: strings.TrimSpace(p.scanner.Text())}
}

// Confirm treats "yes" and "y" (any case) as yes and everything else as no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.ask(ctx, question)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}

// Integer keeps asking until a positive whole number is entered.
func (p *Prompter) Integer(ctx context.Context, question string) (int, error) {
	for {
		answer, err := p.ask(ctx, question)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, pterm.FgRed.Sprint("Please enter a valid positive number!"))
	}
}

// Preset carries answers known in advance; nil fields are asked for.
type Preset struct {
	WPSEnabled     *bool
	PasswordLength *int
	GuestNetworks  *bool
}

// Interview collects the answers in a fixed order: WPS, password length,
// guest networks.
func Interview(ctx context.Context, p *Prompter, preset Preset) (Answers, error) {
	var (
		answers Answers
		err     error
	)

	if preset.WPSEnabled != nil {
		answers.WPSEnabled = *preset.WPSEnabled
	} else if answers.WPSEnabled, err = p.Confirm(ctx, "Is WPS enabled on the router? (yes/no, default no):"); err != nil {
		return Answers{}, err
	}

	if preset.PasswordLength != nil {
		answers.PasswordLength = *preset.PasswordLength
	} else if answers.PasswordLength, err = p.Integer(ctx, "Enter the Wi-Fi password length (number):"); err != nil {
		return Answers{}, err
	}

	if preset.GuestNetworks != nil {
		answers.GuestNetworks = *preset.GuestNetworks
	} else if answers.GuestNetworks, err = p.Confirm(ctx, "Are there guest/open networks with a similar name nearby? (yes/no):"); err != nil {
		return Answers{}, err
	}

	return answers, nil
}
