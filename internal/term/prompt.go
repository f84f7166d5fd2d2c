package term

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTooManyTries is returned when a prompt's validator rejects every attempt.
var ErrTooManyTries = errors.New("too many tries")

// Validator accepts an answer or returns the message explaining why not.
type Validator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator Validator
}

type PromptOption func(*promptConfig)

func WithValidator(v Validator) PromptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) PromptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompt writes prompt and reads answers until one passes the validator.
func (t *Term) Prompt(ctx context.Context, prompt string, opts ...PromptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		t.Printf("%s", prompt)

		input, err := t.ReadLine(ctx)
		if err != nil {
			return "", err
		}

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				t.Println(msg)

				tries++
				if config.tries > 0 && config.tries == tries {
					t.Println("Too many tries.")
					return "", ErrTooManyTries
				}
				continue
			}
		}

		return input, nil
	}
}

// Confirm asks a yes or no question.
func (t *Term) Confirm(ctx context.Context, prompt string) (bool, error) {
	str, err := t.Prompt(ctx, prompt+" (y/n): ", WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(str) {
			case "y", "yes", "n", "no":
				return true, ""
			default:
				return false, "Enter 'y' or 'n'."
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(str) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Choose lists options numbered from 1 with [0] to cancel. It returns the
// chosen index, or -1 when the survivor cancels.
func (t *Term) Choose(ctx context.Context, title string, options []string, cancel string) (int, error) {
	if title != "" {
		t.Println(title)
	}
	for i, o := range options {
		t.Printf("[%d] %s\n", i+1, o)
	}
	if cancel == "" {
		cancel = "Cancel"
	}
	t.Printf("[0] %s\n", cancel)

	str, err := t.Prompt(ctx, "\nEnter your choice: ", WithValidator(NumberInRange(0, len(options))))
	if err != nil {
		return -1, err
	}
	n, _ := strconv.Atoi(str)
	return n - 1, nil
}

// NumberInRange accepts whole numbers between lo and hi inclusive.
func NumberInRange(lo, hi int) Validator {
	return func(str string) (bool, string) {
		n, err := strconv.Atoi(str)
		if err != nil {
			return false, "Please enter a valid number."
		}
		if n < lo || n > hi {
			return false, fmt.Sprintf("Please enter a number between %d and %d.", lo, hi)
		}
		return true, ""
	}
}

// Pause waits for Enter.
func (t *Term) Pause(ctx context.Context) error {
	t.Printf("\nPress Enter to continue...")
	_, err := t.ReadLine(ctx)
	return err
}
