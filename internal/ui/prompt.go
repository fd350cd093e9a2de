package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ConfirmPrompt asks a yes/no confirmation question. Only an affirmative
// answer returns true; anything else, including abort, declines.
func ConfirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}

	return affirmed(result), nil
}

// affirmed accepts the confirmation answer in either case
func affirmed(result string) bool {
	return strings.EqualFold(result, "y")
}

// SelectPrompt presents a list of options for selection
func SelectPrompt(label string, items []string) (int, string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  itemsSize(items),
	}

	index, result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return -1, "", fmt.Errorf("selection cancelled by user")
		}
		return -1, "", err
	}

	return index, result, nil
}

// InputPrompt asks for text input with optional validation
func InputPrompt(label string, defaultValue string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  defaultValue,
		Validate: validate,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return "", fmt.Errorf("input cancelled by user")
		}
		return "", err
	}

	return result, nil
}

// ValidateNonEmpty validates that input is not empty
func ValidateNonEmpty(input string) error {
	if len(input) == 0 {
		return errors.New("input cannot be empty")
	}
	return nil
}

// ValidateDigits validates that input is a non-empty decimal number
func ValidateDigits(input string) error {
	if len(input) == 0 {
		return errors.New("input cannot be empty")
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return errors.New("input must be numeric")
		}
	}
	return nil
}

func itemsSize(items []string) int {
	if len(items) < 10 {
		return len(items)
	}
	return 10
}
