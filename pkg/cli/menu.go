package cli

import (
	"fmt"

	"github.com/mchmarny/pwdctl/pkg/scorer"
	urfave "github.com/urfave/cli/v2"
)

// cmdMenu runs the interactive loop: one blocking operation per
// selection, lookup failures reported without ending the session.
func cmdMenu(c *urfave.Context) error {
	for {
		showMenu()
		choice, err := readLine("Enter your choice (1-3): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := menuScore(); err != nil {
				return err
			}
		case "2":
			if err := menuPwned(c); err != nil {
				return err
			}
		case "3":
			fmt.Println("\nExiting. Stay safe!")
			fmt.Println()
			return nil
		default:
			fmt.Println("\n[!] Invalid choice. Please enter 1, 2, or 3.")
			fmt.Println()
		}
	}
}

func showMenu() {
	fmt.Println("====================================")
	fmt.Println("  Welcome to pwdctl")
	fmt.Println("====================================")
	fmt.Println("Please choose an option:")
	fmt.Println("1. Analyze password strength")
	fmt.Println("2. Has my password been leaked?")
	fmt.Println("3. Exit")
	fmt.Println("====================================")
}

func menuScore() error {
	password, err := readPassword("Enter the password to analyze: ")
	if err != nil {
		return err
	}

	s := scorer.Score(password)
	fmt.Printf("\nPassword score: %d / %d\n", s, scorer.MaxScore)

	switch {
	case s == 0:
		fmt.Println("Result: This password is too common or weak. Please choose a stronger password.")
	case s <= 4:
		fmt.Println("Result: Weak password. Consider adding uppercase, digits, symbols, or increasing length.")
	case s <= 7:
		fmt.Println("Result: Moderate password. Good, but can be improved for better security.")
	default:
		fmt.Println("Result: Strong password. Well done!")
	}
	fmt.Println()
	return nil
}

// menuPwned returns an error only when input cannot be read; lookup
// failures are displayed and the menu continues.
func menuPwned(c *urfave.Context) error {
	password, err := readPassword("Enter the password to check: ")
	if err != nil {
		return err
	}

	client := newClient(c, true)
	count, err := client.Count(c.Context, password)
	if err != nil {
		fmt.Printf("\nAn error occurred: %v\n\n", err)
		return nil
	}

	if count > 0 {
		fmt.Printf("\n[!] Warning: this password has been found %d times in data breaches!\n", count)
		fmt.Println("You should consider changing it to something more secure.")
	} else {
		fmt.Println("\nGood news - this password was NOT found in known data breaches.")
	}
	fmt.Println()
	return nil
}
