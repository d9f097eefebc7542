package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var amountRegex = regexp.MustCompile(`^\$?(\d+(?:\.\d{1,2})?)$`)

// ParseAmount parses a non-negative money amount
// Accepts formats like "200", "$200", "1,500", "99.50"
func ParseAmount(input string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(input), ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("amount is required")
	}

	matches := amountRegex.FindStringSubmatch(cleaned)
	if len(matches) != 2 {
		return 0, fmt.Errorf("invalid amount '%s'. Use a number like 200 or $99.50", input)
	}

	amount, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount '%s'", input)
	}
	return amount, nil
}

// FormatMoney formats an amount as $1234.50 / -$20.00
func FormatMoney(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatRate formats an hourly rate, or N/A when there is none
func FormatRate(rate *float64) string {
	if rate == nil {
		return "N/A"
	}
	return FormatMoney(*rate) + "/hr"
}
