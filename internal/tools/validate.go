package tools

import (
	"regexp"
	"strings"

	"marketgate/internal/domain"
)

var (
	symbolRe   = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)
	tickerRe   = regexp.MustCompile(`^([A-Z]{1,2}:)?[A-Z0-9]{3,10}$`)
	currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)
	slugRe     = regexp.MustCompile(`^[a-z0-9-]{1,50}$`)
	dateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func normalizeSymbols(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.Validationf("cryptocurrency symbols cannot be empty")
	}
	parts := strings.Split(raw, ",")
	symbols := make([]string, 0, len(parts))
	for _, part := range parts {
		symbol := strings.ToUpper(strings.TrimSpace(part))
		if symbol == "" {
			continue
		}
		if !symbolRe.MatchString(symbol) {
			return nil, domain.Validationf("invalid cryptocurrency symbol format: %s", symbol)
		}
		symbols = append(symbols, symbol)
	}
	if len(symbols) == 0 {
		return nil, domain.Validationf("no valid cryptocurrency symbols provided")
	}
	return symbols, nil
}

func normalizeSymbol(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if !symbolRe.MatchString(symbol) {
		return "", domain.Validationf("invalid cryptocurrency symbol format: %s", raw)
	}
	return symbol, nil
}

// normalizeLimit applies the tool's declared bounds: zero means the declared
// default, anything outside [1, max] is rejected.
func normalizeLimit(limit, def, max int) (int, error) {
	if limit == 0 {
		return def, nil
	}
	if limit < 1 || limit > max {
		return 0, domain.Validationf("limit must be between 1 and %d", max)
	}
	return limit, nil
}

func normalizeTicker(raw string) (string, error) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if !tickerRe.MatchString(ticker) {
		return "", domain.Validationf("invalid forex ticker format: %s, try adding a 'C:' prefix (e.g. C:EURUSD)", raw)
	}
	return ticker, nil
}

func normalizeCurrency(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !currencyRe.MatchString(code) {
		return "", domain.Validationf("currency code must be 3 letters (e.g. USD): %s", raw)
	}
	return code, nil
}

func normalizeSlug(raw string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(raw))
	if !slugRe.MatchString(slug) {
		return "", domain.Validationf("invalid blockchain slug format: %s", raw)
	}
	return slug, nil
}

func normalizeDate(raw string) (string, error) {
	date := strings.TrimSpace(raw)
	if !dateRe.MatchString(date) {
		return "", domain.Validationf("date must be YYYY-MM-DD: %s", raw)
	}
	return date, nil
}

func normalizeEnum(raw, def, name string, allowed []string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		if def != "" {
			return def, nil
		}
		return "", domain.Validationf("%s is required", name)
	}
	for _, candidate := range allowed {
		if value == candidate {
			return value, nil
		}
	}
	return "", domain.Validationf("%s must be one of %s", name, strings.Join(allowed, ", "))
}
