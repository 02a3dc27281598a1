package commands

import (
	"net/url"
	"strings"
)

// isValidEmail accepts a two-part local@domain shape where the domain
// carries at least one dot. Deliberately far short of full RFC 5322:
// the address only needs to be plausible enough to receive the
// verification token.
func isValidEmail(email string) bool {
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return true
}

// isValidWalletAddress checks the base58 shape of a Solana address:
// 43-44 characters, alphabet excluding 0, O, I and l.
func isValidWalletAddress(wallet string) bool {
	if len(wallet) < 43 || len(wallet) > 44 {
		return false
	}
	for _, r := range wallet {
		switch {
		case r >= '1' && r <= '9':
		case r >= 'A' && r <= 'H':
		case r >= 'J' && r <= 'N':
		case r >= 'P' && r <= 'Z':
		case r >= 'a' && r <= 'k':
		case r >= 'm' && r <= 'z':
		default:
			return false
		}
	}
	return true
}

// isValidURL parses rawURL, assuming https when no scheme is given, and
// accepts only http(s) targets with a host.
func isValidURL(rawURL string) bool {
	candidate := strings.TrimSpace(rawURL)
	if candidate == "" {
		return false
	}
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
